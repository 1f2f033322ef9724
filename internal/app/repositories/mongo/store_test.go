package mongo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/app/repositories/storetest"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ns(collection string) string {
	return DefaultDatabase + "." + collection
}

func TestStoreWithMockDeployment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create returns a hex id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := NewStore(mt.Client, DefaultDatabase)

		id, err := store.CreateAirplaneModel(ctx, &models.AirplaneModel{Capacity: 180, Weight: 42000, Code: "A320", ImagePath: "a320.png"})
		if err != nil {
			mt.Fatalf("CreateAirplaneModel: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(id.String()); err != nil {
			mt.Errorf("expected an ObjectID hex, got %q", id)
		}
	})

	mt.Run("duplicate key maps to already exists", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error collection: airport.airplane_model index: code_1",
		}))
		store := NewStore(mt.Client, DefaultDatabase)

		_, err := store.CreateAirplaneModel(ctx, &models.AirplaneModel{Code: "A320", ImagePath: "a320.png"})
		if !errors.Is(err, repositories.ErrAlreadyExists) {
			mt.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})

	mt.Run("read by id decodes the document", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(models.EntityAirplaneModel), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "capacity", Value: 180},
			{Key: "weight", Value: 42000.0},
			{Key: "code", Value: "A320"},
			{Key: "image_path", Value: "a320.png"},
			{Key: "created_at", Value: created},
			{Key: "updated_at", Value: created},
		}))
		store := NewStore(mt.Client, DefaultDatabase)

		got, err := store.ReadAirplaneModelByID(ctx, models.ID(oid.Hex()))
		if err != nil {
			mt.Fatalf("ReadAirplaneModelByID: %v", err)
		}
		if got.ID.String() != oid.Hex() || got.Code != "A320" || got.Capacity != 180 || !got.CreatedAt.Equal(created) {
			mt.Errorf("unexpected model %+v", got)
		}
	})

	mt.Run("empty cursor maps to not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(models.EntityAirplane), mtest.FirstBatch))
		store := NewStore(mt.Client, DefaultDatabase)

		_, err := store.ReadAirplaneByID(ctx, models.ID(primitive.NewObjectID().Hex()))
		if !errors.Is(err, repositories.ErrNotFound) {
			mt.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("empty collection reads are non nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(models.EntityFlight), mtest.FirstBatch))
		store := NewStore(mt.Client, DefaultDatabase)

		flights, err := store.ReadFlights(ctx)
		if err != nil {
			mt.Fatalf("ReadFlights: %v", err)
		}
		if flights == nil || len(flights) != 0 {
			mt.Errorf("expected an empty non-nil slice, got %#v", flights)
		}
	})

	mt.Run("invalid id never reaches the server", func(mt *mtest.T) {
		store := NewStore(mt.Client, DefaultDatabase)

		if _, err := store.ReadSyndicateByID(ctx, "42"); !errors.Is(err, repositories.ErrInvalidID) {
			mt.Errorf("expected ErrInvalidID, got %v", err)
		}
		_, err := store.CreateAirplane(ctx, &models.Airplane{ModelID: "not-an-object-id"})
		if !errors.Is(err, repositories.ErrInvalidID) {
			mt.Errorf("expected ErrInvalidID, got %v", err)
		}
	})

	mt.Run("technician employees come from the pipeline", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		location := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(models.EntityEmployee), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Ana"},
			{Key: "house_location_id", Value: location},
			{Key: "phone_number", Value: "555-0101"},
			{Key: "salary", Value: 4200.0},
		}))
		store := NewStore(mt.Client, DefaultDatabase)

		employees, err := store.ReadTechnicianEmployees(ctx)
		if err != nil {
			mt.Fatalf("ReadTechnicianEmployees: %v", err)
		}
		if len(employees) != 1 || employees[0].Name != "Ana" || employees[0].HouseLocationID.String() != location.Hex() {
			mt.Errorf("unexpected employees %+v", employees)
		}
	})

	mt.Run("complete test made decodes projected fields", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(models.EntityTestMade), mtest.FirstBatch, bson.D{
			{Key: "id", Value: oid},
			{Key: "obtained_score", Value: 65.0},
			{Key: "test_name", Value: "Landing gear"},
			{Key: "minimum_score", Value: 70.0},
		}))
		store := NewStore(mt.Client, DefaultDatabase)

		complete, err := store.ReadCompleteTestMade(ctx, models.ID(oid.Hex()))
		if err != nil {
			mt.Fatalf("ReadCompleteTestMade: %v", err)
		}
		if complete.ID.String() != oid.Hex() || complete.TestName != "Landing gear" || complete.Passed() {
			mt.Errorf("unexpected complete test %+v", complete)
		}
	})

	mt.Run("complete test made without a match is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(models.EntityTestMade), mtest.FirstBatch))
		store := NewStore(mt.Client, DefaultDatabase)

		_, err := store.ReadCompleteTestMade(ctx, models.ID(primitive.NewObjectID().Hex()))
		if !errors.Is(err, repositories.ErrNotFound) {
			mt.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("server errors are wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))
		store := NewStore(mt.Client, DefaultDatabase)

		_, err := store.ReadLocations(ctx)
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != 2 {
			mt.Errorf("expected the command error to be wrapped, got %v", err)
		}
	})

	mt.Run("updates succeed on acknowledged writes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		store := NewStore(mt.Client, DefaultDatabase)

		err := store.UpdateAirplaneModelByID(ctx, models.ID(primitive.NewObjectID().Hex()), models.AirplaneModelUpdate{
			Capacity: 200, Weight: 50000, ImagePath: "new.png",
		})
		if err != nil {
			mt.Fatalf("UpdateAirplaneModelByID: %v", err)
		}
	})
}

// TestStoreConformance runs the shared suite against a real deployment when
// AIRPORT_TEST_MONGO_URI points at a disposable MongoDB server.
func TestStoreConformance(t *testing.T) {
	uri := os.Getenv("AIRPORT_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("AIRPORT_TEST_MONGO_URI not set")
	}

	storetest.Run(t, func(t *testing.T) repositories.Store {
		ctx := context.Background()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			t.Fatalf("mongo.Connect: %v", err)
		}
		store := NewStore(client, "airport_test")
		if err := store.db.Drop(ctx); err != nil {
			t.Fatalf("drop database: %v", err)
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			t.Fatalf("EnsureIndexes: %v", err)
		}
		return store
	})
}
