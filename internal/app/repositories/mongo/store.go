// Package mongo implements repositories.Store on MongoDB. Each entity lives
// in its own collection and joins are aggregation pipelines. The engine
// enforces unique indexes only; references are never checked.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultDatabase is the database used when none is configured
const DefaultDatabase = "airport"

// Store handles every entity on a MongoDB database
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

var _ repositories.Store = (*Store)(nil)

// NewStore creates a Store on the named database of client
func NewStore(client *mongo.Client, database string) *Store {
	if database == "" {
		database = DefaultDatabase
	}
	return &Store{
		client: client,
		db:     client.Database(database),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Ping checks the connection to the primary
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique and lookup indexes the store relies on
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		models.EntityAirplaneModel: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "image_path", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		models.EntityTechnicianProAtModel: {
			{
				Keys:    bson.D{{Key: "technician_id", Value: 1}, {Key: "airplane_model_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "airplane_model_id", Value: 1}}},
		},
		models.EntityAirplane: {
			{Keys: bson.D{{Key: "model_id", Value: 1}}},
		},
		models.EntityTestMade: {
			{Keys: bson.D{{Key: "technician_id", Value: 1}}},
			{Keys: bson.D{{Key: "airplane_id", Value: 1}}},
		},
		models.EntityFlight: {
			{Keys: bson.D{{Key: "airplane_id", Value: 1}}},
		},
	}

	for name, idx := range indexes {
		if _, err := s.collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			logger.Error().Err(err).Str("collection", name).Msg("Failed to create indexes")
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	logger.Info().Int("collections", len(indexes)).Msg("MongoDB indexes ensured")
	return nil
}

// objectID parses an identifier into the ObjectID stored in _id
func objectID(id models.ID) (primitive.ObjectID, error) {
	oid, err := id.ObjectID()
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", repositories.ErrInvalidID, id.String())
	}
	return oid, nil
}

// checkIDs validates references before they are written
func checkIDs(ids ...models.ID) error {
	for _, id := range ids {
		if _, err := objectID(id); err != nil {
			return err
		}
	}
	return nil
}

func newID() models.ID {
	return models.ID(primitive.NewObjectID().Hex())
}

// writeError maps duplicate keys to ErrAlreadyExists and wraps everything else
func writeError(err error, what string) error {
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrAlreadyExists
	}
	logger.Error().Err(err).Str("operation", what).Msg("Error executing write command")
	return fmt.Errorf("error executing %s: %w", what, err)
}

func (s *Store) insert(ctx context.Context, collection string, id models.ID, document any, what string) (models.ID, error) {
	if _, err := s.collection(collection).InsertOne(ctx, document); err != nil {
		return "", writeError(err, what)
	}
	return id, nil
}

// updateByID sets fields on one document and stamps updated_at
func (s *Store) updateByID(ctx context.Context, collection string, id models.ID, fields bson.M, what string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	fields["updated_at"] = s.now()
	if _, err := s.collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}); err != nil {
		return writeError(err, what)
	}
	return nil
}

func (s *Store) deleteMany(ctx context.Context, collection string, filter bson.M, what string) error {
	if _, err := s.collection(collection).DeleteMany(ctx, filter); err != nil {
		return writeError(err, what)
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, collection string, id models.ID, what string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return s.deleteMany(ctx, collection, bson.M{"_id": oid}, what)
}

// findOne decodes the first matching document, mapping no match to ErrNotFound
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, what string) (*T, error) {
	record := new(T)
	if err := coll.FindOne(ctx, filter).Decode(record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		logger.Error().Err(err).Str("operation", what).Msg("Error finding document")
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	return record, nil
}

// findMany decodes every matching document into a non-nil slice
func findMany[T any](ctx context.Context, coll *mongo.Collection, filter any, sort bson.D, what string) ([]*T, error) {
	if sort == nil {
		sort = bson.D{{Key: "_id", Value: 1}}
	}
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error finding documents")
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	return decodeAll[T](ctx, cursor, what)
}

// aggregate runs a pipeline and decodes every result into a non-nil slice
func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, what string) ([]*T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error running aggregation")
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	return decodeAll[T](ctx, cursor, what)
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor, what string) ([]*T, error) {
	defer cursor.Close(ctx)

	records := []*T{}
	for cursor.Next(ctx) {
		record := new(T)
		if err := cursor.Decode(record); err != nil {
			logger.Error().Err(err).Str("operation", what).Msg("Error decoding document")
			return nil, fmt.Errorf("error decoding %s result: %w", what, err)
		}
		records = append(records, record)
	}
	if err := cursor.Err(); err != nil {
		logger.Error().Err(err).Str("operation", what).Msg("Error iterating cursor")
		return nil, fmt.Errorf("error iterating %s results: %w", what, err)
	}
	return records, nil
}
