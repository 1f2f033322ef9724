package mongo

import (
	"context"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateTestMade inserts a test made and returns its id
func (s *Store) CreateTestMade(ctx context.Context, test *models.TestMade) (models.ID, error) {
	if err := checkIDs(test.AirplaneID, test.IntegrityTestID, test.TechnicianID); err != nil {
		return "", err
	}
	record := *test
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityTestMade, record.ID, record, "create test made")
}

func (s *Store) ReadTestsMade(ctx context.Context) ([]*models.TestMade, error) {
	return findMany[models.TestMade](ctx, s.collection(models.EntityTestMade), bson.M{}, nil, "read tests made")
}

func (s *Store) ReadTestMadeByID(ctx context.Context, id models.ID) (*models.TestMade, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.TestMade](ctx, s.collection(models.EntityTestMade), bson.M{"_id": oid}, "read test made by id")
}

func (s *Store) ReadTestsMadeByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TestMade, error) {
	oid, err := objectID(technicianID)
	if err != nil {
		return nil, err
	}
	return findMany[models.TestMade](ctx, s.collection(models.EntityTestMade), bson.M{"technician_id": oid}, nil, "read tests made by technician id")
}

func (s *Store) ReadTestsMadeByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.TestMade, error) {
	oid, err := objectID(airplaneID)
	if err != nil {
		return nil, err
	}
	return findMany[models.TestMade](ctx, s.collection(models.EntityTestMade), bson.M{"airplane_id": oid}, nil, "read tests made by airplane id")
}

func (s *Store) UpdateTestMadeByID(ctx context.Context, id models.ID, test *models.TestMade) error {
	if err := checkIDs(test.AirplaneID, test.IntegrityTestID, test.TechnicianID); err != nil {
		return err
	}
	return s.updateByID(ctx, models.EntityTestMade, id, bson.M{
		"score":             test.Score,
		"start_date":        test.StartDate,
		"finish_date":       test.FinishDate,
		"airplane_id":       test.AirplaneID,
		"integrity_test_id": test.IntegrityTestID,
		"technician_id":     test.TechnicianID,
	}, "update test made")
}

func (s *Store) DeleteTestMadeByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityTestMade, id, "delete test made")
}

// completeTests joins tests made with their integrity test. Tests whose
// integrity test is gone are dropped by the $unwind stage.
func completeTests(match bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.EntityIntegrityTest},
			{Key: "localField", Value: "integrity_test_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "integrity_test"},
		}}},
		bson.D{{Key: "$unwind", Value: "$integrity_test"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: "$_id"},
			{Key: "obtained_score", Value: "$score"},
			{Key: "start_date", Value: 1},
			{Key: "finish_date", Value: 1},
			{Key: "airplane_id", Value: 1},
			{Key: "integrity_test_id", Value: 1},
			{Key: "technician_id", Value: 1},
			{Key: "test_name", Value: "$integrity_test.name"},
			{Key: "minimum_score", Value: "$integrity_test.minimum_score"},
		}}},
	)
}

// ReadCompleteTestMade joins one test made with its integrity test
func (s *Store) ReadCompleteTestMade(ctx context.Context, id models.ID) (*models.CompleteTestMade, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	results, err := aggregate[models.CompleteTestMade](ctx, s.collection(models.EntityTestMade),
		completeTests(bson.D{{Key: "_id", Value: oid}}), "read complete test made")
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, repositories.ErrNotFound
	}
	return results[0], nil
}

// ReadCompleteTestsMade joins every test made with its integrity test
func (s *Store) ReadCompleteTestsMade(ctx context.Context) ([]*models.CompleteTestMade, error) {
	return aggregate[models.CompleteTestMade](ctx, s.collection(models.EntityTestMade), completeTests(nil), "read complete tests made")
}

func (s *Store) CreateIntegrityTest(ctx context.Context, test *models.IntegrityTest) (models.ID, error) {
	record := *test
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityIntegrityTest, record.ID, record, "create integrity test")
}

func (s *Store) ReadIntegrityTests(ctx context.Context) ([]*models.IntegrityTest, error) {
	return findMany[models.IntegrityTest](ctx, s.collection(models.EntityIntegrityTest), bson.M{}, nil, "read integrity tests")
}

func (s *Store) ReadIntegrityTestByID(ctx context.Context, id models.ID) (*models.IntegrityTest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.IntegrityTest](ctx, s.collection(models.EntityIntegrityTest), bson.M{"_id": oid}, "read integrity test by id")
}

func (s *Store) UpdateIntegrityTestByID(ctx context.Context, id models.ID, test *models.IntegrityTest) error {
	return s.updateByID(ctx, models.EntityIntegrityTest, id, bson.M{
		"name":          test.Name,
		"minimum_score": test.MinimumScore,
	}, "update integrity test")
}

func (s *Store) DeleteIntegrityTestByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityIntegrityTest, id, "delete integrity test")
}
