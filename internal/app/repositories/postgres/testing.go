package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/airport/internal/app/models"
)

var testMadeColumns = []string{"id", "score", "start_date", "finish_date", "airplane_id", "integrity_test_id", "technician_id", "created_at", "updated_at"}

func scanTestMade(row scanner) (*models.TestMade, error) {
	t := &models.TestMade{}
	err := row.Scan(&t.ID, &t.Score, &t.StartDate, &t.FinishDate, &t.AirplaneID, &t.IntegrityTestID, &t.TechnicianID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func testMadeValues(test *models.TestMade) (map[string]any, error) {
	airplaneKey, err := parseID(test.AirplaneID)
	if err != nil {
		return nil, err
	}
	integrityKey, err := parseID(test.IntegrityTestID)
	if err != nil {
		return nil, err
	}
	techKey, err := parseID(test.TechnicianID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"score":             test.Score,
		"start_date":        test.StartDate,
		"finish_date":       test.FinishDate,
		"airplane_id":       airplaneKey,
		"integrity_test_id": integrityKey,
		"technician_id":     techKey,
	}, nil
}

// CreateTestMade inserts a test made and returns its id
func (s *Store) CreateTestMade(ctx context.Context, test *models.TestMade) (models.ID, error) {
	values, err := testMadeValues(test)
	if err != nil {
		return "", err
	}
	return s.insert(ctx, s.sb.Insert("test_made").SetMap(values), "create test made")
}

func (s *Store) ReadTestsMade(ctx context.Context) ([]*models.TestMade, error) {
	q := s.sb.Select(testMadeColumns...).From("test_made").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanTestMade, "read tests made")
}

func (s *Store) ReadTestMadeByID(ctx context.Context, id models.ID) (*models.TestMade, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(testMadeColumns...).From("test_made").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanTestMade, "read test made by id")
}

func (s *Store) ReadTestsMadeByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TestMade, error) {
	key, err := parseID(technicianID)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(testMadeColumns...).From("test_made").Where(squirrel.Eq{"technician_id": key}).OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanTestMade, "read tests made by technician id")
}

func (s *Store) ReadTestsMadeByAirplaneID(ctx context.Context, airplaneID models.ID) ([]*models.TestMade, error) {
	key, err := parseID(airplaneID)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(testMadeColumns...).From("test_made").Where(squirrel.Eq{"airplane_id": key}).OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanTestMade, "read tests made by airplane id")
}

func (s *Store) UpdateTestMadeByID(ctx context.Context, id models.ID, test *models.TestMade) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	values, err := testMadeValues(test)
	if err != nil {
		return err
	}
	q := s.sb.Update("test_made").SetMap(touch(values)).Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update test made")
}

func (s *Store) DeleteTestMadeByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("test_made").Where(squirrel.Eq{"id": key}), "delete test made")
}

var completeTestColumns = []string{
	"tm.id", "tm.score AS obtained_score", "tm.start_date", "tm.finish_date",
	"tm.airplane_id", "tm.integrity_test_id", "tm.technician_id",
	"it.name AS test_name", "it.minimum_score",
}

func scanCompleteTest(row scanner) (*models.CompleteTestMade, error) {
	c := &models.CompleteTestMade{}
	err := row.Scan(&c.ID, &c.ObtainedScore, &c.StartDate, &c.FinishDate, &c.AirplaneID, &c.IntegrityTestID, &c.TechnicianID, &c.TestName, &c.MinimumScore)
	return c, err
}

func (s *Store) completeTests() squirrel.SelectBuilder {
	return s.sb.Select(completeTestColumns...).
		From("test_made tm").
		Join("integrity_test it ON it.id = tm.integrity_test_id")
}

// ReadCompleteTestMade joins one test made with its integrity test
func (s *Store) ReadCompleteTestMade(ctx context.Context, id models.ID) (*models.CompleteTestMade, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.completeTests().Where(squirrel.Eq{"tm.id": key})
	return selectOne(ctx, s.db, q, scanCompleteTest, "read complete test made")
}

// ReadCompleteTestsMade joins every test made with its integrity test
func (s *Store) ReadCompleteTestsMade(ctx context.Context) ([]*models.CompleteTestMade, error) {
	q := s.completeTests().OrderBy("tm.id ASC")
	return selectMany(ctx, s.db, q, scanCompleteTest, "read complete tests made")
}

var integrityTestColumns = []string{"id", "name", "minimum_score", "created_at", "updated_at"}

func scanIntegrityTest(row scanner) (*models.IntegrityTest, error) {
	t := &models.IntegrityTest{}
	err := row.Scan(&t.ID, &t.Name, &t.MinimumScore, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (s *Store) CreateIntegrityTest(ctx context.Context, test *models.IntegrityTest) (models.ID, error) {
	q := s.sb.Insert("integrity_test").Columns("name", "minimum_score").Values(test.Name, test.MinimumScore)
	return s.insert(ctx, q, "create integrity test")
}

func (s *Store) ReadIntegrityTests(ctx context.Context) ([]*models.IntegrityTest, error) {
	q := s.sb.Select(integrityTestColumns...).From("integrity_test").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanIntegrityTest, "read integrity tests")
}

func (s *Store) ReadIntegrityTestByID(ctx context.Context, id models.ID) (*models.IntegrityTest, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(integrityTestColumns...).From("integrity_test").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanIntegrityTest, "read integrity test by id")
}

func (s *Store) UpdateIntegrityTestByID(ctx context.Context, id models.ID, test *models.IntegrityTest) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	q := s.sb.Update("integrity_test").
		SetMap(touch(map[string]any{"name": test.Name, "minimum_score": test.MinimumScore})).
		Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update integrity test")
}

func (s *Store) DeleteIntegrityTestByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("integrity_test").Where(squirrel.Eq{"id": key}), "delete integrity test")
}
