package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/apperrors"
	"github.com/yigit/airport/internal/pkg/logger"
)

// TestingService defines the operations on integrity tests and the tests made with them
type TestingService interface {
	GetIntegrityTests(ctx context.Context) ([]*models.IntegrityTest, error)
	GetIntegrityTestByID(ctx context.Context, id models.ID) (*models.IntegrityTest, error)
	CreateIntegrityTest(ctx context.Context, test *models.IntegrityTest) (models.ID, error)
	UpdateIntegrityTest(ctx context.Context, id models.ID, test *models.IntegrityTest) error
	DeleteIntegrityTest(ctx context.Context, id models.ID) error

	GetTestsMade(ctx context.Context) ([]*models.TestMade, error)
	GetTestMadeByID(ctx context.Context, id models.ID) (*models.TestMade, error)
	CreateTestMade(ctx context.Context, test *models.TestMade) (models.ID, error)
	UpdateTestMade(ctx context.Context, id models.ID, test *models.TestMade) error
	DeleteTestMade(ctx context.Context, id models.ID) error

	GetCompleteTests(ctx context.Context) ([]*models.CompleteTestMade, error)
	GetCompleteTestByID(ctx context.Context, id models.ID) (*models.CompleteTestMade, error)
}

type testingServiceImpl struct {
	store repositories.Store
	log   zerolog.Logger
}

// NewTestingService creates a new testing service instance
func NewTestingService(store repositories.Store) TestingService {
	return &testingServiceImpl{
		store: store,
		log:   logger.Component("testing"),
	}
}

// Integrity tests

func (s *testingServiceImpl) GetIntegrityTests(ctx context.Context) ([]*models.IntegrityTest, error) {
	return s.store.ReadIntegrityTests(ctx)
}

func (s *testingServiceImpl) GetIntegrityTestByID(ctx context.Context, id models.ID) (*models.IntegrityTest, error) {
	test, err := s.store.ReadIntegrityTestByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrIntegrityTestNotFound)
	}
	return test, nil
}

func validateIntegrityTest(test *models.IntegrityTest) error {
	test.Name = strings.TrimSpace(test.Name)
	if test.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if test.MinimumScore < 0 {
		return fmt.Errorf("%w: minimum_score must not be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *testingServiceImpl) CreateIntegrityTest(ctx context.Context, test *models.IntegrityTest) (models.ID, error) {
	if err := validateIntegrityTest(test); err != nil {
		return "", err
	}
	id, err := s.store.CreateIntegrityTest(ctx, test)
	if err != nil {
		return "", fmt.Errorf("error creating integrity test: %w", err)
	}
	s.log.Info().Str("id", id.String()).Str("name", test.Name).Msg("Integrity test created")
	return id, nil
}

func (s *testingServiceImpl) UpdateIntegrityTest(ctx context.Context, id models.ID, test *models.IntegrityTest) error {
	if err := validateIntegrityTest(test); err != nil {
		return err
	}
	if _, err := s.store.ReadIntegrityTestByID(ctx, id); err != nil {
		return lookup(err, ErrIntegrityTestNotFound)
	}
	if err := s.store.UpdateIntegrityTestByID(ctx, id, test); err != nil {
		return fmt.Errorf("error updating integrity test: %w", err)
	}
	return nil
}

func (s *testingServiceImpl) DeleteIntegrityTest(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadIntegrityTestByID(ctx, id); err != nil {
		return lookup(err, ErrIntegrityTestNotFound)
	}
	if err := s.store.DeleteIntegrityTestByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting integrity test: %w", err)
	}
	return nil
}

// Tests made

func (s *testingServiceImpl) GetTestsMade(ctx context.Context) ([]*models.TestMade, error) {
	return s.store.ReadTestsMade(ctx)
}

func (s *testingServiceImpl) GetTestMadeByID(ctx context.Context, id models.ID) (*models.TestMade, error) {
	test, err := s.store.ReadTestMadeByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrTestMadeNotFound)
	}
	return test, nil
}

// validateTestMade checks score and dates, then that the airplane, the
// integrity test and the technician exist
func (s *testingServiceImpl) validateTestMade(ctx context.Context, test *models.TestMade) error {
	if test.Score < 0 {
		return ErrTestMadeScore
	}
	if test.FinishDate.Before(test.StartDate) {
		return ErrTestMadeDates
	}
	if _, err := s.store.ReadAirplaneByID(ctx, test.AirplaneID); err != nil {
		return lookup(err, ErrAirplaneNotFound)
	}
	if _, err := s.store.ReadIntegrityTestByID(ctx, test.IntegrityTestID); err != nil {
		return lookup(err, ErrIntegrityTestNotFound)
	}
	if _, err := s.store.ReadTechnicianByID(ctx, test.TechnicianID); err != nil {
		return lookup(err, ErrTechnicianNotFound)
	}
	return nil
}

func (s *testingServiceImpl) CreateTestMade(ctx context.Context, test *models.TestMade) (models.ID, error) {
	if err := s.validateTestMade(ctx, test); err != nil {
		return "", err
	}
	id, err := s.store.CreateTestMade(ctx, test)
	if err != nil {
		return "", fmt.Errorf("error creating test made: %w", err)
	}
	s.log.Info().
		Str("id", id.String()).
		Str("airplane_id", test.AirplaneID.String()).
		Str("technician_id", test.TechnicianID.String()).
		Msg("Test made recorded")
	return id, nil
}

func (s *testingServiceImpl) UpdateTestMade(ctx context.Context, id models.ID, test *models.TestMade) error {
	if _, err := s.store.ReadTestMadeByID(ctx, id); err != nil {
		return lookup(err, ErrTestMadeNotFound)
	}
	if err := s.validateTestMade(ctx, test); err != nil {
		return err
	}
	if err := s.store.UpdateTestMadeByID(ctx, id, test); err != nil {
		return fmt.Errorf("error updating test made: %w", err)
	}
	return nil
}

func (s *testingServiceImpl) DeleteTestMade(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadTestMadeByID(ctx, id); err != nil {
		return lookup(err, ErrTestMadeNotFound)
	}
	if err := s.store.DeleteTestMadeByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting test made: %w", err)
	}
	return nil
}

// Complete tests

func (s *testingServiceImpl) GetCompleteTests(ctx context.Context) ([]*models.CompleteTestMade, error) {
	tests, err := s.store.ReadCompleteTestsMade(ctx)
	if err != nil {
		return nil, err
	}
	passed := 0
	for _, test := range tests {
		if test.Passed() {
			passed++
		}
	}
	s.log.Debug().Int("tests", len(tests)).Int("passed", passed).Msg("Complete tests read")
	return tests, nil
}

func (s *testingServiceImpl) GetCompleteTestByID(ctx context.Context, id models.ID) (*models.CompleteTestMade, error) {
	test, err := s.store.ReadCompleteTestMade(ctx, id)
	if err != nil {
		return nil, aggregateError(err, ErrTestMadeNotFound, "complete test")
	}
	return test, nil
}
