package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/apperrors"
	"github.com/yigit/airport/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// completeTechniciansLimit bounds the concurrent reads of CompleteTechnicians
const completeTechniciansLimit = 8

// StaffService defines the operations on employees, technicians and their certifications
type StaffService interface {
	GetEmployees(ctx context.Context) ([]*models.Employee, error)
	GetEmployeeByID(ctx context.Context, id models.ID) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (models.ID, error)
	UpdateEmployee(ctx context.Context, id models.ID, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id models.ID) error
	GetTechnicianEmployees(ctx context.Context) ([]*models.Employee, error)
	GetNonTechnicianEmployees(ctx context.Context) ([]*models.Employee, error)

	GetTechnicians(ctx context.Context) ([]*models.Technician, error)
	PromoteEmployee(ctx context.Context, employeeID models.ID) error
	HireTechnician(ctx context.Context, employee *models.Employee) (models.ID, error)
	DeleteTechnician(ctx context.Context, id models.ID) error

	GetTechnicianPros(ctx context.Context, technicianID, modelID models.ID) ([]*models.TechnicianProAtModel, error)
	CreateTechnicianPro(ctx context.Context, technicianID, modelID models.ID) (models.ID, error)
	DeleteTechnicianPro(ctx context.Context, id models.ID) error

	GetCompleteTechnician(ctx context.Context, id models.ID) (*models.TechnicianInfoWithTestsAndModels, error)
	GetCompleteTechnicians(ctx context.Context) ([]models.TechnicianInfoWithTestsAndModels, error)
}

type staffServiceImpl struct {
	store repositories.Store
}

// NewStaffService creates a new staff service instance
func NewStaffService(store repositories.Store) StaffService {
	return &staffServiceImpl{store: store}
}

// Employees

func (s *staffServiceImpl) GetEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.store.ReadEmployees(ctx)
}

func (s *staffServiceImpl) GetEmployeeByID(ctx context.Context, id models.ID) (*models.Employee, error) {
	employee, err := s.store.ReadEmployeeByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrEmployeeNotFound)
	}
	return employee, nil
}

// validateEmployee checks the fields and the referenced location and syndicate
func (s *staffServiceImpl) validateEmployee(ctx context.Context, employee *models.Employee) error {
	employee.Name = strings.TrimSpace(employee.Name)
	if employee.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if employee.Salary < 0 {
		return fmt.Errorf("%w: salary must not be negative", apperrors.ErrValidationFailed)
	}
	if employee.HouseLocationID.IsZero() {
		return fmt.Errorf("%w: house_location_id is required", apperrors.ErrValidationFailed)
	}
	if _, err := s.store.ReadLocationByID(ctx, employee.HouseLocationID); err != nil {
		return lookup(err, ErrLocationNotFound)
	}
	if employee.SyndicateID.IsZero() {
		return fmt.Errorf("%w: syndicate_id is required", apperrors.ErrValidationFailed)
	}
	if _, err := s.store.ReadSyndicateByID(ctx, employee.SyndicateID); err != nil {
		return lookup(err, ErrSyndicateNotFound)
	}
	return nil
}

func (s *staffServiceImpl) CreateEmployee(ctx context.Context, employee *models.Employee) (models.ID, error) {
	if err := s.validateEmployee(ctx, employee); err != nil {
		return "", err
	}
	id, err := s.store.CreateEmployee(ctx, employee)
	if err != nil {
		return "", fmt.Errorf("error creating employee: %w", err)
	}
	logger.Info().Str("id", id.String()).Str("name", employee.Name).Msg("Employee created")
	return id, nil
}

func (s *staffServiceImpl) UpdateEmployee(ctx context.Context, id models.ID, employee *models.Employee) error {
	if _, err := s.store.ReadEmployeeByID(ctx, id); err != nil {
		return lookup(err, ErrEmployeeNotFound)
	}
	if err := s.validateEmployee(ctx, employee); err != nil {
		return err
	}
	if err := s.store.UpdateEmployeeByID(ctx, id, employee); err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}
	return nil
}

// DeleteEmployee removes the employee together with its technician record
func (s *staffServiceImpl) DeleteEmployee(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadEmployeeByID(ctx, id); err != nil {
		return lookup(err, ErrEmployeeNotFound)
	}

	_, err := s.store.ReadTechnicianByID(ctx, id)
	switch {
	case err == nil:
		if err := s.store.DeleteTechnicianByID(ctx, id); err != nil {
			return fmt.Errorf("error deleting technician: %w", err)
		}
	case !errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("error reading technician: %w", err)
	}

	if err := s.store.DeleteEmployeeByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}
	logger.Info().Str("id", id.String()).Msg("Employee deleted")
	return nil
}

func (s *staffServiceImpl) GetTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.store.ReadTechnicianEmployees(ctx)
}

func (s *staffServiceImpl) GetNonTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.store.ReadNonTechnicianEmployees(ctx)
}

// Technicians

func (s *staffServiceImpl) GetTechnicians(ctx context.Context) ([]*models.Technician, error) {
	return s.store.ReadTechnicians(ctx)
}

// PromoteEmployee turns an existing employee into a technician
func (s *staffServiceImpl) PromoteEmployee(ctx context.Context, employeeID models.ID) error {
	if _, err := s.store.ReadEmployeeByID(ctx, employeeID); err != nil {
		return lookup(err, ErrEmployeeNotFound)
	}

	_, err := s.store.ReadTechnicianByID(ctx, employeeID)
	if err == nil {
		return ErrAlreadyTechnician
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("error reading technician: %w", err)
	}

	if err := s.store.CreateTechnician(ctx, employeeID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return ErrAlreadyTechnician
		}
		return fmt.Errorf("error creating technician: %w", err)
	}
	logger.Info().Str("employee_id", employeeID.String()).Msg("Employee promoted to technician")
	return nil
}

// HireTechnician creates an employee and its technician record. The two
// writes are not atomic: when the second fails the employee is kept.
func (s *staffServiceImpl) HireTechnician(ctx context.Context, employee *models.Employee) (models.ID, error) {
	id, err := s.CreateEmployee(ctx, employee)
	if err != nil {
		return "", err
	}
	if err := s.store.CreateTechnician(ctx, id); err != nil {
		logger.Error().Err(err).Str("employee_id", id.String()).Msg("Employee created but technician record failed")
		return "", fmt.Errorf("error creating technician for employee %s: %w", id, err)
	}
	return id, nil
}

func (s *staffServiceImpl) DeleteTechnician(ctx context.Context, id models.ID) error {
	if _, err := s.store.ReadTechnicianByID(ctx, id); err != nil {
		return lookup(err, ErrTechnicianNotFound)
	}
	if err := s.store.DeleteTechnicianByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting technician: %w", err)
	}
	return nil
}

// Certifications

// GetTechnicianPros filters certifications by technician, by model or by both.
// At least one filter is required.
func (s *staffServiceImpl) GetTechnicianPros(ctx context.Context, technicianID, modelID models.ID) ([]*models.TechnicianProAtModel, error) {
	switch {
	case !technicianID.IsZero() && !modelID.IsZero():
		pro, err := s.store.ReadTechnicianPro(ctx, technicianID, modelID)
		if errors.Is(err, repositories.ErrNotFound) {
			return []*models.TechnicianProAtModel{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []*models.TechnicianProAtModel{pro}, nil
	case !technicianID.IsZero():
		return s.store.ReadTechnicianProsByTechnicianID(ctx, technicianID)
	case !modelID.IsZero():
		return s.store.ReadTechnicianProsByAirplaneModelID(ctx, modelID)
	default:
		return nil, ErrTechnicianProFilter
	}
}

// CreateTechnicianPro certifies an existing technician on an existing model
func (s *staffServiceImpl) CreateTechnicianPro(ctx context.Context, technicianID, modelID models.ID) (models.ID, error) {
	if _, err := s.store.ReadTechnicianByID(ctx, technicianID); err != nil {
		return "", lookup(err, ErrTechnicianNotFound)
	}
	if _, err := s.store.ReadAirplaneModelByID(ctx, modelID); err != nil {
		return "", lookup(err, ErrAirplaneModelNotFound)
	}

	_, err := s.store.ReadTechnicianPro(ctx, technicianID, modelID)
	if err == nil {
		return "", ErrTechnicianProExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return "", fmt.Errorf("error reading technician proficiency: %w", err)
	}

	id, err := s.store.CreateTechnicianPro(ctx, &models.TechnicianProAtModel{
		TechnicianID:    technicianID,
		AirplaneModelID: modelID,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return "", ErrTechnicianProExists
		}
		return "", fmt.Errorf("error creating technician proficiency: %w", err)
	}
	return id, nil
}

func (s *staffServiceImpl) DeleteTechnicianPro(ctx context.Context, id models.ID) error {
	if err := s.store.DeleteTechnicianProByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting technician proficiency: %w", err)
	}
	return nil
}

// Aggregates

// GetCompleteTechnician bundles a technician with its syndicate, tests made and certified models
func (s *staffServiceImpl) GetCompleteTechnician(ctx context.Context, id models.ID) (*models.TechnicianInfoWithTestsAndModels, error) {
	info, err := s.completeTechnician(ctx, id)
	if err != nil {
		return nil, aggregateError(err, ErrTechnicianNotFound, "complete technician")
	}
	return info, nil
}

// GetCompleteTechnicians builds the complete view of every technician
func (s *staffServiceImpl) GetCompleteTechnicians(ctx context.Context) ([]models.TechnicianInfoWithTestsAndModels, error) {
	technicians, err := s.store.ReadTechnicians(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading technicians: %w", err)
	}

	out := make([]models.TechnicianInfoWithTestsAndModels, len(technicians))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(completeTechniciansLimit)
	for i, technician := range technicians {
		g.Go(func() error {
			info, err := s.completeTechnician(gctx, technician.ID)
			if err != nil {
				return err
			}
			out[i] = *info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, aggregateError(err, ErrTechnicianNotFound, "complete technicians")
	}
	return out, nil
}

func (s *staffServiceImpl) completeTechnician(ctx context.Context, id models.ID) (*models.TechnicianInfoWithTestsAndModels, error) {
	if _, err := s.store.ReadTechnicianByID(ctx, id); err != nil {
		return nil, err
	}

	var (
		employee *models.Employee
		tests    []*models.TestMade
		pros     []*models.TechnicianProAtModel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employee, err = s.store.ReadEmployeeByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		tests, err = s.store.ReadTestsMadeByTechnicianID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		pros, err = s.store.ReadTechnicianProsByTechnicianID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.TechnicianInfoWithTestsAndModels{
		TechnicianID: id,
		SyndicateID:  employee.SyndicateID,
		TestsMadeIDs: models.IDs(tests, func(t *models.TestMade) models.ID { return t.ID }),
		ModelsProIDs: models.IDs(pros, func(p *models.TechnicianProAtModel) models.ID { return p.AirplaneModelID }),
	}, nil
}
