package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/pkg/apperrors"
	"github.com/yigit/airport/internal/pkg/filestorage"
	"github.com/yigit/airport/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// AirplaneModelService defines the operations on airplane models
type AirplaneModelService interface {
	GetAirplaneModels(ctx context.Context) ([]*models.AirplaneModel, error)
	GetAirplaneModelByID(ctx context.Context, id models.ID) (*models.AirplaneModel, error)
	CreateAirplaneModel(ctx context.Context, model *models.AirplaneModel, image *multipart.FileHeader) (models.ID, error)
	UpdateAirplaneModel(ctx context.Context, id models.ID, capacity int, weight float64, image *multipart.FileHeader) error
	DeleteAirplaneModel(ctx context.Context, id models.ID) error
	GetAirplaneModelWithTechsAndAirplanes(ctx context.Context, id models.ID) (*models.AirplaneModelWithTechsAndAirplanes, error)
	GetModelsAndEmployees(ctx context.Context) (*models.AirplaneModelsAndEmployees, error)
}

// airplaneModelServiceImpl implements the AirplaneModelService interface
type airplaneModelServiceImpl struct {
	store repositories.Store
	files filestorage.FileStorage
}

// NewAirplaneModelService creates a new airplane model service instance
func NewAirplaneModelService(store repositories.Store, files filestorage.FileStorage) AirplaneModelService {
	return &airplaneModelServiceImpl{
		store: store,
		files: files,
	}
}

// validateModel validates the numeric fields of a model
func validateModel(capacity int, weight float64) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", apperrors.ErrValidationFailed)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAirplaneModels retrieves all models ordered by code
func (s *airplaneModelServiceImpl) GetAirplaneModels(ctx context.Context) ([]*models.AirplaneModel, error) {
	return s.store.ReadAirplaneModels(ctx)
}

// GetAirplaneModelByID retrieves a model by id
func (s *airplaneModelServiceImpl) GetAirplaneModelByID(ctx context.Context, id models.ID) (*models.AirplaneModel, error) {
	model, err := s.store.ReadAirplaneModelByID(ctx, id)
	if err != nil {
		return nil, lookup(err, ErrAirplaneModelNotFound)
	}
	return model, nil
}

// duplicates reports which of code and imagePath are used by a model other than exclude
func (s *airplaneModelServiceImpl) duplicates(ctx context.Context, code, imagePath string, exclude models.ID) (*DuplicateModelError, error) {
	found, err := s.store.CheckAirplaneModelDuplicate(ctx, code, imagePath)
	if err != nil {
		return nil, fmt.Errorf("error checking airplane model duplicates: %w", err)
	}

	dup := &DuplicateModelError{}
	for _, m := range found {
		if m.ID == exclude {
			continue
		}
		if code != "" && m.Code == code {
			dup.Code = true
		}
		if imagePath != "" && m.ImagePath == imagePath {
			dup.ImagePath = true
		}
	}
	if dup.Code || dup.ImagePath {
		return dup, nil
	}
	return nil, nil
}

// CreateAirplaneModel checks code and image for duplicates, stores the image
// and then the model. The image is removed again when the insert fails,
// unless another model claimed the same name in the meantime.
func (s *airplaneModelServiceImpl) CreateAirplaneModel(ctx context.Context, model *models.AirplaneModel, image *multipart.FileHeader) (models.ID, error) {
	model.Code = strings.TrimSpace(model.Code)
	if model.Code == "" {
		return "", fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateModel(model.Capacity, model.Weight); err != nil {
		return "", err
	}
	if image == nil {
		return "", ErrAirplaneModelImageRequired
	}
	model.ImagePath = filestorage.FileName(image)

	dup, err := s.duplicates(ctx, model.Code, model.ImagePath, "")
	if err != nil {
		return "", err
	}
	if dup != nil {
		return "", dup
	}

	if _, err := s.files.SaveFile(image); err != nil {
		return "", s.fileError(err)
	}

	id, err := s.store.CreateAirplaneModel(ctx, model)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return "", ErrAirplaneModelConflict
		}
		s.removeImage(model.ImagePath)
		return "", fmt.Errorf("error creating airplane model: %w", err)
	}

	logger.Info().Str("id", id.String()).Str("code", model.Code).Msg("Airplane model created")
	return id, nil
}

// UpdateAirplaneModel replaces capacity and weight. When image is set it
// replaces the picture, which must not belong to another model.
func (s *airplaneModelServiceImpl) UpdateAirplaneModel(ctx context.Context, id models.ID, capacity int, weight float64, image *multipart.FileHeader) error {
	if err := validateModel(capacity, weight); err != nil {
		return err
	}

	current, err := s.store.ReadAirplaneModelByID(ctx, id)
	if err != nil {
		return lookup(err, ErrAirplaneModelNotFound)
	}

	imagePath := current.ImagePath
	replaced := false
	if image != nil {
		imagePath = filestorage.FileName(image)
		dup, err := s.duplicates(ctx, "", imagePath, current.ID)
		if err != nil {
			return err
		}
		if dup != nil {
			return dup
		}
		if _, err := s.files.SaveFile(image); err != nil {
			return s.fileError(err)
		}
		replaced = imagePath != current.ImagePath
	}

	err = s.store.UpdateAirplaneModelByID(ctx, id, models.AirplaneModelUpdate{
		Capacity:  capacity,
		Weight:    weight,
		ImagePath: imagePath,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return ErrAirplaneModelConflict
		}
		if replaced {
			s.removeImage(imagePath)
		}
		return fmt.Errorf("error updating airplane model: %w", err)
	}

	if replaced {
		s.removeImage(current.ImagePath)
	}
	return nil
}

// DeleteAirplaneModel removes the model's airplanes, the model and its image.
// Models with certified technicians are refused before anything is deleted.
func (s *airplaneModelServiceImpl) DeleteAirplaneModel(ctx context.Context, id models.ID) error {
	model, err := s.store.ReadAirplaneModelByID(ctx, id)
	if err != nil {
		return lookup(err, ErrAirplaneModelNotFound)
	}

	pros, err := s.store.ReadTechnicianProsByAirplaneModelID(ctx, id)
	if err != nil {
		return fmt.Errorf("error reading proficiencies of model %s: %w", id, err)
	}
	if len(pros) > 0 {
		return ErrAirplaneModelInUse
	}

	if err := s.store.DeleteAirplanesByModelID(ctx, id); err != nil {
		return fmt.Errorf("error deleting airplanes of model %s: %w", id, err)
	}
	if err := s.store.DeleteAirplaneModelByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrReferenceViolation) {
			return ErrAirplaneModelInUse
		}
		return fmt.Errorf("error deleting airplane model: %w", err)
	}
	s.removeImage(model.ImagePath)

	logger.Info().Str("id", id.String()).Str("code", model.Code).Msg("Airplane model deleted")
	return nil
}

// GetAirplaneModelWithTechsAndAirplanes bundles a model with its airplanes
// and the technicians certified on it
func (s *airplaneModelServiceImpl) GetAirplaneModelWithTechsAndAirplanes(ctx context.Context, id models.ID) (*models.AirplaneModelWithTechsAndAirplanes, error) {
	const aggregate = "airplane model with techs and airplanes"

	model, err := s.store.ReadAirplaneModelByID(ctx, id)
	if err != nil {
		return nil, aggregateError(err, ErrAirplaneModelNotFound, aggregate)
	}

	var (
		pros      []*models.TechnicianProAtModel
		airplanes []*models.Airplane
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pros, err = s.store.ReadTechnicianProsByAirplaneModelID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		airplanes, err = s.store.ReadAirplanesByModelID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, aggregateError(err, ErrAirplaneModelNotFound, aggregate)
	}

	return &models.AirplaneModelWithTechsAndAirplanes{
		ID:               model.ID,
		Capacity:         model.Capacity,
		Weight:           model.Weight,
		Code:             model.Code,
		ImagePath:        model.ImagePath,
		TechnicianProIDs: models.IDs(pros, func(p *models.TechnicianProAtModel) models.ID { return p.TechnicianID }),
		AirplaneIDs:      models.IDs(airplanes, func(a *models.Airplane) models.ID { return a.ID }),
	}, nil
}

// GetModelsAndEmployees feeds the proficiency form with every model and employee
func (s *airplaneModelServiceImpl) GetModelsAndEmployees(ctx context.Context) (*models.AirplaneModelsAndEmployees, error) {
	var (
		airplaneModels []*models.AirplaneModel
		employees      []*models.Employee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		airplaneModels, err = s.store.ReadAirplaneModels(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.store.ReadEmployees(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error reading models and employees: %w", err)
	}

	return &models.AirplaneModelsAndEmployees{
		Models:    deref(airplaneModels),
		Employees: deref(employees),
	}, nil
}

// fileError classifies image storage failures
func (s *airplaneModelServiceImpl) fileError(err error) error {
	if errors.Is(err, filestorage.ErrUnsupportedFileType) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}
	return fmt.Errorf("error storing airplane model image: %w", err)
}

// removeImage deletes a stored picture, logging failures
func (s *airplaneModelServiceImpl) removeImage(name string) {
	if err := s.files.DeleteFile(name); err != nil {
		logger.Warn().Err(err).Str("image", name).Msg("Failed to remove airplane model image")
	}
}
