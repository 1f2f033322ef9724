package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/airport/internal/app/models"
)

var airplaneModelColumns = []string{"id", "capacity", "weight", "code", "image_path", "created_at", "updated_at"}

func scanAirplaneModel(row scanner) (*models.AirplaneModel, error) {
	m := &models.AirplaneModel{}
	err := row.Scan(&m.ID, &m.Capacity, &m.Weight, &m.Code, &m.ImagePath, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// CreateAirplaneModel inserts a model and returns its id
func (s *Store) CreateAirplaneModel(ctx context.Context, model *models.AirplaneModel) (models.ID, error) {
	q := s.sb.Insert("airplane_model").
		Columns("capacity", "weight", "code", "image_path").
		Values(model.Capacity, model.Weight, model.Code, model.ImagePath)
	return s.insert(ctx, q, "create airplane model")
}

// ReadAirplaneModels retrieves all models ordered by code
func (s *Store) ReadAirplaneModels(ctx context.Context) ([]*models.AirplaneModel, error) {
	q := s.sb.Select(airplaneModelColumns...).From("airplane_model").OrderBy("code ASC")
	return selectMany(ctx, s.db, q, scanAirplaneModel, "read airplane models")
}

// ReadAirplaneModelByID retrieves a model by id
func (s *Store) ReadAirplaneModelByID(ctx context.Context, id models.ID) (*models.AirplaneModel, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(airplaneModelColumns...).From("airplane_model").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanAirplaneModel, "read airplane model by id")
}

// ReadAirplaneModelByCode retrieves a model by its unique code
func (s *Store) ReadAirplaneModelByCode(ctx context.Context, code string) (*models.AirplaneModel, error) {
	q := s.sb.Select(airplaneModelColumns...).From("airplane_model").Where(squirrel.Eq{"code": code})
	return selectOne(ctx, s.db, q, scanAirplaneModel, "read airplane model by code")
}

// ReadAirplaneModelByImagePath retrieves a model by its unique image path
func (s *Store) ReadAirplaneModelByImagePath(ctx context.Context, imagePath string) (*models.AirplaneModel, error) {
	q := s.sb.Select(airplaneModelColumns...).From("airplane_model").Where(squirrel.Eq{"image_path": imagePath})
	return selectOne(ctx, s.db, q, scanAirplaneModel, "read airplane model by image path")
}

// CheckAirplaneModelDuplicate returns the models colliding on code or image path
func (s *Store) CheckAirplaneModelDuplicate(ctx context.Context, code, imagePath string) ([]*models.AirplaneModel, error) {
	or := squirrel.Or{}
	if code != "" {
		or = append(or, squirrel.Eq{"code": code})
	}
	if imagePath != "" {
		or = append(or, squirrel.Eq{"image_path": imagePath})
	}
	if len(or) == 0 {
		return []*models.AirplaneModel{}, nil
	}

	q := s.sb.Select(airplaneModelColumns...).From("airplane_model").Where(or).OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanAirplaneModel, "check airplane model duplicate")
}

// UpdateAirplaneModelByID replaces capacity, weight and image path
func (s *Store) UpdateAirplaneModelByID(ctx context.Context, id models.ID, update models.AirplaneModelUpdate) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	q := s.sb.Update("airplane_model").
		SetMap(touch(map[string]any{
			"capacity":   update.Capacity,
			"weight":     update.Weight,
			"image_path": update.ImagePath,
		})).
		Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update airplane model")
}

// DeleteAirplaneModelByID deletes a model by id
func (s *Store) DeleteAirplaneModelByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("airplane_model").Where(squirrel.Eq{"id": key}), "delete airplane model")
}

// DeleteAirplaneModelByCode deletes a model by code
func (s *Store) DeleteAirplaneModelByCode(ctx context.Context, code string) error {
	return s.exec(ctx, s.sb.Delete("airplane_model").Where(squirrel.Eq{"code": code}), "delete airplane model by code")
}

var airplaneColumns = []string{"id", "model_id", "created_at", "updated_at"}

func scanAirplane(row scanner) (*models.Airplane, error) {
	a := &models.Airplane{}
	err := row.Scan(&a.ID, &a.ModelID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// CreateAirplane inserts an airplane and returns its id
func (s *Store) CreateAirplane(ctx context.Context, airplane *models.Airplane) (models.ID, error) {
	modelKey, err := parseID(airplane.ModelID)
	if err != nil {
		return "", err
	}
	q := s.sb.Insert("airplane").Columns("model_id").Values(modelKey)
	return s.insert(ctx, q, "create airplane")
}

func (s *Store) ReadAirplanes(ctx context.Context) ([]*models.Airplane, error) {
	q := s.sb.Select(airplaneColumns...).From("airplane").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanAirplane, "read airplanes")
}

func (s *Store) ReadAirplaneByID(ctx context.Context, id models.ID) (*models.Airplane, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(airplaneColumns...).From("airplane").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanAirplane, "read airplane by id")
}

func (s *Store) ReadAirplanesByModelID(ctx context.Context, modelID models.ID) ([]*models.Airplane, error) {
	key, err := parseID(modelID)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(airplaneColumns...).From("airplane").Where(squirrel.Eq{"model_id": key}).OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanAirplane, "read airplanes by model id")
}

func (s *Store) UpdateAirplaneByID(ctx context.Context, id, modelID models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	modelKey, err := parseID(modelID)
	if err != nil {
		return err
	}
	q := s.sb.Update("airplane").
		SetMap(touch(map[string]any{"model_id": modelKey})).
		Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update airplane")
}

func (s *Store) UpdateAirplanesByModelID(ctx context.Context, oldModelID, newModelID models.ID) error {
	oldKey, err := parseID(oldModelID)
	if err != nil {
		return err
	}
	newKey, err := parseID(newModelID)
	if err != nil {
		return err
	}
	q := s.sb.Update("airplane").
		SetMap(touch(map[string]any{"model_id": newKey})).
		Where(squirrel.Eq{"model_id": oldKey})
	return s.exec(ctx, q, "update airplanes by model id")
}

func (s *Store) DeleteAirplaneByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("airplane").Where(squirrel.Eq{"id": key}), "delete airplane")
}

func (s *Store) DeleteAirplanesByModelID(ctx context.Context, modelID models.ID) error {
	key, err := parseID(modelID)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("airplane").Where(squirrel.Eq{"model_id": key}), "delete airplanes by model id")
}
