package mongo

import (
	"context"

	"github.com/yigit/airport/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateAirplaneModel inserts a model and returns its id
func (s *Store) CreateAirplaneModel(ctx context.Context, model *models.AirplaneModel) (models.ID, error) {
	record := *model
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityAirplaneModel, record.ID, record, "create airplane model")
}

// ReadAirplaneModels retrieves all models ordered by code
func (s *Store) ReadAirplaneModels(ctx context.Context) ([]*models.AirplaneModel, error) {
	return findMany[models.AirplaneModel](ctx, s.collection(models.EntityAirplaneModel), bson.M{},
		bson.D{{Key: "code", Value: 1}}, "read airplane models")
}

func (s *Store) ReadAirplaneModelByID(ctx context.Context, id models.ID) (*models.AirplaneModel, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.AirplaneModel](ctx, s.collection(models.EntityAirplaneModel), bson.M{"_id": oid}, "read airplane model by id")
}

func (s *Store) ReadAirplaneModelByCode(ctx context.Context, code string) (*models.AirplaneModel, error) {
	return findOne[models.AirplaneModel](ctx, s.collection(models.EntityAirplaneModel), bson.M{"code": code}, "read airplane model by code")
}

func (s *Store) ReadAirplaneModelByImagePath(ctx context.Context, imagePath string) (*models.AirplaneModel, error) {
	return findOne[models.AirplaneModel](ctx, s.collection(models.EntityAirplaneModel), bson.M{"image_path": imagePath}, "read airplane model by image path")
}

// CheckAirplaneModelDuplicate returns the models colliding on code or image path
func (s *Store) CheckAirplaneModelDuplicate(ctx context.Context, code, imagePath string) ([]*models.AirplaneModel, error) {
	or := bson.A{}
	if code != "" {
		or = append(or, bson.M{"code": code})
	}
	if imagePath != "" {
		or = append(or, bson.M{"image_path": imagePath})
	}
	if len(or) == 0 {
		return []*models.AirplaneModel{}, nil
	}
	return findMany[models.AirplaneModel](ctx, s.collection(models.EntityAirplaneModel), bson.M{"$or": or}, nil, "check airplane model duplicate")
}

// UpdateAirplaneModelByID replaces capacity, weight and image path
func (s *Store) UpdateAirplaneModelByID(ctx context.Context, id models.ID, update models.AirplaneModelUpdate) error {
	return s.updateByID(ctx, models.EntityAirplaneModel, id, bson.M{
		"capacity":   update.Capacity,
		"weight":     update.Weight,
		"image_path": update.ImagePath,
	}, "update airplane model")
}

func (s *Store) DeleteAirplaneModelByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityAirplaneModel, id, "delete airplane model")
}

func (s *Store) DeleteAirplaneModelByCode(ctx context.Context, code string) error {
	return s.deleteMany(ctx, models.EntityAirplaneModel, bson.M{"code": code}, "delete airplane model by code")
}

// CreateAirplane inserts an airplane and returns its id
func (s *Store) CreateAirplane(ctx context.Context, airplane *models.Airplane) (models.ID, error) {
	if err := checkIDs(airplane.ModelID); err != nil {
		return "", err
	}
	record := *airplane
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityAirplane, record.ID, record, "create airplane")
}

func (s *Store) ReadAirplanes(ctx context.Context) ([]*models.Airplane, error) {
	return findMany[models.Airplane](ctx, s.collection(models.EntityAirplane), bson.M{}, nil, "read airplanes")
}

func (s *Store) ReadAirplaneByID(ctx context.Context, id models.ID) (*models.Airplane, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Airplane](ctx, s.collection(models.EntityAirplane), bson.M{"_id": oid}, "read airplane by id")
}

func (s *Store) ReadAirplanesByModelID(ctx context.Context, modelID models.ID) ([]*models.Airplane, error) {
	oid, err := objectID(modelID)
	if err != nil {
		return nil, err
	}
	return findMany[models.Airplane](ctx, s.collection(models.EntityAirplane), bson.M{"model_id": oid}, nil, "read airplanes by model id")
}

func (s *Store) UpdateAirplaneByID(ctx context.Context, id, modelID models.ID) error {
	oid, err := objectID(modelID)
	if err != nil {
		return err
	}
	return s.updateByID(ctx, models.EntityAirplane, id, bson.M{"model_id": oid}, "update airplane")
}

// UpdateAirplanesByModelID moves every airplane of a model to another one
func (s *Store) UpdateAirplanesByModelID(ctx context.Context, oldModelID, newModelID models.ID) error {
	oldOID, err := objectID(oldModelID)
	if err != nil {
		return err
	}
	newOID, err := objectID(newModelID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"model_id": newOID, "updated_at": s.now()}}
	if _, err := s.collection(models.EntityAirplane).UpdateMany(ctx, bson.M{"model_id": oldOID}, update); err != nil {
		return writeError(err, "update airplanes by model id")
	}
	return nil
}

func (s *Store) DeleteAirplaneByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityAirplane, id, "delete airplane")
}

func (s *Store) DeleteAirplanesByModelID(ctx context.Context, modelID models.ID) error {
	oid, err := objectID(modelID)
	if err != nil {
		return err
	}
	return s.deleteMany(ctx, models.EntityAirplane, bson.M{"model_id": oid}, "delete airplanes by model id")
}
