package mongo

import (
	"context"

	"github.com/yigit/airport/internal/app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateEmployee inserts an employee and returns its id
func (s *Store) CreateEmployee(ctx context.Context, employee *models.Employee) (models.ID, error) {
	if err := checkIDs(employee.HouseLocationID, employee.SyndicateID); err != nil {
		return "", err
	}
	record := *employee
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityEmployee, record.ID, record, "create employee")
}

func (s *Store) ReadEmployees(ctx context.Context) ([]*models.Employee, error) {
	return findMany[models.Employee](ctx, s.collection(models.EntityEmployee), bson.M{}, nil, "read employees")
}

func (s *Store) ReadEmployeeByID(ctx context.Context, id models.ID) (*models.Employee, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Employee](ctx, s.collection(models.EntityEmployee), bson.M{"_id": oid}, "read employee by id")
}

func (s *Store) UpdateEmployeeByID(ctx context.Context, id models.ID, employee *models.Employee) error {
	if err := checkIDs(employee.HouseLocationID, employee.SyndicateID); err != nil {
		return err
	}
	return s.updateByID(ctx, models.EntityEmployee, id, bson.M{
		"name":              employee.Name,
		"house_location_id": employee.HouseLocationID,
		"phone_number":      employee.PhoneNumber,
		"salary":            employee.Salary,
		"syndicate_id":      employee.SyndicateID,
	}, "update employee")
}

func (s *Store) DeleteEmployeeByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityEmployee, id, "delete employee")
}

// employeesWithTechnicians joins each employee with its technician documents
func employeesWithTechnicians(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: models.EntityTechnician},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "technicians"},
		}}},
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.D{{Key: "technicians", Value: 0}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// ReadTechnicianEmployees returns employees that have a technician document
func (s *Store) ReadTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	pipeline := employeesWithTechnicians(bson.D{{Key: "technicians", Value: bson.D{{Key: "$ne", Value: bson.A{}}}}})
	return aggregate[models.Employee](ctx, s.collection(models.EntityEmployee), pipeline, "read technician employees")
}

// ReadNonTechnicianEmployees returns employees without a technician document
func (s *Store) ReadNonTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	pipeline := employeesWithTechnicians(bson.D{{Key: "technicians", Value: bson.A{}}})
	return aggregate[models.Employee](ctx, s.collection(models.EntityEmployee), pipeline, "read non technician employees")
}

// CreateTechnician marks an existing employee as a technician
func (s *Store) CreateTechnician(ctx context.Context, employeeID models.ID) error {
	if err := checkIDs(employeeID); err != nil {
		return err
	}
	record := models.Technician{ID: employeeID}
	record.Touch(s.now())
	_, err := s.insert(ctx, models.EntityTechnician, record.ID, record, "create technician")
	return err
}

func (s *Store) ReadTechnicians(ctx context.Context) ([]*models.Technician, error) {
	return findMany[models.Technician](ctx, s.collection(models.EntityTechnician), bson.M{}, nil, "read technicians")
}

func (s *Store) ReadTechnicianByID(ctx context.Context, id models.ID) (*models.Technician, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Technician](ctx, s.collection(models.EntityTechnician), bson.M{"_id": oid}, "read technician by id")
}

func (s *Store) DeleteTechnicianByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityTechnician, id, "delete technician")
}

// CreateTechnicianPro certifies a technician on a model
func (s *Store) CreateTechnicianPro(ctx context.Context, pro *models.TechnicianProAtModel) (models.ID, error) {
	if err := checkIDs(pro.TechnicianID, pro.AirplaneModelID); err != nil {
		return "", err
	}
	record := *pro
	record.ID = newID()
	record.Touch(s.now())
	return s.insert(ctx, models.EntityTechnicianProAtModel, record.ID, record, "create technician pro")
}

func (s *Store) ReadTechnicianProsByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TechnicianProAtModel, error) {
	oid, err := objectID(technicianID)
	if err != nil {
		return nil, err
	}
	return findMany[models.TechnicianProAtModel](ctx, s.collection(models.EntityTechnicianProAtModel),
		bson.M{"technician_id": oid}, nil, "read technician pros by technician id")
}

func (s *Store) ReadTechnicianProsByAirplaneModelID(ctx context.Context, modelID models.ID) ([]*models.TechnicianProAtModel, error) {
	oid, err := objectID(modelID)
	if err != nil {
		return nil, err
	}
	return findMany[models.TechnicianProAtModel](ctx, s.collection(models.EntityTechnicianProAtModel),
		bson.M{"airplane_model_id": oid}, nil, "read technician pros by model id")
}

func (s *Store) ReadTechnicianPro(ctx context.Context, technicianID, modelID models.ID) (*models.TechnicianProAtModel, error) {
	techOID, err := objectID(technicianID)
	if err != nil {
		return nil, err
	}
	modelOID, err := objectID(modelID)
	if err != nil {
		return nil, err
	}
	return findOne[models.TechnicianProAtModel](ctx, s.collection(models.EntityTechnicianProAtModel),
		bson.M{"technician_id": techOID, "airplane_model_id": modelOID}, "read technician pro")
}

func (s *Store) DeleteTechnicianProByID(ctx context.Context, id models.ID) error {
	return s.deleteByID(ctx, models.EntityTechnicianProAtModel, id, "delete technician pro")
}
