package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/airport/internal/app/models"
)

var employeeColumns = []string{"id", "name", "house_location_id", "phone_number", "salary", "syndicate_id", "created_at", "updated_at"}

// prefixed qualifies columns with a table alias for joins
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func scanEmployee(row scanner) (*models.Employee, error) {
	e := &models.Employee{}
	err := row.Scan(&e.ID, &e.Name, &e.HouseLocationID, &e.PhoneNumber, &e.Salary, &e.SyndicateID, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// employeeValues converts the employee references to table keys
func employeeValues(employee *models.Employee) (map[string]any, error) {
	locationKey, err := parseID(employee.HouseLocationID)
	if err != nil {
		return nil, err
	}
	syndicateKey, err := parseID(employee.SyndicateID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"name":              employee.Name,
		"house_location_id": locationKey,
		"phone_number":      employee.PhoneNumber,
		"salary":            employee.Salary,
		"syndicate_id":      syndicateKey,
	}, nil
}

// CreateEmployee inserts an employee and returns its id
func (s *Store) CreateEmployee(ctx context.Context, employee *models.Employee) (models.ID, error) {
	values, err := employeeValues(employee)
	if err != nil {
		return "", err
	}
	return s.insert(ctx, s.sb.Insert("employee").SetMap(values), "create employee")
}

func (s *Store) ReadEmployees(ctx context.Context) ([]*models.Employee, error) {
	q := s.sb.Select(employeeColumns...).From("employee").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanEmployee, "read employees")
}

func (s *Store) ReadEmployeeByID(ctx context.Context, id models.ID) (*models.Employee, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(employeeColumns...).From("employee").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanEmployee, "read employee by id")
}

func (s *Store) UpdateEmployeeByID(ctx context.Context, id models.ID, employee *models.Employee) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	values, err := employeeValues(employee)
	if err != nil {
		return err
	}
	q := s.sb.Update("employee").SetMap(touch(values)).Where(squirrel.Eq{"id": key})
	return s.exec(ctx, q, "update employee")
}

func (s *Store) DeleteEmployeeByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("employee").Where(squirrel.Eq{"id": key}), "delete employee")
}

// ReadTechnicianEmployees joins employees with their technician rows
func (s *Store) ReadTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	q := s.sb.Select(prefixed("e", employeeColumns)...).
		From("employee e").
		Join("technician t ON t.id = e.id").
		OrderBy("e.id ASC")
	return selectMany(ctx, s.db, q, scanEmployee, "read technician employees")
}

// ReadNonTechnicianEmployees returns employees without a technician row
func (s *Store) ReadNonTechnicianEmployees(ctx context.Context) ([]*models.Employee, error) {
	q := s.sb.Select(prefixed("e", employeeColumns)...).
		From("employee e").
		LeftJoin("technician t ON t.id = e.id").
		Where("t.id IS NULL").
		OrderBy("e.id ASC")
	return selectMany(ctx, s.db, q, scanEmployee, "read non technician employees")
}

var technicianColumns = []string{"id", "created_at", "updated_at"}

func scanTechnician(row scanner) (*models.Technician, error) {
	t := &models.Technician{}
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTechnician marks an existing employee as a technician
func (s *Store) CreateTechnician(ctx context.Context, employeeID models.ID) error {
	key, err := parseID(employeeID)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Insert("technician").Columns("id").Values(key), "create technician")
}

func (s *Store) ReadTechnicians(ctx context.Context) ([]*models.Technician, error) {
	q := s.sb.Select(technicianColumns...).From("technician").OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanTechnician, "read technicians")
}

func (s *Store) ReadTechnicianByID(ctx context.Context, id models.ID) (*models.Technician, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(technicianColumns...).From("technician").Where(squirrel.Eq{"id": key})
	return selectOne(ctx, s.db, q, scanTechnician, "read technician by id")
}

func (s *Store) DeleteTechnicianByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("technician").Where(squirrel.Eq{"id": key}), "delete technician")
}

var technicianProColumns = []string{"id", "technician_id", "airplane_model_id", "created_at", "updated_at"}

func scanTechnicianPro(row scanner) (*models.TechnicianProAtModel, error) {
	p := &models.TechnicianProAtModel{}
	err := row.Scan(&p.ID, &p.TechnicianID, &p.AirplaneModelID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreateTechnicianPro certifies a technician on a model
func (s *Store) CreateTechnicianPro(ctx context.Context, pro *models.TechnicianProAtModel) (models.ID, error) {
	techKey, err := parseID(pro.TechnicianID)
	if err != nil {
		return "", err
	}
	modelKey, err := parseID(pro.AirplaneModelID)
	if err != nil {
		return "", err
	}
	q := s.sb.Insert("technician_pro_at_model").
		Columns("technician_id", "airplane_model_id").
		Values(techKey, modelKey)
	return s.insert(ctx, q, "create technician pro")
}

func (s *Store) ReadTechnicianProsByTechnicianID(ctx context.Context, technicianID models.ID) ([]*models.TechnicianProAtModel, error) {
	key, err := parseID(technicianID)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(technicianProColumns...).From("technician_pro_at_model").
		Where(squirrel.Eq{"technician_id": key}).
		OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanTechnicianPro, "read technician pros by technician id")
}

func (s *Store) ReadTechnicianProsByAirplaneModelID(ctx context.Context, modelID models.ID) ([]*models.TechnicianProAtModel, error) {
	key, err := parseID(modelID)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(technicianProColumns...).From("technician_pro_at_model").
		Where(squirrel.Eq{"airplane_model_id": key}).
		OrderBy("id ASC")
	return selectMany(ctx, s.db, q, scanTechnicianPro, "read technician pros by model id")
}

func (s *Store) ReadTechnicianPro(ctx context.Context, technicianID, modelID models.ID) (*models.TechnicianProAtModel, error) {
	techKey, err := parseID(technicianID)
	if err != nil {
		return nil, err
	}
	modelKey, err := parseID(modelID)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(technicianProColumns...).From("technician_pro_at_model").
		Where(squirrel.Eq{"technician_id": techKey, "airplane_model_id": modelKey})
	return selectOne(ctx, s.db, q, scanTechnicianPro, "read technician pro")
}

func (s *Store) DeleteTechnicianProByID(ctx context.Context, id models.ID) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, s.sb.Delete("technician_pro_at_model").Where(squirrel.Eq{"id": key}), "delete technician pro")
}
