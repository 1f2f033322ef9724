package services

import (
	"testing"
	"time"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/pkg/apperrors"
)

func TestCreateEmployeeChecksReferences(t *testing.T) {
	f := newFixture(t)
	location := f.location(t, "Campinas", false)
	syndicate := f.syndicate(t, "Aeronautas")

	_, err := f.svc.Staff.CreateEmployee(f.ctx, &models.Employee{Name: "Ana", HouseLocationID: "missing", SyndicateID: syndicate})
	assertIs(t, err, ErrLocationNotFound)

	_, err = f.svc.Staff.CreateEmployee(f.ctx, &models.Employee{Name: "Ana", HouseLocationID: location, SyndicateID: "missing"})
	assertIs(t, err, ErrSyndicateNotFound)

	_, err = f.svc.Staff.CreateEmployee(f.ctx, &models.Employee{Name: " ", HouseLocationID: location, SyndicateID: syndicate})
	assertIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.svc.Staff.CreateEmployee(f.ctx, &models.Employee{Name: "Ana", SyndicateID: syndicate})
	assertIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.svc.Staff.CreateEmployee(f.ctx, &models.Employee{Name: "Ana", HouseLocationID: location})
	assertIs(t, err, apperrors.ErrValidationFailed)

	id, err := f.svc.Staff.CreateEmployee(f.ctx, &models.Employee{Name: "Ana", HouseLocationID: location, SyndicateID: syndicate, Salary: 1000})
	if err != nil {
		t.Fatalf("CreateEmployee: %v", err)
	}
	employee, err := f.svc.Staff.GetEmployeeByID(f.ctx, id)
	if err != nil || employee.Name != "Ana" {
		t.Fatalf("unexpected employee %+v, %v", employee, err)
	}
}

func TestUpdateAndDeleteEmployee(t *testing.T) {
	f := newFixture(t)
	id := f.technician(t, "Ana")
	employee, _ := f.svc.Staff.GetEmployeeByID(f.ctx, id)

	employee.Salary = 9000
	if err := f.svc.Staff.UpdateEmployee(f.ctx, id, employee); err != nil {
		t.Fatalf("UpdateEmployee: %v", err)
	}
	updated, _ := f.svc.Staff.GetEmployeeByID(f.ctx, id)
	if updated.Salary != 9000 {
		t.Errorf("expected salary 9000, got %v", updated.Salary)
	}

	assertIs(t, f.svc.Staff.UpdateEmployee(f.ctx, "missing", employee), ErrEmployeeNotFound)

	if err := f.svc.Staff.DeleteEmployee(f.ctx, id); err != nil {
		t.Fatalf("DeleteEmployee: %v", err)
	}
	_, err := f.svc.Staff.GetEmployeeByID(f.ctx, id)
	assertIs(t, err, ErrEmployeeNotFound)

	technicians, _ := f.svc.Staff.GetTechnicians(f.ctx)
	if len(technicians) != 0 {
		t.Errorf("expected the technician record to go with the employee, got %d", len(technicians))
	}
	assertIs(t, f.svc.Staff.DeleteEmployee(f.ctx, id), ErrEmployeeNotFound)
}

func TestPromoteEmployee(t *testing.T) {
	f := newFixture(t)
	employee := f.employee(t, "Ana")
	f.employee(t, "Bruno")

	assertIs(t, f.svc.Staff.PromoteEmployee(f.ctx, "missing"), ErrEmployeeNotFound)

	if err := f.svc.Staff.PromoteEmployee(f.ctx, employee); err != nil {
		t.Fatalf("PromoteEmployee: %v", err)
	}
	assertIs(t, f.svc.Staff.PromoteEmployee(f.ctx, employee), ErrAlreadyTechnician)
	assertIs(t, f.svc.Staff.PromoteEmployee(f.ctx, employee), apperrors.ErrConflict)

	technicians, _ := f.svc.Staff.GetTechnicianEmployees(f.ctx)
	others, _ := f.svc.Staff.GetNonTechnicianEmployees(f.ctx)
	if len(technicians) != 1 || technicians[0].ID != employee {
		t.Errorf("expected %s to be the only technician, got %d", employee, len(technicians))
	}
	if len(others) != 1 || others[0].Name != "Bruno" {
		t.Errorf("expected Bruno to be the only non technician, got %d", len(others))
	}
}

func TestHireTechnician(t *testing.T) {
	f := newFixture(t)
	location := f.location(t, "Campinas", false)
	syndicate := f.syndicate(t, "Aeronautas")

	id, err := f.svc.Staff.HireTechnician(f.ctx, &models.Employee{Name: "Carla", HouseLocationID: location, SyndicateID: syndicate})
	if err != nil {
		t.Fatalf("HireTechnician: %v", err)
	}
	if _, err := f.store.ReadTechnicianByID(f.ctx, id); err != nil {
		t.Errorf("expected a technician record sharing the employee id: %v", err)
	}

	_, err = f.svc.Staff.HireTechnician(f.ctx, &models.Employee{Name: "Carla", HouseLocationID: "missing"})
	assertIs(t, err, ErrLocationNotFound)
}

func TestTechnicianPros(t *testing.T) {
	f := newFixture(t)
	model := f.model(t, "A320", "a320.png")
	other := f.model(t, "B737", "b737.png")
	tech := f.technician(t, "Ana")
	notTech := f.employee(t, "Bruno")

	_, err := f.svc.Staff.CreateTechnicianPro(f.ctx, notTech, model)
	assertIs(t, err, ErrTechnicianNotFound)
	_, err = f.svc.Staff.CreateTechnicianPro(f.ctx, tech, "missing")
	assertIs(t, err, ErrAirplaneModelNotFound)

	proID, err := f.svc.Staff.CreateTechnicianPro(f.ctx, tech, model)
	if err != nil {
		t.Fatalf("CreateTechnicianPro: %v", err)
	}
	if _, err := f.svc.Staff.CreateTechnicianPro(f.ctx, tech, other); err != nil {
		t.Fatalf("CreateTechnicianPro: %v", err)
	}
	_, err = f.svc.Staff.CreateTechnicianPro(f.ctx, tech, model)
	assertIs(t, err, ErrTechnicianProExists)

	byTech, _ := f.svc.Staff.GetTechnicianPros(f.ctx, tech, "")
	byModel, _ := f.svc.Staff.GetTechnicianPros(f.ctx, "", model)
	both, _ := f.svc.Staff.GetTechnicianPros(f.ctx, tech, other)
	none, err := f.svc.Staff.GetTechnicianPros(f.ctx, notTech, model)
	if err != nil {
		t.Fatalf("GetTechnicianPros: %v", err)
	}
	if len(byTech) != 2 || len(byModel) != 1 || len(both) != 1 || len(none) != 0 || none == nil {
		t.Errorf("unexpected filters: tech=%d model=%d both=%d none=%v", len(byTech), len(byModel), len(both), none)
	}

	_, err = f.svc.Staff.GetTechnicianPros(f.ctx, "", "")
	assertIs(t, err, apperrors.ErrBadRequest)
	assertIs(t, err, ErrTechnicianProFilter)

	if err := f.svc.Staff.DeleteTechnicianPro(f.ctx, proID); err != nil {
		t.Fatalf("DeleteTechnicianPro: %v", err)
	}
	byModel, _ = f.svc.Staff.GetTechnicianPros(f.ctx, "", model)
	if len(byModel) != 0 {
		t.Errorf("expected the certification to be removed, got %d", len(byModel))
	}
}

func TestCompleteTechnician(t *testing.T) {
	f := newFixture(t)
	model := f.model(t, "A320", "a320.png")
	airplane := f.airplane(t, model)
	tech := f.technician(t, "Ana")
	idle := f.technician(t, "Bruno")
	integrity := f.integrityTest(t, "Hull", 70)

	if _, err := f.svc.Staff.CreateTechnicianPro(f.ctx, tech, model); err != nil {
		t.Fatalf("CreateTechnicianPro: %v", err)
	}
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	testID, err := f.svc.Testing.CreateTestMade(f.ctx, &models.TestMade{
		Score:           80,
		StartDate:       start,
		FinishDate:      start.Add(2 * time.Hour),
		AirplaneID:      airplane,
		IntegrityTestID: integrity,
		TechnicianID:    tech,
	})
	if err != nil {
		t.Fatalf("CreateTestMade: %v", err)
	}

	info, err := f.svc.Staff.GetCompleteTechnician(f.ctx, tech)
	if err != nil {
		t.Fatalf("GetCompleteTechnician: %v", err)
	}
	employee, _ := f.svc.Staff.GetEmployeeByID(f.ctx, tech)
	if info.TechnicianID != tech || info.SyndicateID != employee.SyndicateID {
		t.Errorf("unexpected technician info %+v", info)
	}
	if !sameIDs(info.TestsMadeIDs, []models.ID{testID}) || !sameIDs(info.ModelsProIDs, []models.ID{model}) {
		t.Errorf("unexpected tests %v or models %v", info.TestsMadeIDs, info.ModelsProIDs)
	}

	all, err := f.svc.Staff.GetCompleteTechnicians(f.ctx)
	if err != nil {
		t.Fatalf("GetCompleteTechnicians: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 technicians, got %d", len(all))
	}
	for _, item := range all {
		if item.TechnicianID == idle && (len(item.TestsMadeIDs) != 0 || item.TestsMadeIDs == nil) {
			t.Errorf("expected an empty test list for the idle technician, got %v", item.TestsMadeIDs)
		}
	}

	_, err = f.svc.Staff.GetCompleteTechnician(f.ctx, "missing")
	assertIs(t, err, ErrTechnicianNotFound)
}
