// Package storetest holds the behaviour every repositories.Store
// implementation must share. Backends call Run from their own tests.
package storetest

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
)

// Factory returns an empty store for one subtest
type Factory func(t *testing.T) repositories.Store

// Run executes the conformance suite against the stores built by newStore
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s repositories.Store)
	}{
		{"AirplaneModelCreateRead", testAirplaneModelCreateRead},
		{"AirplaneModelDuplicate", testAirplaneModelDuplicate},
		{"AirplaneModelUpdateDelete", testAirplaneModelUpdateDelete},
		{"AirplanesByModel", testAirplanesByModel},
		{"AirplaneUpdateMoves", testAirplaneUpdates},
		{"EmployeesAndTechnicians", testEmployeesAndTechnicians},
		{"TechnicianPros", testTechnicianPros},
		{"TestsMade", testTestsMade},
		{"CompleteTests", testCompleteTests},
		{"Flights", testFlights},
		{"Locations", testLocations},
		{"Syndicates", testSyndicates},
		{"MissingRecords", testMissingRecords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close(context.Background()) })
			tt.fn(t, s)
		})
	}
}

func mustID(t *testing.T) func(id models.ID, err error) models.ID {
	return func(id models.ID, err error) models.ID {
		t.Helper()
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if id.IsZero() {
			t.Fatal("create returned an empty id")
		}
		return id
	}
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func sortedIDs(ids []models.ID) []models.ID {
	out := append([]models.ID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func assertSameIDs(t *testing.T, got, want []models.ID) {
	t.Helper()
	g, w := sortedIDs(got), sortedIDs(want)
	if len(g) != len(w) {
		t.Fatalf("expected ids %v, got %v", w, g)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("expected ids %v, got %v", w, g)
		}
	}
}

func newModel(code, image string) *models.AirplaneModel {
	return &models.AirplaneModel{Capacity: 180, Weight: 42000, Code: code, ImagePath: image}
}

func testAirplaneModelCreateRead(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	id := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A320", "a320.png")))

	got, err := s.ReadAirplaneModelByID(ctx, id)
	if err != nil {
		t.Fatalf("ReadAirplaneModelByID: %v", err)
	}
	if got.ID != id || got.Code != "A320" || got.ImagePath != "a320.png" || got.Capacity != 180 || got.Weight != 42000 {
		t.Errorf("unexpected model %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated")
	}

	byCode, err := s.ReadAirplaneModelByCode(ctx, "A320")
	if err != nil || byCode.ID != id {
		t.Errorf("ReadAirplaneModelByCode = %+v, %v", byCode, err)
	}
	byImage, err := s.ReadAirplaneModelByImagePath(ctx, "a320.png")
	if err != nil || byImage.ID != id {
		t.Errorf("ReadAirplaneModelByImagePath = %+v, %v", byImage, err)
	}

	mustID(t)(s.CreateAirplaneModel(ctx, newModel("737", "737.png")))
	all, err := s.ReadAirplaneModels(ctx)
	if err != nil {
		t.Fatalf("ReadAirplaneModels: %v", err)
	}
	if len(all) != 2 || all[0].Code != "737" || all[1].Code != "A320" {
		t.Errorf("expected models ordered by code, got %+v", all)
	}
}

func testAirplaneModelDuplicate(t *testing.T, s repositories.Store) {
	ctx := context.Background()

	dups, err := s.CheckAirplaneModelDuplicate(ctx, "A320", "a320.png")
	if err != nil {
		t.Fatalf("CheckAirplaneModelDuplicate: %v", err)
	}
	if dups == nil || len(dups) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", dups)
	}

	first := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A320", "a320.png")))
	second := mustID(t)(s.CreateAirplaneModel(ctx, newModel("B747", "b747.png")))

	dups, err = s.CheckAirplaneModelDuplicate(ctx, "A320", "other.png")
	if err != nil {
		t.Fatalf("CheckAirplaneModelDuplicate: %v", err)
	}
	assertSameIDs(t, models.IDs(dups, func(m *models.AirplaneModel) models.ID { return m.ID }), []models.ID{first})

	dups, err = s.CheckAirplaneModelDuplicate(ctx, "A320", "b747.png")
	if err != nil {
		t.Fatalf("CheckAirplaneModelDuplicate: %v", err)
	}
	assertSameIDs(t, models.IDs(dups, func(m *models.AirplaneModel) models.ID { return m.ID }), []models.ID{first, second})

	_, err = s.CreateAirplaneModel(ctx, newModel("A320", "new.png"))
	if !errors.Is(err, repositories.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists for duplicate code, got %v", err)
	}
}

func testAirplaneModelUpdateDelete(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	id := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A320", "a320.png")))

	err := s.UpdateAirplaneModelByID(ctx, id, models.AirplaneModelUpdate{Capacity: 200, Weight: 50000, ImagePath: "a320-neo.png"})
	if err != nil {
		t.Fatalf("UpdateAirplaneModelByID: %v", err)
	}
	got, err := s.ReadAirplaneModelByID(ctx, id)
	if err != nil {
		t.Fatalf("ReadAirplaneModelByID: %v", err)
	}
	if got.Capacity != 200 || got.Weight != 50000 || got.ImagePath != "a320-neo.png" || got.Code != "A320" {
		t.Errorf("unexpected model after update %+v", got)
	}

	if err := s.DeleteAirplaneModelByID(ctx, id); err != nil {
		t.Fatalf("DeleteAirplaneModelByID: %v", err)
	}
	_, err = s.ReadAirplaneModelByID(ctx, id)
	assertNotFound(t, err)

	mustID(t)(s.CreateAirplaneModel(ctx, newModel("E190", "e190.png")))
	if err := s.DeleteAirplaneModelByCode(ctx, "E190"); err != nil {
		t.Fatalf("DeleteAirplaneModelByCode: %v", err)
	}
	_, err = s.ReadAirplaneModelByCode(ctx, "E190")
	assertNotFound(t, err)
}

func testAirplanesByModel(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	modelID := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A320", "a320.png")))
	otherID := mustID(t)(s.CreateAirplaneModel(ctx, newModel("B747", "b747.png")))

	empty, err := s.ReadAirplanesByModelID(ctx, modelID)
	if err != nil {
		t.Fatalf("ReadAirplanesByModelID: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", empty)
	}

	var want []models.ID
	for i := 0; i < 3; i++ {
		want = append(want, mustID(t)(s.CreateAirplane(ctx, &models.Airplane{ModelID: modelID})))
	}
	mustID(t)(s.CreateAirplane(ctx, &models.Airplane{ModelID: otherID}))

	got, err := s.ReadAirplanesByModelID(ctx, modelID)
	if err != nil {
		t.Fatalf("ReadAirplanesByModelID: %v", err)
	}
	assertSameIDs(t, models.IDs(got, func(a *models.Airplane) models.ID { return a.ID }), want)

	if err := s.DeleteAirplanesByModelID(ctx, modelID); err != nil {
		t.Fatalf("DeleteAirplanesByModelID: %v", err)
	}
	got, err = s.ReadAirplanesByModelID(ctx, modelID)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no airplanes after delete, got %d (%v)", len(got), err)
	}
	all, err := s.ReadAirplanes(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected the other model's airplane to survive, got %d (%v)", len(all), err)
	}
}

func testAirplaneUpdates(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	oldModel := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A320", "a320.png")))
	newModelID := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A321", "a321.png")))

	a1 := mustID(t)(s.CreateAirplane(ctx, &models.Airplane{ModelID: oldModel}))
	a2 := mustID(t)(s.CreateAirplane(ctx, &models.Airplane{ModelID: oldModel}))

	if err := s.UpdateAirplaneByID(ctx, a1, newModelID); err != nil {
		t.Fatalf("UpdateAirplaneByID: %v", err)
	}
	got, err := s.ReadAirplaneByID(ctx, a1)
	if err != nil || got.ModelID != newModelID {
		t.Fatalf("expected airplane moved to new model, got %+v (%v)", got, err)
	}

	if err := s.UpdateAirplanesByModelID(ctx, oldModel, newModelID); err != nil {
		t.Fatalf("UpdateAirplanesByModelID: %v", err)
	}
	moved, err := s.ReadAirplanesByModelID(ctx, newModelID)
	if err != nil {
		t.Fatalf("ReadAirplanesByModelID: %v", err)
	}
	assertSameIDs(t, models.IDs(moved, func(a *models.Airplane) models.ID { return a.ID }), []models.ID{a1, a2})

	if err := s.DeleteAirplaneByID(ctx, a1); err != nil {
		t.Fatalf("DeleteAirplaneByID: %v", err)
	}
	_, err = s.ReadAirplaneByID(ctx, a1)
	assertNotFound(t, err)
}

func testEmployeesAndTechnicians(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	home := mustID(t)(s.CreateLocation(ctx, &models.Location{Country: "Brazil", City: "Recife"}))
	syndicate := mustID(t)(s.CreateSyndicate(ctx, &models.Syndicate{Name: "Aeronautas"}))

	tech := mustID(t)(s.CreateEmployee(ctx, &models.Employee{
		Name: "Ana", HouseLocationID: home, PhoneNumber: "555-0101", Salary: 5000, SyndicateID: syndicate,
	}))
	clerk := mustID(t)(s.CreateEmployee(ctx, &models.Employee{
		Name: "Bruno", HouseLocationID: home, PhoneNumber: "555-0102", Salary: 3000, SyndicateID: syndicate,
	}))

	got, err := s.ReadEmployeeByID(ctx, tech)
	if err != nil {
		t.Fatalf("ReadEmployeeByID: %v", err)
	}
	if got.Name != "Ana" || got.HouseLocationID != home || got.SyndicateID != syndicate || got.Salary != 5000 || got.PhoneNumber != "555-0101" {
		t.Errorf("unexpected employee %+v", got)
	}

	if err := s.CreateTechnician(ctx, tech); err != nil {
		t.Fatalf("CreateTechnician: %v", err)
	}
	technician, err := s.ReadTechnicianByID(ctx, tech)
	if err != nil || technician.ID != tech {
		t.Fatalf("technician should share the employee id, got %+v (%v)", technician, err)
	}
	if err := s.CreateTechnician(ctx, tech); !errors.Is(err, repositories.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists for second technician record, got %v", err)
	}

	techs, err := s.ReadTechnicianEmployees(ctx)
	if err != nil {
		t.Fatalf("ReadTechnicianEmployees: %v", err)
	}
	assertSameIDs(t, models.IDs(techs, func(e *models.Employee) models.ID { return e.ID }), []models.ID{tech})

	others, err := s.ReadNonTechnicianEmployees(ctx)
	if err != nil {
		t.Fatalf("ReadNonTechnicianEmployees: %v", err)
	}
	assertSameIDs(t, models.IDs(others, func(e *models.Employee) models.ID { return e.ID }), []models.ID{clerk})

	update := *got
	update.Salary = 6000
	update.Name = "Ana Maria"
	if err := s.UpdateEmployeeByID(ctx, tech, &update); err != nil {
		t.Fatalf("UpdateEmployeeByID: %v", err)
	}
	got, err = s.ReadEmployeeByID(ctx, tech)
	if err != nil || got.Salary != 6000 || got.Name != "Ana Maria" {
		t.Errorf("unexpected employee after update %+v (%v)", got, err)
	}

	if err := s.DeleteTechnicianByID(ctx, tech); err != nil {
		t.Fatalf("DeleteTechnicianByID: %v", err)
	}
	_, err = s.ReadTechnicianByID(ctx, tech)
	assertNotFound(t, err)

	if err := s.DeleteEmployeeByID(ctx, clerk); err != nil {
		t.Fatalf("DeleteEmployeeByID: %v", err)
	}
	_, err = s.ReadEmployeeByID(ctx, clerk)
	assertNotFound(t, err)
}

func testTechnicianPros(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	home := mustID(t)(s.CreateLocation(ctx, &models.Location{Country: "Brazil"}))
	syndicate := mustID(t)(s.CreateSyndicate(ctx, &models.Syndicate{Name: "SNA"}))
	tech := mustID(t)(s.CreateEmployee(ctx, &models.Employee{Name: "Ana", HouseLocationID: home, SyndicateID: syndicate}))
	if err := s.CreateTechnician(ctx, tech); err != nil {
		t.Fatalf("CreateTechnician: %v", err)
	}
	modelID := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A320", "a320.png")))

	proID := mustID(t)(s.CreateTechnicianPro(ctx, &models.TechnicianProAtModel{TechnicianID: tech, AirplaneModelID: modelID}))

	_, err := s.CreateTechnicianPro(ctx, &models.TechnicianProAtModel{TechnicianID: tech, AirplaneModelID: modelID})
	if !errors.Is(err, repositories.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists for repeated pair, got %v", err)
	}

	byTech, err := s.ReadTechnicianProsByTechnicianID(ctx, tech)
	if err != nil {
		t.Fatalf("ReadTechnicianProsByTechnicianID: %v", err)
	}
	assertSameIDs(t, models.IDs(byTech, func(p *models.TechnicianProAtModel) models.ID { return p.ID }), []models.ID{proID})

	byModel, err := s.ReadTechnicianProsByAirplaneModelID(ctx, modelID)
	if err != nil {
		t.Fatalf("ReadTechnicianProsByAirplaneModelID: %v", err)
	}
	assertSameIDs(t, models.IDs(byModel, func(p *models.TechnicianProAtModel) models.ID { return p.TechnicianID }), []models.ID{tech})

	pair, err := s.ReadTechnicianPro(ctx, tech, modelID)
	if err != nil || pair.ID != proID {
		t.Fatalf("ReadTechnicianPro = %+v, %v", pair, err)
	}

	if err := s.DeleteTechnicianProByID(ctx, proID); err != nil {
		t.Fatalf("DeleteTechnicianProByID: %v", err)
	}
	_, err = s.ReadTechnicianPro(ctx, tech, modelID)
	assertNotFound(t, err)
}

type testFixture struct {
	airplane      models.ID
	technician    models.ID
	integrityTest models.ID
}

func newTestFixture(t *testing.T, s repositories.Store) testFixture {
	t.Helper()
	ctx := context.Background()
	home := mustID(t)(s.CreateLocation(ctx, &models.Location{Country: "Brazil"}))
	syndicate := mustID(t)(s.CreateSyndicate(ctx, &models.Syndicate{Name: "SNA"}))
	tech := mustID(t)(s.CreateEmployee(ctx, &models.Employee{Name: "Ana", HouseLocationID: home, SyndicateID: syndicate}))
	if err := s.CreateTechnician(ctx, tech); err != nil {
		t.Fatalf("CreateTechnician: %v", err)
	}
	modelID := mustID(t)(s.CreateAirplaneModel(ctx, newModel("A320", "a320.png")))
	return testFixture{
		airplane:      mustID(t)(s.CreateAirplane(ctx, &models.Airplane{ModelID: modelID})),
		technician:    tech,
		integrityTest: mustID(t)(s.CreateIntegrityTest(ctx, &models.IntegrityTest{Name: "Fuselage", MinimumScore: 70})),
	}
}

func testTestsMade(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	fx := newTestFixture(t, s)
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	finish := start.Add(2 * time.Hour)

	id := mustID(t)(s.CreateTestMade(ctx, &models.TestMade{
		Score: 82.5, StartDate: start, FinishDate: finish,
		AirplaneID: fx.airplane, IntegrityTestID: fx.integrityTest, TechnicianID: fx.technician,
	}))

	got, err := s.ReadTestMadeByID(ctx, id)
	if err != nil {
		t.Fatalf("ReadTestMadeByID: %v", err)
	}
	if got.Score != 82.5 || !got.StartDate.Equal(start) || !got.FinishDate.Equal(finish) ||
		got.AirplaneID != fx.airplane || got.IntegrityTestID != fx.integrityTest || got.TechnicianID != fx.technician {
		t.Errorf("unexpected test made %+v", got)
	}

	byTech, err := s.ReadTestsMadeByTechnicianID(ctx, fx.technician)
	if err != nil {
		t.Fatalf("ReadTestsMadeByTechnicianID: %v", err)
	}
	assertSameIDs(t, models.IDs(byTech, func(tm *models.TestMade) models.ID { return tm.ID }), []models.ID{id})

	byPlane, err := s.ReadTestsMadeByAirplaneID(ctx, fx.airplane)
	if err != nil {
		t.Fatalf("ReadTestsMadeByAirplaneID: %v", err)
	}
	assertSameIDs(t, models.IDs(byPlane, func(tm *models.TestMade) models.ID { return tm.ID }), []models.ID{id})

	update := *got
	update.Score = 90
	if err := s.UpdateTestMadeByID(ctx, id, &update); err != nil {
		t.Fatalf("UpdateTestMadeByID: %v", err)
	}
	got, err = s.ReadTestMadeByID(ctx, id)
	if err != nil || got.Score != 90 {
		t.Errorf("unexpected test made after update %+v (%v)", got, err)
	}

	all, err := s.ReadTestsMade(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("ReadTestsMade = %d, %v", len(all), err)
	}

	if err := s.DeleteTestMadeByID(ctx, id); err != nil {
		t.Fatalf("DeleteTestMadeByID: %v", err)
	}
	_, err = s.ReadTestMadeByID(ctx, id)
	assertNotFound(t, err)
}

func testCompleteTests(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	fx := newTestFixture(t, s)
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	id := mustID(t)(s.CreateTestMade(ctx, &models.TestMade{
		Score: 65, StartDate: start, FinishDate: start.Add(time.Hour),
		AirplaneID: fx.airplane, IntegrityTestID: fx.integrityTest, TechnicianID: fx.technician,
	}))

	complete, err := s.ReadCompleteTestMade(ctx, id)
	if err != nil {
		t.Fatalf("ReadCompleteTestMade: %v", err)
	}
	if complete.ID != id || complete.TestName != "Fuselage" || complete.MinimumScore != 70 || complete.ObtainedScore != 65 {
		t.Errorf("unexpected complete test %+v", complete)
	}
	if complete.Passed() {
		t.Error("a score below the minimum should not pass")
	}

	all, err := s.ReadCompleteTestsMade(ctx)
	if err != nil {
		t.Fatalf("ReadCompleteTestsMade: %v", err)
	}
	if len(all) != 1 || all[0].ID != id {
		t.Errorf("unexpected complete tests %+v", all)
	}

	it, err := s.ReadIntegrityTestByID(ctx, fx.integrityTest)
	if err != nil {
		t.Fatalf("ReadIntegrityTestByID: %v", err)
	}
	it.MinimumScore = 60
	if err := s.UpdateIntegrityTestByID(ctx, fx.integrityTest, it); err != nil {
		t.Fatalf("UpdateIntegrityTestByID: %v", err)
	}
	tests, err := s.ReadIntegrityTests(ctx)
	if err != nil || len(tests) != 1 || tests[0].MinimumScore != 60 {
		t.Errorf("ReadIntegrityTests = %+v, %v", tests, err)
	}
}

func testFlights(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	fx := newTestFixture(t, s)
	from := mustID(t)(s.CreateLocation(ctx, &models.Location{City: "Recife", IsAirport: true}))
	to := mustID(t)(s.CreateLocation(ctx, &models.Location{City: "Lisboa", IsAirport: true}))

	id := mustID(t)(s.CreateFlight(ctx, &models.Flight{
		AirplaneID: fx.airplane, PilotID: fx.technician, StartLocationID: from, DestinationLocationID: to, OccupiedSeats: 120,
	}))

	got, err := s.ReadFlightByID(ctx, id)
	if err != nil {
		t.Fatalf("ReadFlightByID: %v", err)
	}
	if got.AirplaneID != fx.airplane || got.PilotID != fx.technician || got.StartLocationID != from ||
		got.DestinationLocationID != to || got.OccupiedSeats != 120 {
		t.Errorf("unexpected flight %+v", got)
	}

	byPlane, err := s.ReadFlightsByAirplaneID(ctx, fx.airplane)
	if err != nil {
		t.Fatalf("ReadFlightsByAirplaneID: %v", err)
	}
	assertSameIDs(t, models.IDs(byPlane, func(f *models.Flight) models.ID { return f.ID }), []models.ID{id})

	update := *got
	update.OccupiedSeats = 150
	update.StartLocationID, update.DestinationLocationID = to, from
	if err := s.UpdateFlightByID(ctx, id, &update); err != nil {
		t.Fatalf("UpdateFlightByID: %v", err)
	}
	got, err = s.ReadFlightByID(ctx, id)
	if err != nil || got.OccupiedSeats != 150 || got.StartLocationID != to {
		t.Errorf("unexpected flight after update %+v (%v)", got, err)
	}

	flights, err := s.ReadFlights(ctx)
	if err != nil || len(flights) != 1 {
		t.Fatalf("ReadFlights = %d, %v", len(flights), err)
	}

	if err := s.DeleteFlightByID(ctx, id); err != nil {
		t.Fatalf("DeleteFlightByID: %v", err)
	}
	_, err = s.ReadFlightByID(ctx, id)
	assertNotFound(t, err)
}

func testLocations(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	airport := mustID(t)(s.CreateLocation(ctx, &models.Location{
		CountryAbbreviation: "BR", Country: "Brazil", State: "PE", City: "Recife", Street: "Praça Ministro Salgado Filho", Number: 1, IsAirport: true,
	}))
	house := mustID(t)(s.CreateLocation(ctx, &models.Location{
		CountryAbbreviation: "BR", Country: "Brazil", State: "PE", City: "Olinda", Street: "Rua do Amparo", Number: 42,
	}))

	got, err := s.ReadLocationByID(ctx, airport)
	if err != nil {
		t.Fatalf("ReadLocationByID: %v", err)
	}
	if got.City != "Recife" || !got.IsAirport || got.Number != 1 || got.CountryAbbreviation != "BR" {
		t.Errorf("unexpected location %+v", got)
	}

	notAirports, err := s.ReadNonAirportLocations(ctx)
	if err != nil {
		t.Fatalf("ReadNonAirportLocations: %v", err)
	}
	assertSameIDs(t, models.IDs(notAirports, func(l *models.Location) models.ID { return l.ID }), []models.ID{house})

	update := *got
	update.IsAirport = false
	if err := s.UpdateLocationByID(ctx, airport, &update); err != nil {
		t.Fatalf("UpdateLocationByID: %v", err)
	}
	notAirports, err = s.ReadNonAirportLocations(ctx)
	if err != nil || len(notAirports) != 2 {
		t.Errorf("expected two non-airport locations, got %d (%v)", len(notAirports), err)
	}

	if err := s.DeleteLocationByID(ctx, house); err != nil {
		t.Fatalf("DeleteLocationByID: %v", err)
	}
	all, err := s.ReadLocations(ctx)
	if err != nil || len(all) != 1 {
		t.Errorf("ReadLocations = %d, %v", len(all), err)
	}
}

func testSyndicates(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	id := mustID(t)(s.CreateSyndicate(ctx, &models.Syndicate{Name: "SNA"}))

	if err := s.UpdateSyndicateByID(ctx, id, &models.Syndicate{Name: "SNEA"}); err != nil {
		t.Fatalf("UpdateSyndicateByID: %v", err)
	}
	got, err := s.ReadSyndicateByID(ctx, id)
	if err != nil || got.Name != "SNEA" {
		t.Errorf("ReadSyndicateByID = %+v, %v", got, err)
	}

	all, err := s.ReadSyndicates(ctx)
	if err != nil || len(all) != 1 {
		t.Errorf("ReadSyndicates = %d, %v", len(all), err)
	}

	if err := s.DeleteSyndicateByID(ctx, id); err != nil {
		t.Fatalf("DeleteSyndicateByID: %v", err)
	}
	_, err = s.ReadSyndicateByID(ctx, id)
	assertNotFound(t, err)
}

// testMissingRecords checks absence handling with identifiers the store
// itself handed out and then removed, so the check is engine agnostic.
func testMissingRecords(t *testing.T, s repositories.Store) {
	ctx := context.Background()
	id := mustID(t)(s.CreateSyndicate(ctx, &models.Syndicate{Name: "gone"}))
	if err := s.DeleteSyndicateByID(ctx, id); err != nil {
		t.Fatalf("DeleteSyndicateByID: %v", err)
	}

	_, err := s.ReadSyndicateByID(ctx, id)
	assertNotFound(t, err)

	if err := s.UpdateSyndicateByID(ctx, id, &models.Syndicate{Name: "ghost"}); err != nil {
		t.Errorf("updating a missing record should not fail, got %v", err)
	}
	if err := s.DeleteSyndicateByID(ctx, id); err != nil {
		t.Errorf("deleting a missing record should not fail, got %v", err)
	}

	collections := map[string]func() (int, error){
		"ReadAirplanes":   func() (int, error) { v, err := s.ReadAirplanes(ctx); return len(v), err },
		"ReadEmployees":   func() (int, error) { v, err := s.ReadEmployees(ctx); return len(v), err },
		"ReadTechnicians": func() (int, error) { v, err := s.ReadTechnicians(ctx); return len(v), err },
		"ReadCompleteTestsMade": func() (int, error) {
			v, err := s.ReadCompleteTestsMade(ctx)
			return len(v), err
		},
		"ReadFlights": func() (int, error) { v, err := s.ReadFlights(ctx); return len(v), err },
	}
	for name, read := range collections {
		n, err := read()
		if err != nil || n != 0 {
			t.Errorf("%s on empty store = %d, %v", name, n, err)
		}
	}

	_, err = s.ReadAirplaneModelByCode(ctx, "NOPE")
	assertNotFound(t, err)
}
