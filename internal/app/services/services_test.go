package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories/memory"
	"github.com/yigit/airport/internal/pkg/filestorage"
)

// fakeFiles records saved and deleted names without touching the disk
type fakeFiles struct {
	mu      sync.Mutex
	saved   map[string]bool
	deleted []string
	saveErr error
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{saved: map[string]bool{}}
}

func (f *fakeFiles) SaveFile(fh *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	name := filestorage.FileName(fh)
	f.saved[name] = true
	return name, nil
}

func (f *fakeFiles) DeleteFile(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.saved, name)
	f.deleted = append(f.deleted, name)
	return nil
}

func (f *fakeFiles) GetFullPath(name string) string {
	return "/tmp/" + name
}

func (f *fakeFiles) has(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved[name]
}

func image(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

type fixture struct {
	ctx   context.Context
	store *memory.Store
	files *fakeFiles
	svc   *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	files := newFakeFiles()
	return &fixture{
		ctx:   context.Background(),
		store: store,
		files: files,
		svc:   New(store, files),
	}
}

func (f *fixture) model(t *testing.T, code, img string) models.ID {
	t.Helper()
	id, err := f.svc.AirplaneModel.CreateAirplaneModel(f.ctx, &models.AirplaneModel{Code: code, Capacity: 180, Weight: 42.5}, image(img))
	if err != nil {
		t.Fatalf("CreateAirplaneModel(%s): %v", code, err)
	}
	return id
}

func (f *fixture) airplane(t *testing.T, modelID models.ID) models.ID {
	t.Helper()
	id, err := f.svc.Airplane.CreateAirplane(f.ctx, modelID)
	if err != nil {
		t.Fatalf("CreateAirplane: %v", err)
	}
	return id
}

func (f *fixture) location(t *testing.T, city string, airport bool) models.ID {
	t.Helper()
	id, err := f.svc.Reference.CreateLocation(f.ctx, &models.Location{
		CountryAbbreviation: "br",
		Country:             "Brazil",
		State:               "SP",
		City:                city,
		Street:              "Main",
		Number:              1,
		IsAirport:           airport,
	})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	return id
}

func (f *fixture) syndicate(t *testing.T, name string) models.ID {
	t.Helper()
	id, err := f.svc.Reference.CreateSyndicate(f.ctx, name)
	if err != nil {
		t.Fatalf("CreateSyndicate: %v", err)
	}
	return id
}

func (f *fixture) employee(t *testing.T, name string) models.ID {
	t.Helper()
	id, err := f.svc.Staff.CreateEmployee(f.ctx, &models.Employee{
		Name:            name,
		HouseLocationID: f.location(t, "Campinas", false),
		PhoneNumber:     "555-0100",
		Salary:          3500,
		SyndicateID:     f.syndicate(t, "Aeronautas"),
	})
	if err != nil {
		t.Fatalf("CreateEmployee: %v", err)
	}
	return id
}

func (f *fixture) technician(t *testing.T, name string) models.ID {
	t.Helper()
	id := f.employee(t, name)
	if err := f.svc.Staff.PromoteEmployee(f.ctx, id); err != nil {
		t.Fatalf("PromoteEmployee: %v", err)
	}
	return id
}

func (f *fixture) integrityTest(t *testing.T, name string, minimum float64) models.ID {
	t.Helper()
	id, err := f.svc.Testing.CreateIntegrityTest(f.ctx, &models.IntegrityTest{Name: name, MinimumScore: minimum})
	if err != nil {
		t.Fatalf("CreateIntegrityTest: %v", err)
	}
	return id
}

func assertIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

func sameIDs(got, want []models.ID) bool {
	if len(got) != len(want) {
		return false
	}
	seen := map[models.ID]int{}
	for _, id := range got {
		seen[id]++
	}
	for _, id := range want {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}
