package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/yigit/airport/internal/app/migrations"
	"github.com/yigit/airport/internal/app/models"
	"github.com/yigit/airport/internal/app/repositories"
	"github.com/yigit/airport/internal/app/repositories/storetest"
	"github.com/yigit/airport/internal/app/services"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock, NewStore(mock)
}

var modelRowColumns = []string{"id", "capacity", "weight", "code", "image_path", "created_at", "updated_at"}

func TestCreateAirplaneModel(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectQuery(`INSERT INTO airplane_model \(capacity,weight,code,image_path\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs(180, 42000.0, "A320", "a320.png").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := store.CreateAirplaneModel(context.Background(), &models.AirplaneModel{
		Capacity: 180, Weight: 42000, Code: "A320", ImagePath: "a320.png",
	})
	if err != nil {
		t.Fatalf("CreateAirplaneModel: %v", err)
	}
	if id != "7" {
		t.Errorf("expected id 7, got %q", id)
	}
}

func TestCreateAirplaneModelUniqueViolation(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectQuery(`INSERT INTO airplane_model`).
		WithArgs(180, 42000.0, "A320", "a320.png").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "airplane_model_code_key"})

	_, err := store.CreateAirplaneModel(context.Background(), &models.AirplaneModel{
		Capacity: 180, Weight: 42000, Code: "A320", ImagePath: "a320.png",
	})
	if !errors.Is(err, repositories.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestReadAirplaneModelByID(t *testing.T) {
	mock, store := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, capacity, weight, code, image_path, created_at, updated_at FROM airplane_model WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(modelRowColumns).AddRow(int64(3), 180, 42000.0, "A320", "a320.png", now, now))

	got, err := store.ReadAirplaneModelByID(context.Background(), "3")
	if err != nil {
		t.Fatalf("ReadAirplaneModelByID: %v", err)
	}
	if got.ID != "3" || got.Code != "A320" || got.Capacity != 180 || !got.CreatedAt.Equal(now) {
		t.Errorf("unexpected model %+v", got)
	}
}

func TestReadAirplaneModelByIDNotFound(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectQuery(`FROM airplane_model WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(modelRowColumns))

	_, err := store.ReadAirplaneModelByID(context.Background(), "99")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestInvalidIDNeverReachesTheDatabase(t *testing.T) {
	_, store := newMock(t)

	_, err := store.ReadAirplaneByID(context.Background(), "65f1c0ffee0000000000abcd")
	if !errors.Is(err, repositories.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if err := store.DeleteFlightByID(context.Background(), "not-a-number"); !errors.Is(err, repositories.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestCheckAirplaneModelDuplicate(t *testing.T) {
	mock, store := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM airplane_model WHERE \(code = \$1 OR image_path = \$2\) ORDER BY id ASC`).
		WithArgs("A320", "b747.png").
		WillReturnRows(pgxmock.NewRows(modelRowColumns).
			AddRow(int64(1), 180, 42000.0, "A320", "a320.png", now, now).
			AddRow(int64(2), 400, 180000.0, "B747", "b747.png", now, now))

	dups, err := store.CheckAirplaneModelDuplicate(context.Background(), "A320", "b747.png")
	if err != nil {
		t.Fatalf("CheckAirplaneModelDuplicate: %v", err)
	}
	if len(dups) != 2 || dups[0].Code != "A320" || dups[1].Code != "B747" {
		t.Errorf("unexpected duplicates %+v", dups)
	}
}

func TestCheckAirplaneModelDuplicateWithoutKeys(t *testing.T) {
	_, store := newMock(t)

	dups, err := store.CheckAirplaneModelDuplicate(context.Background(), "", "")
	if err != nil || dups == nil || len(dups) != 0 {
		t.Errorf("expected an empty result without querying, got %#v, %v", dups, err)
	}
}

func TestReadAirplanesByModelIDEmpty(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectQuery(`SELECT id, model_id, created_at, updated_at FROM airplane WHERE model_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "model_id", "created_at", "updated_at"}))

	airplanes, err := store.ReadAirplanesByModelID(context.Background(), "4")
	if err != nil {
		t.Fatalf("ReadAirplanesByModelID: %v", err)
	}
	if airplanes == nil || len(airplanes) != 0 {
		t.Errorf("expected an empty non-nil slice, got %#v", airplanes)
	}
}

func TestUpdateAirplaneModelTouchesUpdatedAt(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectExec(`UPDATE airplane_model SET capacity = \$1, image_path = \$2, updated_at = NOW\(\), weight = \$3 WHERE id = \$4`).
		WithArgs(200, "new.png", 50000.0, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := store.UpdateAirplaneModelByID(context.Background(), "5", models.AirplaneModelUpdate{
		Capacity: 200, Weight: 50000, ImagePath: "new.png",
	})
	if err != nil {
		t.Fatalf("UpdateAirplaneModelByID: %v", err)
	}
}

func TestDeleteAirplanesByModelID(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectExec(`DELETE FROM airplane WHERE model_id = \$1`).
		WithArgs(int64(8)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	if err := store.DeleteAirplanesByModelID(context.Background(), "8"); err != nil {
		t.Fatalf("DeleteAirplanesByModelID: %v", err)
	}
}

func TestDeleteReferencedModel(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectExec(`DELETE FROM airplane_model WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := store.DeleteAirplaneModelByID(context.Background(), "8")
	if !errors.Is(err, repositories.ErrReferenceViolation) {
		t.Errorf("expected ErrReferenceViolation, got %v", err)
	}
}

func TestDeleteCertifiedModelTouchesNothing(t *testing.T) {
	mock, store := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM airplane_model WHERE id = \$1`).
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows(modelRowColumns).AddRow(int64(8), 180, 42000.0, "A320", "a320.png", now, now))
	mock.ExpectQuery(`FROM technician_pro_at_model WHERE airplane_model_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "technician_id", "airplane_model_id", "created_at", "updated_at"}).
			AddRow(int64(1), int64(4), int64(8), now, now))

	err := services.New(store, nil).AirplaneModel.DeleteAirplaneModel(context.Background(), "8")
	if !errors.Is(err, services.ErrAirplaneModelInUse) {
		t.Errorf("expected ErrAirplaneModelInUse, got %v", err)
	}
}

func TestDriverErrorsAreWrapped(t *testing.T) {
	mock, store := newMock(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`FROM syndicate`).WillReturnError(boom)

	_, err := store.ReadSyndicates(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected the driver error to be wrapped, got %v", err)
	}
}

func TestReadNonTechnicianEmployeesUsesAntiJoin(t *testing.T) {
	mock, store := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM employee e LEFT JOIN technician t ON t.id = e.id WHERE t.id IS NULL ORDER BY e.id ASC`).
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow(int64(2), "Bruno", int64(1), "555-0102", 3000.0, int64(1), now, now))

	employees, err := store.ReadNonTechnicianEmployees(context.Background())
	if err != nil {
		t.Fatalf("ReadNonTechnicianEmployees: %v", err)
	}
	if len(employees) != 1 || employees[0].Name != "Bruno" || employees[0].HouseLocationID != "1" {
		t.Errorf("unexpected employees %+v", employees)
	}
}

func TestReadCompleteTestMade(t *testing.T) {
	mock, store := newMock(t)
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM test_made tm JOIN integrity_test it ON it.id = tm.integrity_test_id WHERE tm.id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "obtained_score", "start_date", "finish_date", "airplane_id", "integrity_test_id", "technician_id", "test_name", "minimum_score",
		}).AddRow(int64(10), 82.5, start, start.Add(time.Hour), int64(1), int64(2), int64(3), "Fuselage", 70.0))

	complete, err := store.ReadCompleteTestMade(context.Background(), "10")
	if err != nil {
		t.Fatalf("ReadCompleteTestMade: %v", err)
	}
	if complete.TestName != "Fuselage" || complete.ObtainedScore != 82.5 || !complete.Passed() {
		t.Errorf("unexpected complete test %+v", complete)
	}
}

func TestCreateTechnicianSharesEmployeeID(t *testing.T) {
	mock, store := newMock(t)

	mock.ExpectExec(`INSERT INTO technician \(id\) VALUES \(\$1\)`).
		WithArgs(int64(12)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := store.CreateTechnician(context.Background(), "12"); err != nil {
		t.Fatalf("CreateTechnician: %v", err)
	}
}

// TestStoreConformance runs the shared suite against a real database when
// AIRPORT_TEST_DATABASE_URL points at a disposable PostgreSQL instance.
func TestStoreConformance(t *testing.T) {
	dsn := os.Getenv("AIRPORT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("AIRPORT_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pgxpool.New: %v", err)
	}
	defer pool.Close()

	if err := migrations.NewMigrator(pool).Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	storetest.Run(t, func(t *testing.T) repositories.Store {
		_, err := pool.Exec(ctx, `TRUNCATE flight, test_made, integrity_test, technician_pro_at_model,
			technician, employee, airplane, airplane_model, location, syndicate RESTART IDENTITY CASCADE`)
		if err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return NewStore(nopCloser{pool})
	})
}

// nopCloser keeps the shared pool open across subtests
type nopCloser struct {
	*pgxpool.Pool
}

func (nopCloser) Close() {}
