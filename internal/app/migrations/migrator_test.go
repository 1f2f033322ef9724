package migrations

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"m/002_second.sql": {Data: []byte("CREATE TABLE second (id INT);")},
		"m/001_first.sql":  {Data: []byte("CREATE TABLE first (id INT);")},
		"m/003_third.sql":  {Data: []byte("CREATE TABLE third (id INT);")},
		"m/README.md":      {Data: []byte("not a migration")},
	}
}

func expectTrackingTable(mock pgxmock.PgxPoolIface) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
}

func expectStep(mock pgxmock.PgxPoolIface, version, table string) {
	mock.ExpectQuery("SELECT EXISTS").WithArgs(version).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE " + table).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs(version).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
}

func TestMigrationsAreSortedByVersion(t *testing.T) {
	m := NewMigratorFS(nil, testFS(), "m")

	migrations, err := m.Migrations()
	if err != nil {
		t.Fatalf("Migrations: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	for i, want := range []string{"001", "002", "003"} {
		if migrations[i].Version != want {
			t.Errorf("migration %d: expected version %s, got %s", i, want, migrations[i].Version)
		}
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	migrations, err := NewMigrator(nil).Migrations()
	if err != nil {
		t.Fatalf("Migrations: %v", err)
	}
	names := []string{"001_init.sql", "002_staff.sql", "003_operations.sql"}
	if len(migrations) != len(names) {
		t.Fatalf("expected %d embedded migrations, got %d", len(names), len(migrations))
	}
	for i, name := range names {
		if migrations[i].Name != name {
			t.Errorf("expected %s at position %d, got %s", name, i, migrations[i].Name)
		}
	}
}

func TestMigrateAppliesAllInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	expectTrackingTable(mock)
	expectStep(mock, "001", "first")
	expectStep(mock, "002", "second")
	expectStep(mock, "003", "third")

	if err := NewMigratorFS(mock, testFS(), "m").Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMigrateToStopsAtVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	expectTrackingTable(mock)
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	expectStep(mock, "002", "second")

	if err := NewMigratorFS(mock, testFS(), "m").MigrateTo(context.Background(), "002"); err != nil {
		t.Fatalf("MigrateTo: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMigrateToUnknownVersion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	expectTrackingTable(mock)

	if err := NewMigratorFS(mock, testFS(), "m").MigrateTo(context.Background(), "009"); err == nil {
		t.Fatal("expected an error for an unknown version")
	}
}

func TestFailedStepRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	boom := errors.New("syntax error")
	expectTrackingTable(mock)
	mock.ExpectQuery("SELECT EXISTS").WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE first").WillReturnError(boom)
	mock.ExpectRollback()

	err = NewMigratorFS(mock, testFS(), "m").Migrate(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected the SQL error to be wrapped, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
