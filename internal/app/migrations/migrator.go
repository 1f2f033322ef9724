package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/airport/internal/pkg/logger"
)

//go:embed sql/*.sql
var embedded embed.FS

// DB is the subset of pgxpool.Pool the migrator needs
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migration is one numbered schema step
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrator manages database migrations
type Migrator struct {
	db    DB
	files fs.FS
	dir   string
}

// NewMigrator creates a migrator over the SQL files compiled into the binary
func NewMigrator(db DB) *Migrator {
	return &Migrator{
		db:    db,
		files: embedded,
		dir:   "sql",
	}
}

// NewMigratorFS creates a migrator reading SQL files from dir inside files
func NewMigratorFS(db DB, files fs.FS, dir string) *Migrator {
	return &Migrator{
		db:    db,
		files: files,
		dir:   dir,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := m.db.Exec(ctx, createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	err := m.db.QueryRow(ctx, query, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Migrations lists the available steps ordered by version
func (m *Migrator) Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(m.files, m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		// "001_init.sql" => "001"
		version, _, ok := strings.Cut(entry.Name(), "_")
		if !ok || version == "" {
			return nil, fmt.Errorf("migration file %s has no version prefix", entry.Name())
		}

		content, err := fs.ReadFile(m.files, path.Join(m.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    entry.Name(),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// apply runs one migration and records it in the same transaction
func (m *Migrator) apply(ctx context.Context, migration Migration) error {
	applied, err := m.isMigrationApplied(ctx, migration.Version)
	if err != nil {
		return err
	}
	if applied {
		logger.Debug().Str("migration", migration.Name).Msg("Migration already applied, skipping")
		return nil
	}

	logger.Info().Str("migration", migration.Name).Msg("Applying migration")

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error().Err(rbErr).Str("migration", migration.Name).Msg("Failed to rollback migration")
		}
	}()

	if _, err := tx.Exec(ctx, migration.SQL); err != nil {
		return fmt.Errorf("error occurred during SQL migration %s: %w", migration.Name, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, migration.Version); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", migration.Name, err)
	}
	committed = true

	logger.Info().Str("migration", migration.Name).Msg("Migration successfully applied")
	return nil
}

// MigrateTo applies pending migrations in order, one step at a time, up to
// and including version. An empty version applies everything.
func (m *Migrator) MigrateTo(ctx context.Context, version string) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	migrations, err := m.Migrations()
	if err != nil {
		return err
	}

	if version != "" {
		known := false
		for _, migration := range migrations {
			if migration.Version == version {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown migration version %q", version)
		}
	}

	for _, migration := range migrations {
		if version != "" && migration.Version > version {
			break
		}
		if err := m.apply(ctx, migration); err != nil {
			return err
		}
	}
	return nil
}

// Migrate applies every pending migration
func (m *Migrator) Migrate(ctx context.Context) error {
	return m.MigrateTo(ctx, "")
}
