// Package store opens the local SQLite state database and applies migrations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/thronos/careerforge/internal/client/migrations"
	"github.com/thronos/careerforge/internal/client/repositories/kits"
	"github.com/thronos/careerforge/internal/client/repositories/metadata"
	"github.com/thronos/careerforge/internal/filex"
)

// Repositories bundles the repositories backed by one database handle.
type Repositories struct {
	DB       *sql.DB
	Metadata *metadata.SQLiteRepository
	Kits     *kits.SQLiteRepository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

// RunMigrations applies all pending embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dsn and migrates it.
// A plain file path gets its parent directory created first.
func Open(ctx context.Context, dsn string) (*Repositories, error) {
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Repositories{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
		Kits:     kits.NewSQLiteRepository(db),
	}, nil
}
