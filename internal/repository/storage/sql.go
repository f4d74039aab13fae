package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// register the PostgreSQL driver with the database/sql package.
	_ "github.com/lib/pq"
	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

var ErrUnknownDriver = errors.New("unknown sql driver")

type Storage struct {
	Connection *sql.DB
	Driver     string
}

// NewSQLStorage - opens the history database. Both drivers accept $n placeholders.
func NewSQLStorage(driver, dsn string) (*Storage, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn, Driver: driver}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS series_history (
		series_id     TEXT    NOT NULL,
		side_a_name   TEXT    NOT NULL,
		side_b_name   TEXT    NOT NULL,
		champion      TEXT    NOT NULL,
		wins_a        INTEGER NOT NULL,
		wins_b        INTEGER NOT NULL,
		rounds_to_win INTEGER NOT NULL,
		rounds        INTEGER NOT NULL,
		ai_opponent   BOOLEAN NOT NULL,
		tier          INTEGER NOT NULL,
		finished_at   BIGINT  NOT NULL
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	index := `CREATE INDEX IF NOT EXISTS series_history_finished_at ON series_history (finished_at)`
	if _, err := that.Connection.ExecContext(ctx, index); err != nil {
		return fmt.Errorf("can't create index: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
