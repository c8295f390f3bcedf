package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrConnection wraps every failure to open, ping or migrate the store
	ErrConnection = errors.New("store connection failed")
	// ErrQuery wraps every failed read or write against an open store
	ErrQuery = errors.New("store query failed")
	// ErrNotFound is returned when a write matched no rows
	ErrNotFound = errors.New("record not found")
)

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx does not know by default
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Result acknowledges a write
type Result struct {
	RowsAffected int64
	// LastInsertID is 0 when the driver does not report generated keys (pgx)
	LastInsertID int64
}

// Store is the shared handle to the relational store.
//
// A single Store is opened at startup and handed to everything that needs
// the store; it is closed once, when the user quits. Queries are written
// with ? placeholders and rebound to the driver's bind style, so bind
// values are always applied left to right.
type Store struct {
	db     *sqlx.DB
	closed bool
}

// NewStore wraps an already opened connection pool
func NewStore(db *sql.DB, driverName string) *Store {
	return &Store{db: sqlx.NewDb(db, driverName)}
}

// DB returns the underlying database/sql handle
func (s *Store) DB() *sql.DB {
	return s.db.DB
}

// Select runs a read and scans every row into dest, a pointer to a slice
func (s *Store) Select(ctx context.Context, dest any, query string, args ...any) error {
	if err := s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return nil
}

// Get runs a read expected to return exactly one row
func (s *Store) Get(ctx context.Context, dest any, query string, args ...any) error {
	if err := s.db.GetContext(ctx, dest, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return nil
}

// Exec runs a write and reports how many rows it touched
func (s *Store) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to read rows affected: %w", ErrQuery, err)
	}

	// pgx does not support LastInsertId
	lastID, err := res.LastInsertId()
	if err != nil {
		lastID = 0
	}

	return Result{RowsAffected: affected, LastInsertID: lastID}, nil
}

// Close releases the connection. Calls after the first are no-ops.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
