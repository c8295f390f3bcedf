package testutil

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/database"
)

// SetupTestStore opens an in-memory SQLite store with the full schema
func SetupTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(context.Background(), config.Database{
		Driver: config.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// SetupMockStore returns a store backed by sqlmock, for asserting exact
// statements and bind values or injecting failures
func SetupMockStore(t *testing.T) (*database.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return database.NewStore(db, config.DriverSQLite), mock
}

// CreateTestDepartment inserts a department and returns its ID
func CreateTestDepartment(t *testing.T, store *database.Store, name string) int {
	t.Helper()
	res, err := database.NewRepository(store).CreateDepartment(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create department %q: %v", name, err)
	}
	return int(res.LastInsertID)
}

// CreateTestRole inserts a role and returns its ID
func CreateTestRole(t *testing.T, store *database.Store, title string, salary int64, departmentID int) int {
	t.Helper()
	res, err := database.NewRepository(store).CreateRole(context.Background(), title, decimal.NewFromInt(salary), departmentID)
	if err != nil {
		t.Fatalf("Failed to create role %q: %v", title, err)
	}
	return int(res.LastInsertID)
}

// CreateTestEmployee inserts an employee and returns its ID
func CreateTestEmployee(t *testing.T, store *database.Store, firstName, lastName string, roleID int, managerID *int) int {
	t.Helper()
	res, err := database.NewRepository(store).CreateEmployee(context.Background(), firstName, lastName, roleID, managerID)
	if err != nil {
		t.Fatalf("Failed to create employee %s %s: %v", firstName, lastName, err)
	}
	return int(res.LastInsertID)
}
