package database

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/config"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestStore opens an in-memory store with migrations applied
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), config.Database{
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

func mustDepartment(t *testing.T, repo *Repository, name string) int {
	t.Helper()
	res, err := repo.CreateDepartment(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create department: %v", err)
	}
	return int(res.LastInsertID)
}

func mustRole(t *testing.T, repo *Repository, title string, salary int64, departmentID int) int {
	t.Helper()
	res, err := repo.CreateRole(context.Background(), title, decimal.NewFromInt(salary), departmentID)
	if err != nil {
		t.Fatalf("Failed to create role: %v", err)
	}
	return int(res.LastInsertID)
}

func mustEmployee(t *testing.T, repo *Repository, first, last string, roleID int, managerID *int) int {
	t.Helper()
	res, err := repo.CreateEmployee(context.Background(), first, last, roleID, managerID)
	if err != nil {
		t.Fatalf("Failed to create employee: %v", err)
	}
	return int(res.LastInsertID)
}
