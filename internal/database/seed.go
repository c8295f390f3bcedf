package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

type seedRole struct {
	title      string
	salary     int64
	department string
}

type seedEmployee struct {
	first, last string
	role        string
	manager     string // "First Last" of an earlier entry, or ""
}

var (
	seedDepartments = []string{"Engineering", "Finance", "Legal", "Sales"}

	seedRoles = []seedRole{
		{"Sales Lead", 100000, "Sales"},
		{"Salesperson", 80000, "Sales"},
		{"Lead Engineer", 150000, "Engineering"},
		{"Software Engineer", 120000, "Engineering"},
		{"Account Manager", 160000, "Finance"},
		{"Accountant", 125000, "Finance"},
		{"Legal Team Lead", 250000, "Legal"},
		{"Lawyer", 190000, "Legal"},
	}

	seedEmployees = []seedEmployee{
		{"John", "Doe", "Sales Lead", ""},
		{"Mike", "Chan", "Salesperson", "John Doe"},
		{"Ashley", "Rodriguez", "Lead Engineer", ""},
		{"Kevin", "Tupik", "Software Engineer", "Ashley Rodriguez"},
		{"Kunal", "Singh", "Account Manager", ""},
		{"Malia", "Brown", "Accountant", "Kunal Singh"},
		{"Sarah", "Lourd", "Legal Team Lead", ""},
		{"Tom", "Allen", "Lawyer", "Sarah Lourd"},
	}
)

// SeedSampleData inserts a small sample organisation when the store has no
// departments yet. Generated IDs are read back with RETURNING so the same
// statements work on SQLite and Postgres.
func SeedSampleData(ctx context.Context, store *Store) error {
	var count int
	if err := store.Get(ctx, &count, `SELECT COUNT(*) FROM departments`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	departmentIDs := make(map[string]int, len(seedDepartments))
	for _, name := range seedDepartments {
		var id int
		if err := store.Get(ctx, &id, `INSERT INTO departments (name) VALUES (?) RETURNING id`, name); err != nil {
			return fmt.Errorf("failed to seed department '%s': %w", name, err)
		}
		departmentIDs[name] = id
	}

	roleIDs := make(map[string]int, len(seedRoles))
	for _, role := range seedRoles {
		var id int
		err := store.Get(ctx, &id,
			`INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?) RETURNING id`,
			role.title, decimal.NewFromInt(role.salary), departmentIDs[role.department],
		)
		if err != nil {
			return fmt.Errorf("failed to seed role '%s': %w", role.title, err)
		}
		roleIDs[role.title] = id
	}

	employeeIDs := make(map[string]int, len(seedEmployees))
	for _, emp := range seedEmployees {
		var managerID *int
		if emp.manager != "" {
			id := employeeIDs[emp.manager]
			managerID = &id
		}

		var id int
		err := store.Get(ctx, &id,
			`INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?) RETURNING id`,
			emp.first, emp.last, roleIDs[emp.role], nullableInt(managerID),
		)
		if err != nil {
			return fmt.Errorf("failed to seed employee '%s %s': %w", emp.first, emp.last, err)
		}
		employeeIDs[emp.first+" "+emp.last] = id
	}

	slog.Info("seeded sample data",
		"departments", len(seedDepartments),
		"roles", len(seedRoles),
		"employees", len(seedEmployees),
	)
	return nil
}
