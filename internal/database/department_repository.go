package database

import (
	"context"
	"fmt"

	"github.com/staffdesk/staffdesk/internal/models"
)

// DepartmentRepo handles all department-related database operations.
type DepartmentRepo struct {
	store *Store
}

// GetAllDepartments retrieves every department ordered by name
func (r *DepartmentRepo) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	err := r.store.Select(ctx, &departments,
		`SELECT id, name FROM departments ORDER BY name, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	return departments, nil
}

// CreateDepartment inserts a department with the given name
func (r *DepartmentRepo) CreateDepartment(ctx context.Context, name string) (Result, error) {
	res, err := r.store.Exec(ctx,
		`INSERT INTO departments (name) VALUES (?)`,
		name,
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to insert department '%s': %w", name, err)
	}
	return res, nil
}

// GetDepartmentBudget sums the salaries of every employee holding a role in
// the department. Roles nobody holds do not count toward the budget.
func (r *DepartmentRepo) GetDepartmentBudget(ctx context.Context, departmentID int) (models.DepartmentBudget, error) {
	var budget models.DepartmentBudget
	err := r.store.Get(ctx, &budget, `
		SELECT d.id AS department_id,
		       d.name AS department_name,
		       COUNT(e.id) AS employee_count,
		       COALESCE(SUM(CASE WHEN e.id IS NULL THEN 0 ELSE r.salary END), 0) AS total
		FROM departments d
		LEFT JOIN roles r ON r.department_id = d.id
		LEFT JOIN employees e ON e.role_id = r.id
		WHERE d.id = ?
		GROUP BY d.id, d.name`,
		departmentID,
	)
	if err != nil {
		return models.DepartmentBudget{}, fmt.Errorf("failed to compute budget for department %d: %w", departmentID, err)
	}
	return budget, nil
}
