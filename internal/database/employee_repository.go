package database

import (
	"context"
	"fmt"

	"github.com/staffdesk/staffdesk/internal/models"
)

// EmployeeRepo handles all employee-related database operations.
type EmployeeRepo struct {
	store *Store
}

// employeeDetailQuery denormalizes role, department and manager names.
// Every join is a LEFT JOIN so an employee is listed even with a dangling reference.
const employeeDetailQuery = `
	SELECT employees.id, employees.first_name, employees.last_name,
	       employees.role_id, employees.manager_id,
	       roles.title AS role_title,
	       departments.name AS department_name,
	       roles.salary,
	       managers.first_name AS manager_first_name,
	       managers.last_name AS manager_last_name
	FROM employees
	LEFT JOIN roles ON employees.role_id = roles.id
	LEFT JOIN departments ON roles.department_id = departments.id
	LEFT JOIN employees AS managers ON employees.manager_id = managers.id`

const employeeOrder = ` ORDER BY employees.last_name, employees.first_name, employees.id`

// GetAllEmployees retrieves plain employee records ordered by last then first name
func (r *EmployeeRepo) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.store.Select(ctx, &employees, `
		SELECT id, first_name, last_name, role_id, manager_id
		FROM employees
		ORDER BY last_name, first_name, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	return employees, nil
}

// GetEmployeeDetails retrieves every employee with joined names for listing
func (r *EmployeeRepo) GetEmployeeDetails(ctx context.Context) ([]models.EmployeeDetail, error) {
	var details []models.EmployeeDetail
	if err := r.store.Select(ctx, &details, employeeDetailQuery+employeeOrder); err != nil {
		return nil, fmt.Errorf("failed to query employee details: %w", err)
	}
	return details, nil
}

// GetEmployeesByManager retrieves the direct reports of a manager
func (r *EmployeeRepo) GetEmployeesByManager(ctx context.Context, managerID int) ([]models.EmployeeDetail, error) {
	var details []models.EmployeeDetail
	err := r.store.Select(ctx, &details,
		employeeDetailQuery+` WHERE employees.manager_id = ?`+employeeOrder,
		managerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports of manager %d: %w", managerID, err)
	}
	return details, nil
}

// GetEmployeesByDepartment retrieves employees whose role belongs to the department
func (r *EmployeeRepo) GetEmployeesByDepartment(ctx context.Context, departmentID int) ([]models.EmployeeDetail, error) {
	var details []models.EmployeeDetail
	err := r.store.Select(ctx, &details,
		employeeDetailQuery+` WHERE roles.department_id = ?`+employeeOrder,
		departmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees of department %d: %w", departmentID, err)
	}
	return details, nil
}

// GetManagers retrieves employees that at least one other employee reports to
func (r *EmployeeRepo) GetManagers(ctx context.Context) ([]models.Employee, error) {
	var managers []models.Employee
	err := r.store.Select(ctx, &managers, `
		SELECT DISTINCT managers.id, managers.first_name, managers.last_name,
		       managers.role_id, managers.manager_id
		FROM employees AS managers
		INNER JOIN employees AS reports ON reports.manager_id = managers.id
		ORDER BY managers.last_name, managers.first_name, managers.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query managers: %w", err)
	}
	return managers, nil
}

// CreateEmployee inserts an employee; a nil managerID binds SQL NULL
func (r *EmployeeRepo) CreateEmployee(ctx context.Context, firstName, lastName string, roleID int, managerID *int) (Result, error) {
	res, err := r.store.Exec(ctx,
		`INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)`,
		firstName, lastName, roleID, nullableInt(managerID),
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to insert employee '%s %s': %w", firstName, lastName, err)
	}
	return res, nil
}

// UpdateEmployeeRole moves an employee to a new role; binds are (role_id, id)
func (r *EmployeeRepo) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int) error {
	res, err := r.store.Exec(ctx,
		`UPDATE employees SET role_id = ? WHERE id = ?`,
		roleID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update role of employee %d: %w", employeeID, err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee %d: %w", employeeID, ErrNotFound)
	}
	return nil
}
