package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/models"
)

// RoleRepo handles all role-related database operations.
type RoleRepo struct {
	store *Store
}

// GetAllRoles retrieves every role with its department name, ordered by title
func (r *RoleRepo) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.store.Select(ctx, &roles, `
		SELECT roles.id, roles.title, roles.salary, roles.department_id,
		       departments.name AS department_name
		FROM roles
		LEFT JOIN departments ON roles.department_id = departments.id
		ORDER BY roles.title, roles.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	return roles, nil
}

// CreateRole inserts a role; binds are (title, salary, department_id)
func (r *RoleRepo) CreateRole(ctx context.Context, title string, salary decimal.Decimal, departmentID int) (Result, error) {
	res, err := r.store.Exec(ctx,
		`INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?)`,
		title, salary, departmentID,
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to insert role '%s': %w", title, err)
	}
	return res, nil
}
