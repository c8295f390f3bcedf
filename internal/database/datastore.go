package database

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk/internal/models"
)

// DepartmentRepository defines department data access
type DepartmentRepository interface {
	GetAllDepartments(ctx context.Context) ([]models.Department, error)
	CreateDepartment(ctx context.Context, name string) (Result, error)
	GetDepartmentBudget(ctx context.Context, departmentID int) (models.DepartmentBudget, error)
}

// RoleRepository defines role data access
type RoleRepository interface {
	GetAllRoles(ctx context.Context) ([]models.Role, error)
	CreateRole(ctx context.Context, title string, salary decimal.Decimal, departmentID int) (Result, error)
}

// EmployeeRepository defines employee data access
type EmployeeRepository interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeDetails(ctx context.Context) ([]models.EmployeeDetail, error)
	GetEmployeesByManager(ctx context.Context, managerID int) ([]models.EmployeeDetail, error)
	GetEmployeesByDepartment(ctx context.Context, departmentID int) ([]models.EmployeeDetail, error)
	GetManagers(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, firstName, lastName string, roleID int, managerID *int) (Result, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int) error
}

// DataStore defines the unified interface for all data operations needed by
// the menu actions. Consumers can depend on the smaller interfaces instead.
type DataStore interface {
	DepartmentRepository
	RoleRepository
	EmployeeRepository
}

var _ DataStore = (*Repository)(nil)
