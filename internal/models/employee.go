package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Employee is a person holding a role, optionally reporting to a manager
type Employee struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	RoleID    int    `db:"role_id"`
	ManagerID *int   `db:"manager_id"`
}

// SortName returns the "Last, First" form used in listings and pickers
func (e Employee) SortName() string {
	return fmt.Sprintf("%s, %s", e.LastName, e.FirstName)
}

// EmployeeDetail is the denormalized listing row for an employee.
// Role, department and manager columns come from LEFT JOINs and may be nil.
type EmployeeDetail struct {
	Employee
	RoleTitle        *string             `db:"role_title"`
	DepartmentName   *string             `db:"department_name"`
	Salary           decimal.NullDecimal `db:"salary"`
	ManagerFirstName *string             `db:"manager_first_name"`
	ManagerLastName  *string             `db:"manager_last_name"`
}

// ManagerName returns "First Last" for the manager, or "" when there is none
func (e EmployeeDetail) ManagerName() string {
	if e.ManagerFirstName == nil || e.ManagerLastName == nil {
		return ""
	}
	return *e.ManagerFirstName + " " + *e.ManagerLastName
}
