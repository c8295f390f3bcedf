package models

import "github.com/shopspring/decimal"

// Role is a job title with a salary, owned by a department
type Role struct {
	ID           int             `db:"id"`
	Title        string          `db:"title"`
	Salary       decimal.Decimal `db:"salary"`
	DepartmentID int             `db:"department_id"`

	// DepartmentName is resolved through a join when listing roles.
	// It is nil when the referenced department no longer exists.
	DepartmentName *string `db:"department_name"`
}
