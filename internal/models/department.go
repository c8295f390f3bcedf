package models

import "github.com/shopspring/decimal"

// Department is the top-level grouping that roles belong to
type Department struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// DepartmentBudget is the salary rollup for a single department
type DepartmentBudget struct {
	DepartmentID   int             `db:"department_id"`
	DepartmentName string          `db:"department_name"`
	EmployeeCount  int             `db:"employee_count"`
	Total          decimal.Decimal `db:"total"`
}
