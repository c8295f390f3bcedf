// Package menu runs the top-level "what would you like to do?" loop and
// routes each selection to its action handler.
package menu

import (
	"context"
	"errors"

	"github.com/staffdesk/staffdesk/internal/actions"
)

// Action is one entry of the main menu
type Action int

// Menu entries in display order
const (
	ViewAllEmployees Action = iota
	AddEmployee
	UpdateEmployeeRole
	ViewAllRoles
	AddRole
	ViewAllDepartments
	AddDepartment
	UpdateEmployeeManager
	ViewEmployeesByManager
	ViewEmployeesByDepartment
	DeleteDepartments
	DeleteRoles
	DeleteEmployees
	ViewDepartmentBudget
	Quit
)

var actionLabels = map[Action]string{
	ViewAllEmployees:          "View All Employees",
	AddEmployee:               "Add Employee",
	UpdateEmployeeRole:        "Update Employee Role",
	ViewAllRoles:              "View All Roles",
	AddRole:                   "Add Role",
	ViewAllDepartments:        "View All Departments",
	AddDepartment:             "Add Department",
	UpdateEmployeeManager:     "Update Employee Manager",
	ViewEmployeesByManager:    "View Employees By Manager",
	ViewEmployeesByDepartment: "View Employees By Department",
	DeleteDepartments:         "Delete Departments",
	DeleteRoles:               "Delete Roles",
	DeleteEmployees:           "Delete Employees",
	ViewDepartmentBudget:      "View Total Utilized Budget Of A Department",
	Quit:                      "Quit",
}

func (a Action) String() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return "Unknown"
}

// Actions returns every menu entry in display order
func Actions() []Action {
	all := make([]Action, 0, int(Quit)+1)
	for a := ViewAllEmployees; a <= Quit; a++ {
		all = append(all, a)
	}
	return all
}

// ErrNotImplemented marks a menu entry that is listed but does nothing yet
var ErrNotImplemented = errors.New("selection not yet functional")

// Handler runs one menu action to completion
type Handler func(ctx context.Context) error

// Unimplemented is the handler for entries that are shown but not built
func Unimplemented(context.Context) error {
	return ErrNotImplemented
}

// Routes maps every action except Quit to its handler.
// Quit is handled by the dispatcher itself since it ends the session.
func Routes(h *actions.Handlers) map[Action]Handler {
	return map[Action]Handler{
		ViewAllEmployees:          h.ViewAllEmployees,
		AddEmployee:               h.AddEmployee,
		UpdateEmployeeRole:        h.UpdateEmployeeRole,
		ViewAllRoles:              h.ViewAllRoles,
		AddRole:                   h.AddRole,
		ViewAllDepartments:        h.ViewAllDepartments,
		AddDepartment:             h.AddDepartment,
		UpdateEmployeeManager:     Unimplemented,
		ViewEmployeesByManager:    h.ViewEmployeesByManager,
		ViewEmployeesByDepartment: h.ViewEmployeesByDepartment,
		DeleteDepartments:         Unimplemented,
		DeleteRoles:               Unimplemented,
		DeleteEmployees:           Unimplemented,
		ViewDepartmentBudget:      h.ViewDepartmentBudget,
	}
}
