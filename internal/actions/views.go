package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/staffdesk/staffdesk/internal/cli/styles"
	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/internal/render"
)

var employeeHeaders = []string{"ID", "Last, First", "Role", "Department", "Salary, USD", "Manager"}

// ViewAllEmployees lists every employee ordered by last then first name
func (h *Handlers) ViewAllEmployees(ctx context.Context) error {
	employees, err := h.repo.GetEmployeeDetails(ctx)
	if err != nil {
		return fmt.Errorf("error with selection: %w", err)
	}

	h.renderEmployees("Viewing all employees in order by last name:", employees)
	return nil
}

// ViewAllRoles lists every role ordered by title
func (h *Handlers) ViewAllRoles(ctx context.Context) error {
	roles, err := h.repo.GetAllRoles(ctx)
	if err != nil {
		return fmt.Errorf("error with selection: %w", err)
	}

	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Title,
			render.OrPlaceholder(r.DepartmentName),
			r.Salary.StringFixed(2),
		})
	}

	h.println(styles.Subtle("Viewing all roles by title:"))
	h.println(render.Table([]string{"ID", "Role Title", "Department", "Salary, USD"}, rows))
	return nil
}

// ViewAllDepartments lists every department ordered by name
func (h *Handlers) ViewAllDepartments(ctx context.Context) error {
	departments, err := h.repo.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("error with selection: %w", err)
	}

	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{strconv.Itoa(d.ID), d.Name})
	}

	h.println(styles.Subtle("Viewing all departments by name:"))
	h.println(render.Table([]string{"ID", "Department Name"}, rows))
	return nil
}

// ViewEmployeesByManager asks for a manager, then lists their direct reports
func (h *Handlers) ViewEmployeesByManager(ctx context.Context) error {
	managers, err := h.repo.GetManagers(ctx)
	if err != nil {
		return fmt.Errorf("error loading managers: %w", err)
	}

	managerID, err := h.selectID(ctx, "Select a manager:", "manager to an employee", employeeChoices(managers))
	if err != nil {
		return fmt.Errorf("error viewing employees by manager: %w", err)
	}

	reports, err := h.repo.GetEmployeesByManager(ctx, managerID)
	if err != nil {
		return fmt.Errorf("error with selection: %w", err)
	}

	caption := "Viewing employees by manager:"
	for _, m := range managers {
		if m.ID == managerID {
			caption = fmt.Sprintf("Viewing employees managed by %s %s:", m.FirstName, m.LastName)
			break
		}
	}

	h.renderEmployees(caption, reports)
	return nil
}

// ViewEmployeesByDepartment asks for a department, then lists the employees
// whose role belongs to it
func (h *Handlers) ViewEmployeesByDepartment(ctx context.Context) error {
	departments, err := h.repo.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("error loading departments: %w", err)
	}

	departmentID, err := h.selectID(ctx, "Select a department:", "department", departmentChoices(departments))
	if err != nil {
		return fmt.Errorf("error viewing employees by department: %w", err)
	}

	employees, err := h.repo.GetEmployeesByDepartment(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("error with selection: %w", err)
	}

	caption := "Viewing employees by department:"
	for _, d := range departments {
		if d.ID == departmentID {
			caption = fmt.Sprintf("Viewing employees in %s:", d.Name)
			break
		}
	}

	h.renderEmployees(caption, employees)
	return nil
}

// ViewDepartmentBudget asks for a department, then shows the combined
// salary of everyone working in it
func (h *Handlers) ViewDepartmentBudget(ctx context.Context) error {
	departments, err := h.repo.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("error loading departments: %w", err)
	}

	departmentID, err := h.selectID(ctx, "Select a department:", "department", departmentChoices(departments))
	if err != nil {
		return fmt.Errorf("error viewing department budget: %w", err)
	}

	budget, err := h.repo.GetDepartmentBudget(ctx, departmentID)
	if err != nil {
		return fmt.Errorf("error with selection: %w", err)
	}

	h.println(styles.Subtle("Viewing total utilized budget:"))
	h.println(render.Table(
		[]string{"Department", "Employees", "Total Budget, USD"},
		[][]string{{budget.DepartmentName, strconv.Itoa(budget.EmployeeCount), budget.Total.StringFixed(2)}},
	))
	return nil
}

func (h *Handlers) renderEmployees(caption string, employees []models.EmployeeDetail) {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		salary := render.Placeholder
		if e.Salary.Valid {
			salary = e.Salary.Decimal.StringFixed(2)
		}
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.SortName(),
			render.OrPlaceholder(e.RoleTitle),
			render.OrPlaceholder(e.DepartmentName),
			salary,
			render.TextOrPlaceholder(e.ManagerName()),
		})
	}

	h.println(styles.Subtle(caption))
	h.println(render.Table(employeeHeaders, rows))
}
