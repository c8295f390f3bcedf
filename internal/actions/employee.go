package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffdesk/staffdesk/internal/cli/styles"
	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/internal/prompt"
	"github.com/staffdesk/staffdesk/internal/render"
)

// AddEmployee collects the name, then a role, then an optional manager chosen
// from the current employees, and inserts the employee. Picking "None" binds
// a NULL manager.
func (h *Handlers) AddEmployee(ctx context.Context) error {
	firstName, err := h.prompter.Input(ctx, "Enter the first name of the new employee:", validateName)
	if err != nil {
		return fmt.Errorf("error adding new employee: %w", err)
	}
	lastName, err := h.prompter.Input(ctx, "Enter the last name of the new employee:", validateName)
	if err != nil {
		return fmt.Errorf("error adding new employee: %w", err)
	}
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)

	roles, err := h.repo.GetAllRoles(ctx)
	if err != nil {
		return fmt.Errorf("error adding new employee: %w", err)
	}
	roleID, err := h.selectID(ctx, "Select the role for the new employee:", "role", roleChoices(roles))
	if err != nil {
		return fmt.Errorf("error adding new employee: %w", err)
	}

	employees, err := h.repo.GetAllEmployees(ctx)
	if err != nil {
		return fmt.Errorf("error adding new employee: %w", err)
	}
	manager, err := h.prompter.Select(ctx, "Select the manager of the new employee:", managerChoices(employees))
	if err != nil {
		return fmt.Errorf("error adding new employee: %w", err)
	}

	if _, err := h.repo.CreateEmployee(ctx, firstName, lastName, roleID, manager.Value); err != nil {
		return fmt.Errorf("error adding new employee: %w", err)
	}

	h.println(styles.Success(fmt.Sprintf("New employee has been added: %s %s", firstName, lastName)))
	return h.ViewAllEmployees(ctx)
}

// UpdateEmployeeRole picks an employee, then their new role, and updates it
func (h *Handlers) UpdateEmployeeRole(ctx context.Context) error {
	employees, err := h.repo.GetEmployeeDetails(ctx)
	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}
	employeeID, err := h.selectID(ctx, "Select the employee to update role:", "employee", employeeRoleChoices(employees))
	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}

	roles, err := h.repo.GetAllRoles(ctx)
	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}
	roleID, err := h.selectID(ctx, "Select the new role for the employee:", "role", roleChoices(roles))
	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}

	if err := h.repo.UpdateEmployeeRole(ctx, employeeID, roleID); err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}

	h.println(styles.Success("Role has been updated."))
	return h.ViewAllEmployees(ctx)
}

// employeeRoleChoices labels employees with their current role:
// "Last, First [Role: title] [ID: n]"
func employeeRoleChoices(employees []models.EmployeeDetail) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(employees))
	for _, e := range employees {
		label := fmt.Sprintf("%s [Role: %s] [ID: %d]", e.SortName(), render.OrPlaceholder(e.RoleTitle), e.ID)
		choices = append(choices, prompt.NewChoice(label, e.ID))
	}
	return choices
}
