package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffdesk/staffdesk/internal/cli/styles"
)

// AddRole collects title and salary, then the owning department chosen from
// the current department list, and inserts the role.
func (h *Handlers) AddRole(ctx context.Context) error {
	title, err := h.prompter.Input(ctx, "Enter the title of the new role:", validateName)
	if err != nil {
		return fmt.Errorf("error adding new role: %w", err)
	}
	title = strings.TrimSpace(title)

	salaryInput, err := h.prompter.Input(ctx, "Enter the salary of the new role:", validateSalary)
	if err != nil {
		return fmt.Errorf("error adding new role: %w", err)
	}
	salary, err := parseSalary(salaryInput)
	if err != nil {
		return fmt.Errorf("error adding new role: %w", err)
	}

	departments, err := h.repo.GetAllDepartments(ctx)
	if err != nil {
		return fmt.Errorf("error adding new role: %w", err)
	}
	departmentID, err := h.selectID(ctx, "Select the department for the new role:", "department", departmentChoices(departments))
	if err != nil {
		return fmt.Errorf("error adding new role: %w", err)
	}

	if _, err := h.repo.CreateRole(ctx, title, salary, departmentID); err != nil {
		return fmt.Errorf("error adding new role: %w", err)
	}

	h.println(styles.Success("New role has been added: " + title))
	return h.ViewAllRoles(ctx)
}
