package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffdesk/staffdesk/internal/cli/styles"
)

// AddDepartment asks for a name, inserts the department and re-lists departments
func (h *Handlers) AddDepartment(ctx context.Context) error {
	name, err := h.prompter.Input(ctx, "Enter the name of the new department:", validateName)
	if err != nil {
		return fmt.Errorf("error adding new department: %w", err)
	}
	name = strings.TrimSpace(name)

	if _, err := h.repo.CreateDepartment(ctx, name); err != nil {
		return fmt.Errorf("error adding new department: %w", err)
	}

	h.println(styles.Success("Department has been added!"))
	return h.ViewAllDepartments(ctx)
}
