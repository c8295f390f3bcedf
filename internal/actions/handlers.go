// Package actions implements what each menu entry does: listings rendered
// as tables, and dependent prompt chains that end in a single write
package actions

import (
	"context"
	"fmt"
	"io"

	"github.com/staffdesk/staffdesk/internal/database"
	"github.com/staffdesk/staffdesk/internal/models"
	"github.com/staffdesk/staffdesk/internal/prompt"
)

// Handlers holds the collaborators every action needs.
//
// Choice lists are fetched from the store at the moment they are prompted
// and never cached, so a selection always names a record that existed when
// the prompt was shown.
type Handlers struct {
	repo     database.DataStore
	prompter prompt.Prompter
	out      io.Writer
}

// New creates the action handlers
func New(repo database.DataStore, prompter prompt.Prompter, out io.Writer) *Handlers {
	return &Handlers{
		repo:     repo,
		prompter: prompter,
		out:      out,
	}
}

// println writes to the handler's output; write errors to a terminal are not actionable
func (h *Handlers) println(text string) {
	_, _ = fmt.Fprintln(h.out, text)
}

// selectID prompts over choices and returns the chosen identifier.
// An empty list aborts with ErrNoChoices before anything is shown.
func (h *Handlers) selectID(ctx context.Context, title, what string, choices []prompt.Choice) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("%w: add a %s first", ErrNoChoices, what)
	}

	choice, err := h.prompter.Select(ctx, title, choices)
	if err != nil {
		return 0, err
	}

	id, ok := choice.ID()
	if !ok {
		return 0, ErrNoSelection
	}
	return id, nil
}

// ═══════════════════════════════════════════════════════════════════
// CHOICE BUILDERS
// ═══════════════════════════════════════════════════════════════════

func departmentChoices(departments []models.Department) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(departments))
	for _, d := range departments {
		choices = append(choices, prompt.NewChoice(d.Name, d.ID))
	}
	return choices
}

func roleChoices(roles []models.Role) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(roles))
	for _, r := range roles {
		choices = append(choices, prompt.NewChoice(r.Title, r.ID))
	}
	return choices
}

// employeeChoices labels employees "Last, First [ID: n]" so namesakes stay distinct
func employeeChoices(employees []models.Employee) []prompt.Choice {
	choices := make([]prompt.Choice, 0, len(employees))
	for _, e := range employees {
		label := fmt.Sprintf("%s [ID: %d]", e.SortName(), e.ID)
		choices = append(choices, prompt.NewChoice(label, e.ID))
	}
	return choices
}

// managerChoices is employeeChoices plus a trailing "None" for no manager
func managerChoices(employees []models.Employee) []prompt.Choice {
	return append(employeeChoices(employees), prompt.NoneChoice())
}
