// Package prompt asks the user one question at a time.
//
// Every prompt blocks until answered; the result of one prompt is available
// before the next one is configured, which is what lets the menu actions
// build dependent prompt chains.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user interrupts a prompt (ctrl+c, esc)
var ErrAborted = errors.New("prompt aborted")

// NoneLabel is the label of the synthetic "no value" choice
const NoneLabel = "None"

// Choice is one selectable entry: a display label and the ID it stands for.
// A nil Value means "no value" and binds as SQL NULL.
type Choice struct {
	Label string
	Value *int
}

// NewChoice builds a choice for an existing record
func NewChoice(label string, id int) Choice {
	return Choice{Label: label, Value: &id}
}

// NoneChoice is the synthetic choice for an optional relation left empty
func NoneChoice() Choice {
	return Choice{Label: NoneLabel}
}

// ID returns the chosen identifier and whether one was chosen at all
func (c Choice) ID() (int, bool) {
	if c.Value == nil {
		return 0, false
	}
	return *c.Value, true
}

// Prompter is the interactive prompt interface the menu and actions depend on
type Prompter interface {
	// Select presents a single-select list and returns the chosen entry
	Select(ctx context.Context, title string, choices []Choice) (Choice, error)
	// Input reads one line of free text; validate may be nil
	Input(ctx context.Context, title string, validate func(string) error) (string, error)
}
