package prompt

import (
	"context"
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/staffdesk/staffdesk/internal/config/colors"
)

var errNoOptions = errors.New("nothing to select from")

// Huh implements Prompter with one single-field huh form per question
type Huh struct {
	theme huh.Theme
}

// NewHuh creates a Prompter themed with the given color scheme
func NewHuh(colorScheme colors.ColorScheme) *Huh {
	return &Huh{theme: CreateTheme(colorScheme)}
}

// Select presents choices in the given order and returns the one picked
func (h *Huh) Select(ctx context.Context, title string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, errNoOptions
	}

	// Options carry the slice index so nil values need no special casing
	var selected int
	field := huh.NewSelect[int]().
		Title(title).
		Options(buildOptions(choices)...).
		Value(&selected)

	if err := h.run(ctx, field); err != nil {
		return Choice{}, err
	}
	return choices[selected], nil
}

// Input reads a single line of text, re-asking until validate passes
func (h *Huh) Input(ctx context.Context, title string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := h.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (h *Huh) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// buildOptions maps choices to huh options keyed by their position
func buildOptions(choices []Choice) []huh.Option[int] {
	options := make([]huh.Option[int], len(choices))
	for i, choice := range choices {
		options[i] = huh.NewOption(choice.Label, i)
	}
	return options
}
