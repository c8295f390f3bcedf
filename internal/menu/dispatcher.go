package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/staffdesk/staffdesk/internal/cli/styles"
	"github.com/staffdesk/staffdesk/internal/prompt"
)

const menuTitle = "What would you like to do?"

// Dispatcher shows the main menu, runs the chosen action, and comes back to
// the menu until Quit is chosen. It is the single place where action
// failures are reported; none of them end the session.
type Dispatcher struct {
	prompter prompt.Prompter
	routes   map[Action]Handler
	closer   io.Closer
	out      io.Writer
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher. closer is released once, on Quit.
func NewDispatcher(prompter prompt.Prompter, routes map[Action]Handler, closer io.Closer, out io.Writer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		prompter: prompter,
		routes:   routes,
		closer:   closer,
		out:      out,
		logger:   logger,
	}
}

// Run loops until Quit, or until ctx is done
func (d *Dispatcher) Run(ctx context.Context) error {
	choices := menuChoices()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := d.prompter.Select(ctx, menuTitle, choices)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			d.report("menu", err)
			continue
		}

		id, ok := choice.ID()
		if !ok {
			continue
		}
		action := Action(id)
		d.println(styles.Notice("Selected: " + action.String()))

		if action == Quit {
			d.quit()
			return nil
		}

		d.dispatch(ctx, action)
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, action Action) {
	handler, ok := d.routes[action]
	if !ok {
		d.report(action.String(), fmt.Errorf("no handler for %q", action))
		return
	}

	err := d.safeRun(ctx, handler)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotImplemented):
		d.println(styles.Notice("Selection not yet functional."))
	default:
		d.report(action.String(), err)
	}
}

// safeRun converts a panicking handler into an error
func (d *Dispatcher) safeRun(ctx context.Context, handler Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return handler(ctx)
}

func (d *Dispatcher) quit() {
	if err := d.closer.Close(); err != nil {
		d.report(Quit.String(), err)
	}
	d.logger.Info("session ended")
	d.println(styles.Success("Database connection ended."))
}

func (d *Dispatcher) report(label string, err error) {
	d.logger.Error("action failed", "action", label, "error", err)
	d.println(styles.Error(err.Error()))
}

func (d *Dispatcher) println(text string) {
	_, _ = fmt.Fprintln(d.out, text)
}

func menuChoices() []prompt.Choice {
	all := Actions()
	choices := make([]prompt.Choice, 0, len(all))
	for _, a := range all {
		choices = append(choices, prompt.NewChoice(a.String(), int(a)))
	}
	return choices
}
