package app

import (
	"context"
	"os"

	"github.com/staffdesk/staffdesk/internal/actions"
	"github.com/staffdesk/staffdesk/internal/database"
	"github.com/staffdesk/staffdesk/internal/menu"
	"github.com/staffdesk/staffdesk/internal/prompt"
)

// App holds the application components and wires them together.
// The store is owned by the App once it is created: Quit releases it.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	Handlers   *actions.Handlers
	Dispatcher *menu.Dispatcher
}

// New creates a new App over an open store.
// This is the single entry point for creating the application container.
func New(store *database.Store, prompter prompt.Prompter, opts ...Option) *App {
	cfg := &appConfig{out: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(store)
	handlers := actions.New(repo, prompter, cfg.out)

	return &App{
		repo:       repo,
		Handlers:   handlers,
		Dispatcher: menu.NewDispatcher(prompter, menu.Routes(handlers), store, cfg.out, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Run shows the main menu until the user quits
func (a *App) Run(ctx context.Context) error {
	return a.Dispatcher.Run(ctx)
}
