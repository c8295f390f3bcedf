package cli

// Exit codes for the staffdesk binary.
// These codes follow Unix conventions.
const (
	// ExitSuccess indicates the session ended through Quit.
	ExitSuccess = 0

	// ExitError indicates a startup failure: config, logging,
	// or an unexpected error from the menu loop.
	ExitError = 1

	// ExitConnection indicates the store could not be opened, pinged or migrated.
	ExitConnection = 3
)
