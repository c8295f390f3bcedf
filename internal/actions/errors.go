package actions

import "errors"

// Domain errors for the menu actions
var (
	// Validation errors
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 30 characters")
	ErrInvalidSalary  = errors.New("salary must be a number")
	ErrNegativeSalary = errors.New("salary cannot be negative")

	// Flow errors
	ErrNoChoices   = errors.New("no choices available")
	ErrNoSelection = errors.New("no value selected")
)
