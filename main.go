package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/staffdesk/staffdesk/cmd"
	"github.com/staffdesk/staffdesk/internal/cli"
	"github.com/staffdesk/staffdesk/internal/database"
)

func main() {
	err := cmd.Execute(context.Background())
	// Connection failures are already printed, styled, by the root command
	if err != nil && !errors.Is(err, database.ErrConnection) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return cli.ExitSuccess
	case errors.Is(err, database.ErrConnection):
		return cli.ExitConnection
	default:
		return cli.ExitError
	}
}
