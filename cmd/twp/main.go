package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

const defaultVersion = "dev"

// Version information (set by GoReleaser)
var (
	version = defaultVersion
	commit  = ""
	_       = "unknown" // date - set by GoReleaser but not used
)

func main() {
	initVersion()

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		var statusErr *exitStatusError
		if errors.As(err, &statusErr) {
			os.Exit(statusErr.code)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// exitStatusError carries the child's exit code out of an action.
// Its output has already been printed, so main prints nothing more.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitStatus(code int) error {
	if code == 0 {
		return nil
	}
	if code < 0 {
		code = 1
	}
	return &exitStatusError{code: code}
}
