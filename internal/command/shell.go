package command

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/twp-dev/twp/internal/errors"
)

// realShellExecutor implements ShellExecutor using os/exec
type realShellExecutor struct{}

// NewRealShellExecutor creates a new shell executor that executes real commands
func NewRealShellExecutor() ShellExecutor {
	return &realShellExecutor{}
}

// Execute starts the process, waits for it and returns its trimmed stdout.
// Stdin and stderr are inherited from the current process.
func (s *realShellExecutor) Execute(c Command) (string, int, error) {
	// #nosec G204 - argument vector is passed without a shell
	cmd := exec.Command(c.Name, c.Args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr

	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	if err := cmd.Start(); err != nil {
		return "", -1, errors.NewLaunchError(Render(c), err)
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return "", -1, errors.NewLaunchError(Render(c), err)
		}
		exitCode = exitErr.ExitCode()
	}

	raw := stdout.Bytes()
	if !utf8.Valid(raw) {
		return "", exitCode, errors.NewDecodeError(Render(c), raw)
	}

	return strings.TrimSpace(string(raw)), exitCode, nil
}
