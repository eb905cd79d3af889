package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// WorkspaceEnvVar is the environment variable tw reads its workspace from
const WorkspaceEnvVar = "TOWER_WORKSPACE_ID"

// ConfigurationError reports settings that make it impossible to build a client.
type ConfigurationError struct {
	msg string
	err error
}

func (e *ConfigurationError) Error() string { return e.msg }

func (e *ConfigurationError) Unwrap() error { return e.err }

// LaunchError reports a child process that could not be started.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	msg := fmt.Sprintf("failed to launch: %s", e.Command)
	if e.Err == nil {
		return msg
	}

	errStr := e.Err.Error()
	if strings.Contains(errStr, "executable file not found") || strings.Contains(errStr, "no such file") {
		msg += `

Cause: Executable not found
Solutions:
  • Install the Seqera Platform CLI (tw) and make sure it is in PATH
  • Set 'executable' in .twp.yml to the full path of the binary`
	} else if strings.Contains(errStr, "permission denied") {
		msg += `

Cause: Permission denied
Solution: Make sure the executable has the execute bit set`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", e.Err)
	return msg
}

func (e *LaunchError) Unwrap() error { return e.Err }

// DecodeError reports standard output that is not valid UTF-8.
type DecodeError struct {
	Command string
	Offset  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("output of '%s' is not valid UTF-8 (invalid byte at offset %d)", e.Command, e.Offset)
}

// NewLaunchError wraps a process start failure
func NewLaunchError(command string, err error) error {
	return &LaunchError{Command: command, Err: err}
}

// NewDecodeError reports the first invalid byte of output
func NewDecodeError(command string, output []byte) error {
	offset := 0
	for offset < len(output) {
		r, size := utf8.DecodeRune(output[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return &DecodeError{Command: command, Offset: offset}
}

// Configuration Errors
func WorkspaceRequired() error {
	msg := fmt.Sprintf(`workspace is not configured

Solutions:
  • Pass --workspace <id>
  • Export %s=<id>
  • Set 'workspace' in .twp.yml`, WorkspaceEnvVar)
	return &ConfigurationError{msg: msg}
}

func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "yaml") || strings.Contains(parseErrorStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solutions:
  • Check YAML syntax and indentation
  • Run 'twp init --force' to recreate the configuration`
	} else if strings.Contains(parseErrorStr, "permission denied") {
		msg += `

Cause: Permission denied reading configuration file
Solution: Check file permissions with 'ls -la .twp.yml'`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return &ConfigurationError{msg: msg, err: parseError}
}

func ConfigAlreadyExists(configPath string) error {
	msg := fmt.Sprintf(`configuration file already exists: %s

Options:
  • Edit the existing file manually
  • Use 'twp init --force' to overwrite`, configPath)
	return errors.New(msg)
}

// Invocation Errors
func SubcommandRequired() error {
	msg := `subcommand is required

Usage: twp run <subcommand> [args...]

Examples:
  • twp run pipelines list
  • twp run --json "runs view" -- -i 4Bi5xBK6a
  • twp run info`
	return errors.New(msg)
}

func AliasNotFound(name string, available []string) error {
	msg := fmt.Sprintf("alias '%s' not found", name)

	if len(available) > 0 {
		sorted := append([]string(nil), available...)
		sort.Strings(sorted)
		msg += "\n\nAvailable aliases:"
		for _, a := range sorted {
			msg += fmt.Sprintf("\n  • %s", a)
		}
	} else {
		msg += "\n\nNo aliases configured."
	}

	msg += "\n\nTip: Define aliases under 'aliases:' in .twp.yml"
	return errors.New(msg)
}

func AliasNameRequired() error {
	msg := `alias name is required

Usage: twp alias <name> [args...]

Tip: Run 'twp aliases' to see configured aliases`
	return errors.New(msg)
}
