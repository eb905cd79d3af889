package command

import (
	"io"
	"log/slog"

	twpio "github.com/twp-dev/twp/internal/io"
)

// executor implements Executor interface
type executor struct {
	shell  ShellExecutor
	trace  *twpio.TraceWriter
	logger *slog.Logger
}

// ExecutorOption configures an executor
type ExecutorOption func(*executor)

// WithTrace writes the rendered command line of every command to w
// before it is executed. A nil writer disables the trace.
func WithTrace(w io.Writer) ExecutorOption {
	return func(e *executor) {
		if w == nil {
			e.trace = nil
			return
		}
		e.trace = twpio.NewTraceWriter(w)
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExecutor creates a new command executor with the given shell executor
func NewExecutor(shell ShellExecutor, opts ...ExecutorOption) Executor {
	e := &executor{
		shell:  shell,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewRealExecutor creates an executor that runs real processes
func NewRealExecutor(opts ...ExecutorOption) Executor {
	return NewExecutor(NewRealShellExecutor(), opts...)
}

// Execute executes the given commands in sequence and returns the results.
// Per-command failures are recorded in each Result, never returned.
func (e *executor) Execute(commands []Command) (*ExecutionResult, error) {
	result := &ExecutionResult{
		Results: make([]Result, 0, len(commands)),
	}

	for _, cmd := range commands {
		line := Render(cmd)
		e.logger.Debug("executing command", slog.String("command", line))
		if e.trace != nil {
			if err := e.trace.WriteLine(line); err != nil {
				e.logger.Warn("failed to write trace line", slog.Any("error", err))
			}
		}

		output, exitCode, err := e.shell.Execute(cmd)
		if err != nil {
			e.logger.Error("command failed to run", slog.String("command", line), slog.Any("error", err))
		} else if exitCode != 0 {
			e.logger.Debug("command exited with non-zero status",
				slog.String("command", line), slog.Int("exit_code", exitCode))
		}

		result.Results = append(result.Results, Result{
			Command:  cmd,
			Output:   output,
			ExitCode: exitCode,
			Error:    err,
		})
	}

	return result, nil
}
