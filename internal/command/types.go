package command

// Command represents an external command to be executed
type Command struct {
	Name string   // Executable name (e.g., "tw")
	Args []string // Arguments in the order they are passed to the process
	Env  []string // Extra KEY=VALUE pairs appended to the inherited environment
}

// Tokens returns the full argument vector including the executable name
func (c Command) Tokens() []string {
	tokens := make([]string, 0, len(c.Args)+1)
	tokens = append(tokens, c.Name)
	return append(tokens, c.Args...)
}

// Result represents the result of a single command execution.
// A non-zero ExitCode is reported but is not an Error.
type Result struct {
	Command  Command
	Output   string
	ExitCode int
	Error    error
}

// ExecutionResult represents the result of executing multiple commands
type ExecutionResult struct {
	Results []Result
}

// ShellExecutor abstracts the actual process execution
type ShellExecutor interface {
	Execute(cmd Command) (output string, exitCode int, err error)
}

// Executor defines how commands are executed
type Executor interface {
	Execute(commands []Command) (*ExecutionResult, error)
}
