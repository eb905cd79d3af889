package tower

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/twp-dev/twp/internal/command"
	"github.com/twp-dev/twp/internal/errors"
)

// WorkspaceEnvVar is read by ResolveWorkspace and set for every child process.
const WorkspaceEnvVar = errors.WorkspaceEnvVar

// Error types returned by this package.
type (
	ConfigurationError = errors.ConfigurationError
	LaunchError        = errors.LaunchError
	DecodeError        = errors.DecodeError
)

// Config holds everything a Client needs. Nothing is read from the
// process environment implicitly; use ResolveWorkspace for that.
type Config struct {
	Workspace  string
	Executable string // defaults to "tw"
	Aliases    map[string]Alias
	Trace      io.Writer // receives the rendered command line; defaults to os.Stderr
	Logger     *slog.Logger
}

// Alias is a named subcommand request used by Client.Dispatch.
type Alias struct {
	Subcommand string
	Args       []string
	Options    Options
}

// Invocation describes one execution of the executable.
type Invocation struct {
	Subcommand string
	Args       []string
	Options    Options
	Workspace  string // empty means the client's workspace
}

// Result is the captured output of a completed invocation.
type Result struct {
	Output   string
	ExitCode int
}

// Client forwards subcommands to the executable. It holds no mutable state.
type Client struct {
	workspace  string
	executable string
	aliases    map[string]Alias
	executor   command.Executor
	logger     *slog.Logger
}

// ResolveWorkspace returns explicit when set, otherwise the value of
// WorkspaceEnvVar from lookupEnv. It fails with a *ConfigurationError when
// neither is available.
func ResolveWorkspace(explicit string, lookupEnv func(string) (string, bool)) (string, error) {
	if ws := strings.TrimSpace(explicit); ws != "" {
		return ws, nil
	}

	if lookupEnv != nil {
		if ws, ok := lookupEnv(WorkspaceEnvVar); ok && strings.TrimSpace(ws) != "" {
			return strings.TrimSpace(ws), nil
		}
	}

	return "", errors.WorkspaceRequired()
}

// New creates a Client. It fails with a *ConfigurationError when
// cfg.Workspace is empty.
func New(cfg Config) (*Client, error) {
	return newClient(cfg, command.NewRealShellExecutor())
}

func newClient(cfg Config, shell command.ShellExecutor) (*Client, error) {
	if strings.TrimSpace(cfg.Workspace) == "" {
		return nil, errors.WorkspaceRequired()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	trace := cfg.Trace
	if trace == nil {
		trace = os.Stderr
	}

	executable := cfg.Executable
	if executable == "" {
		executable = command.DefaultExecutable
	}

	aliases := make(map[string]Alias, len(cfg.Aliases))
	for name, alias := range cfg.Aliases {
		aliases[name] = alias
	}

	return &Client{
		workspace:  strings.TrimSpace(cfg.Workspace),
		executable: executable,
		aliases:    aliases,
		executor:   command.NewExecutor(shell, command.WithTrace(trace), command.WithLogger(logger)),
		logger:     logger,
	}, nil
}

// Workspace returns the workspace passed to every child process
func (c *Client) Workspace() string {
	return c.workspace
}

// Executable returns the executable name or path
func (c *Client) Executable() string {
	return c.executable
}

// Invoke runs subcommand with args and returns its trimmed standard output.
// Underscores in subcommand become hyphens.
func (c *Client) Invoke(subcommand string, args []string, opts Options) (string, error) {
	result, err := c.Run(Invocation{
		Subcommand: subcommand,
		Args:       args,
		Options:    opts,
	})
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// Run executes inv and returns its output together with the exit code.
func (c *Client) Run(inv Invocation) (Result, error) {
	if strings.TrimSpace(inv.Subcommand) == "" {
		return Result{}, errors.SubcommandRequired()
	}

	cmd := c.build(inv)
	execResult, err := c.executor.Execute([]command.Command{cmd})
	if err != nil {
		return Result{}, err
	}

	r := execResult.Results[0]
	if r.Error != nil {
		return Result{ExitCode: r.ExitCode}, r.Error
	}

	return Result{Output: r.Output, ExitCode: r.ExitCode}, nil
}

func (c *Client) build(inv Invocation) command.Command {
	cmd := command.TowerCommand(c.executable, inv.Subcommand, inv.Args, inv.Options.towerOptions())

	workspace := inv.Workspace
	if workspace == "" {
		workspace = c.workspace
	}
	cmd.Env = []string{WorkspaceEnvVar + "=" + workspace}

	return cmd
}

// Tokens returns the argument vector for inv, executable first.
func (c *Client) Tokens(inv Invocation) []string {
	return c.build(inv).Tokens()
}

// Render returns the shell-escaped command line for inv.
func (c *Client) Render(inv Invocation) string {
	return command.Render(c.build(inv))
}

// Aliases returns the configured alias names in sorted order
func (c *Client) Aliases() []string {
	names := make([]string, 0, len(c.aliases))
	for name := range c.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves an alias into an Invocation. extra arguments are
// appended after the alias' own arguments.
func (c *Client) Lookup(alias string, extra ...string) (Invocation, error) {
	a, ok := c.aliases[alias]
	if !ok {
		return Invocation{}, errors.AliasNotFound(alias, c.Aliases())
	}

	args := make([]string, 0, len(a.Args)+len(extra))
	args = append(args, a.Args...)
	args = append(args, extra...)

	return Invocation{
		Subcommand: a.Subcommand,
		Args:       args,
		Options:    a.Options,
	}, nil
}

// Dispatch runs the alias registered under name.
func (c *Client) Dispatch(name string, extra ...string) (string, error) {
	inv, err := c.Lookup(name, extra...)
	if err != nil {
		return "", err
	}

	c.logger.Debug("dispatching alias", slog.String("alias", name), slog.String("subcommand", inv.Subcommand))

	result, err := c.Run(inv)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}
