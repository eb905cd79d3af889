package command

import (
	"strings"

	"github.com/alessio/shellescape"
)

// DefaultExecutable is the Seqera Platform CLI binary name
const DefaultExecutable = "tw"

// TowerOptions represents the recognized options of a tw invocation
type TowerOptions struct {
	JSON       bool
	Config     string
	ParamsFile string
}

// NormalizeSubcommand maps a caller-friendly identifier such as
// "list_pipelines" to the dash-separated form tw expects.
func NormalizeSubcommand(subcommand string) string {
	return strings.ReplaceAll(strings.TrimSpace(subcommand), "_", "-")
}

// TowerCommand builds a tw command.
// Token order: [-o json] <subcommand words...> <args...> [--config=] [--params-file=]
func TowerCommand(executable, subcommand string, args []string, opts TowerOptions) Command {
	if executable == "" {
		executable = DefaultExecutable
	}

	words := strings.Fields(NormalizeSubcommand(subcommand))
	cmdArgs := make([]string, 0, len(words)+len(args)+4)

	if opts.JSON {
		cmdArgs = append(cmdArgs, "-o", "json")
	}

	cmdArgs = append(cmdArgs, words...)
	cmdArgs = append(cmdArgs, args...)

	if opts.Config != "" {
		cmdArgs = append(cmdArgs, "--config="+opts.Config)
	}
	if opts.ParamsFile != "" {
		cmdArgs = append(cmdArgs, "--params-file="+opts.ParamsFile)
	}

	return Command{
		Name: executable,
		Args: cmdArgs,
	}
}

// Render returns the command line with every token shell-escaped and
// joined by single spaces. It is used for the trace line only; execution
// passes the token vector to the process directly.
func Render(cmd Command) string {
	return shellescape.QuoteCommand(cmd.Tokens())
}
