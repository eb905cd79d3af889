package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/twp-dev/twp/internal/command"
	"github.com/twp-dev/twp/internal/config"
	"github.com/twp-dev/twp/internal/errors"
	"github.com/twp-dev/twp/pkg/tower"
)

const (
	aliasHeader = "ALIAS"
	columnGap   = 2
	ellipsis    = "..."
)

// getTerminalWidth returns 0 when stdout is not a terminal
var getTerminalWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// aliasRunner resolves and runs aliases
type aliasRunner interface {
	invoker
	Lookup(alias string, extra ...string) (tower.Invocation, error)
}

// NewAliasCommand creates the alias command definition.
func NewAliasCommand() *cli.Command {
	return &cli.Command{
		Name:      "alias",
		Usage:     "Run an alias defined in .twp.yml",
		UsageText: "twp alias <name> [args...]",
		ArgsUsage: "<name> [args...]",
		Description: "Looks up <name> under 'aliases:' in .twp.yml and runs its subcommand. " +
			"Extra arguments are appended after the alias' own arguments.",
		ShellComplete: completeAliases,
		Action:        aliasCommand,
	}
}

// NewAliasesCommand creates the aliases command definition.
func NewAliasesCommand() *cli.Command {
	return &cli.Command{
		Name:   "aliases",
		Usage:  "List aliases defined in .twp.yml",
		Action: aliasesCommand,
	}
}

func aliasCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cmd, cfg)
	if err != nil {
		return err
	}

	return aliasCommandWithRunner(cmd, outputWriter(cmd), client)
}

func aliasCommandWithRunner(cmd *cli.Command, w io.Writer, runner aliasRunner) error {
	args := cmd.Args().Slice()
	if len(args) == 0 || args[0] == "" {
		return errors.AliasNameRequired()
	}

	inv, err := runner.Lookup(args[0], args[1:]...)
	if err != nil {
		return err
	}

	result, err := runner.Run(inv)
	if err != nil {
		return err
	}

	return printResult(w, result)
}

func aliasesCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return listAliases(outputWriter(cmd), cfg, getTerminalWidth())
}

// listAliases prints every alias with the command line it expands to.
// Command lines are cut to fit maxWidth columns; 0 means no limit.
func listAliases(w io.Writer, cfg *config.Config, maxWidth int) error {
	if !cfg.HasAliases() {
		_, err := fmt.Fprintln(w, "No aliases configured. Define them under 'aliases:' in .twp.yml.")
		return err
	}

	aliases, err := towerAliases(cfg)
	if err != nil {
		return err
	}

	nameWidth := len(aliasHeader)
	for _, name := range cfg.AliasNames() {
		nameWidth = max(nameWidth, utf8.RuneCountInString(name))
	}

	tw := tabwriter.NewWriter(w, 0, 0, columnGap, ' ', 0)
	fmt.Fprintln(tw, aliasHeader+"\tCOMMAND")
	for _, name := range cfg.AliasNames() {
		alias := aliases[name]
		line := command.Render(command.TowerCommand(cfg.Executable, alias.Subcommand, alias.Args, command.TowerOptions{
			JSON:       alias.Options.ToJSON,
			Config:     alias.Options.Config,
			ParamsFile: alias.Options.ParamsFile,
		}))
		if maxWidth > 0 {
			line = truncateCommand(line, maxWidth-nameWidth-columnGap)
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, line)
	}
	return tw.Flush()
}

// truncateCommand keeps the start of line, which names the subcommand.
// Widths are terminal columns; cuts fall on rune boundaries.
func truncateCommand(line string, maxWidth int) string {
	if maxWidth <= len(ellipsis) {
		return line
	}
	return runewidth.Truncate(line, maxWidth, ellipsis)
}

// completeAliases prints alias names for shell completion
func completeAliases(_ context.Context, cmd *cli.Command) {
	if cmd.NArg() > 0 {
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return
	}

	w := outputWriter(cmd)
	for _, name := range cfg.AliasNames() {
		fmt.Fprintln(w, name)
	}
}
