package main

import "github.com/urfave/cli/v3"

const (
	flagFile       = "file"
	flagWorkspace  = "workspace"
	flagExecutable = "executable"
	flagQuiet      = "quiet"
	flagVerbose    = "verbose"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "twp",
		Usage: "Run Seqera Platform CLI commands with project defaults",
		Description: "twp (Tower Plus) forwards subcommands to the tw executable, " +
			"resolving the workspace, shared options and named aliases from .twp.yml.",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFile,
				Aliases: []string{"f"},
				Usage:   "Path to the configuration file (default: ./.twp.yml)",
			},
			&cli.StringFlag{
				Name:    flagWorkspace,
				Aliases: []string{"w"},
				Usage:   "Workspace identifier (overrides .twp.yml and $TOWER_WORKSPACE_ID)",
			},
			&cli.StringFlag{
				Name:  flagExecutable,
				Usage: "tw executable name or path (overrides .twp.yml)",
			},
			&cli.BoolFlag{
				Name:    flagQuiet,
				Aliases: []string{"q"},
				Usage:   "Do not print the command line before running it",
			},
			&cli.BoolFlag{
				Name:  flagVerbose,
				Usage: "Write debug logs to stderr",
			},
		},
		Commands: []*cli.Command{
			NewRunCommand(),
			NewAliasCommand(),
			NewAliasesCommand(),
			NewWorkspaceCommand(),
			NewInitCommand(),
		},
	}
}
