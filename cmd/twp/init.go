package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/twp-dev/twp/internal/errors"
)

const configFileMode = 0o600

const configTemplate = `# Tower Plus Configuration
version: "1.0"

# Seqera Platform CLI binary (name in PATH or absolute path)
executable: tw

# Workspace passed to tw as TOWER_WORKSPACE_ID.
# Leave empty to use --workspace or the TOWER_WORKSPACE_ID environment variable.
# workspace: "1234567890"

# Options applied to every invocation unless overridden
defaults:
  to_json: false
  # config: /path/to/nextflow.config
  # params_file: params.yml

# Named subcommands: twp alias <name> [args...]
aliases:
  pipelines:
    subcommand: pipelines list
  runs:
    subcommand: runs list
    to_json: true

  # Example: launch a pipeline with preset arguments
  # hello:
  #   subcommand: launch
  #   args: "nextflow-io/hello --name 'hello world'"
  #   params_file: params.yml
`

// NewInitCommand creates the init command definition
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration file",
		Description: "Creates a .twp.yml configuration file in the current directory " +
			"with example defaults and aliases.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: initCommand,
	}
}

func initCommand(_ context.Context, cmd *cli.Command) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return errors.ConfigAlreadyExists(path)
	}

	if err := os.WriteFile(path, []byte(configTemplate), configFileMode); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	w := outputWriter(cmd)
	fmt.Fprintf(w, "Configuration file created: %s\n", path)
	fmt.Fprintln(w, "Edit this file to set your workspace and aliases.")
	return nil
}
