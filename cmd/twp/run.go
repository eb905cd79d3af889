package main

import (
	"context"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/twp-dev/twp/internal/config"
	"github.com/twp-dev/twp/internal/errors"
	"github.com/twp-dev/twp/pkg/tower"
)

const (
	flagJSON       = "json"
	flagConfig     = "config"
	flagParamsFile = "params-file"
)

// NewRunCommand creates the run command definition.
func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run a tw subcommand",
		UsageText: "twp run [--json] [--config PATH] [--params-file PATH] <subcommand> [args...]\n" +
			"   twp run \"<subcommand words>\" -- [tw flags and args...]",
		Description: "Underscores in the subcommand become hyphens (list_pipelines -> list-pipelines). " +
			"Quote a multi-word subcommand as one argument. " +
			"Arguments after '--' are not parsed as twp flags. " +
			"The exit code of tw becomes the exit code of twp.",
		ArgsUsage: "<subcommand> [args...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagJSON,
				Usage: "Request JSON output (-o json)",
			},
			&cli.StringFlag{
				Name:  flagConfig,
				Usage: "Append --config=<path>",
			},
			&cli.StringFlag{
				Name:  flagParamsFile,
				Usage: "Append --params-file=<path>",
			},
		},
		Action: runCommand,
	}
}

func runCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cmd, cfg)
	if err != nil {
		return err
	}

	return runCommandWithInvoker(cmd, outputWriter(cmd), cfg, client)
}

func runCommandWithInvoker(cmd *cli.Command, w io.Writer, cfg *config.Config, inv invoker) error {
	subcommand, args, err := parseRunInput(cmd.Args().Slice())
	if err != nil {
		return err
	}

	result, err := inv.Run(tower.Invocation{
		Subcommand: subcommand,
		Args:       args,
		Options:    runOptions(cmd, cfg.Defaults),
	})
	if err != nil {
		return err
	}

	return printResult(w, result)
}

// parseRunInput takes the first argument as the subcommand. A multi-word
// subcommand is passed quoted as one argument ("compute_envs list").
func parseRunInput(args []string) (string, []string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", nil, errors.SubcommandRequired()
	}

	return args[0], args[1:], nil
}

// runOptions combines flags with the defaults from .twp.yml
func runOptions(cmd *cli.Command, defaults config.Defaults) tower.Options {
	opts := tower.Options{
		ToJSON:     defaults.ToJSON,
		Config:     defaults.Config,
		ParamsFile: defaults.ParamsFile,
	}
	if cmd.IsSet(flagJSON) {
		opts.ToJSON = cmd.Bool(flagJSON)
	}
	if path := cmd.String(flagConfig); path != "" {
		opts.Config = path
	}
	if path := cmd.String(flagParamsFile); path != "" {
		opts.ParamsFile = path
	}
	return opts
}
