package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewWorkspaceCommand creates the workspace command definition
func NewWorkspaceCommand() *cli.Command {
	return &cli.Command{
		Name:   "workspace",
		Usage:  "Show the resolved workspace and where it comes from",
		Action: workspaceCommand,
	}
}

func workspaceCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	workspace, source, err := resolveWorkspace(cmd, cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(outputWriter(cmd), "%s (from %s)\n", workspace, source)
	return err
}
