package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/twp-dev/twp/internal/config"
	"github.com/twp-dev/twp/internal/errors"
	"github.com/twp-dev/twp/pkg/tower"
)

// Variables to allow mocking in tests
var (
	osGetwd     = os.Getwd
	osLookupEnv = os.LookupEnv
)

// Workspace sources reported by 'twp workspace'
const (
	sourceFlag   = "--workspace flag"
	sourceConfig = config.ConfigFileName
	sourceEnv    = "$" + tower.WorkspaceEnvVar
)

// configPath returns the configuration file selected by --file
func configPath(cmd *cli.Command) (string, error) {
	if path := cmd.Root().String(flagFile); path != "" {
		return path, nil
	}

	cwd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, config.ConfigFileName), nil
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if executable := cmd.Root().String(flagExecutable); executable != "" {
		cfg.Executable = executable
	}
	return cfg, nil
}

// resolveWorkspace applies flag > config file > environment
func resolveWorkspace(cmd *cli.Command, cfg *config.Config) (workspace, source string, err error) {
	if ws := strings.TrimSpace(cmd.Root().String(flagWorkspace)); ws != "" {
		return ws, sourceFlag, nil
	}
	if ws := strings.TrimSpace(cfg.Workspace); ws != "" {
		return ws, sourceConfig, nil
	}

	ws, err := tower.ResolveWorkspace("", osLookupEnv)
	if err != nil {
		return "", "", err
	}
	return ws, sourceEnv, nil
}

func outputWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errorWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func newLogger(cmd *cli.Command) *slog.Logger {
	if !cmd.Root().Bool(flagVerbose) {
		return nil
	}
	return slog.New(slog.NewTextHandler(errorWriter(cmd), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newClient builds a tower client from flags and the configuration file
func newClient(cmd *cli.Command, cfg *config.Config) (*tower.Client, error) {
	workspace, _, err := resolveWorkspace(cmd, cfg)
	if err != nil {
		return nil, err
	}

	aliases, err := towerAliases(cfg)
	if err != nil {
		return nil, err
	}

	trace := errorWriter(cmd)
	if cmd.Root().Bool(flagQuiet) {
		trace = io.Discard
	}

	return tower.New(tower.Config{
		Workspace:  workspace,
		Executable: cfg.Executable,
		Aliases:    aliases,
		Trace:      trace,
		Logger:     newLogger(cmd),
	})
}

// towerAliases converts configured aliases, applying file-level defaults
func towerAliases(cfg *config.Config) (map[string]tower.Alias, error) {
	aliases := make(map[string]tower.Alias, len(cfg.Aliases))
	for _, name := range cfg.AliasNames() {
		alias := cfg.Aliases[name]
		args, err := alias.ParseArgs()
		if err != nil {
			return nil, err
		}
		aliases[name] = tower.Alias{
			Subcommand: alias.Subcommand,
			Args:       args,
			Options:    aliasOptions(cfg.Defaults, alias),
		}
	}
	return aliases, nil
}

func aliasOptions(defaults config.Defaults, alias config.Alias) tower.Options {
	opts := tower.Options{
		ToJSON:     defaults.ToJSON,
		Config:     defaults.Config,
		ParamsFile: defaults.ParamsFile,
	}
	if alias.ToJSON != nil {
		opts.ToJSON = *alias.ToJSON
	}
	if alias.Config != "" {
		opts.Config = alias.Config
	}
	if alias.ParamsFile != "" {
		opts.ParamsFile = alias.ParamsFile
	}
	return opts
}

// invoker is the part of tower.Client the actions need
type invoker interface {
	Run(inv tower.Invocation) (tower.Result, error)
}

// printResult writes the captured output and maps the exit code
func printResult(w io.Writer, result tower.Result) error {
	if result.Output != "" {
		if _, err := io.WriteString(w, result.Output+"\n"); err != nil {
			return err
		}
	}
	return exitStatus(result.ExitCode)
}
