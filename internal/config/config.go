package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caarlos0/go-shellwords"
	"go.yaml.in/yaml/v3"
)

// Config represents the twp configuration
type Config struct {
	Version    string           `yaml:"version"`
	Executable string           `yaml:"executable,omitempty"`
	Workspace  string           `yaml:"workspace,omitempty"`
	Defaults   Defaults         `yaml:"defaults,omitempty"`
	Aliases    map[string]Alias `yaml:"aliases,omitempty"`
}

// Defaults holds option values applied to every invocation unless overridden
type Defaults struct {
	ToJSON     bool   `yaml:"to_json,omitempty"`
	Config     string `yaml:"config,omitempty"`
	ParamsFile string `yaml:"params_file,omitempty"`
}

// Alias maps a short name to a subcommand with preset arguments
type Alias struct {
	Subcommand string `yaml:"subcommand"`
	Args       string `yaml:"args,omitempty"` // split with shell quoting rules
	ToJSON     *bool  `yaml:"to_json,omitempty"`
	Config     string `yaml:"config,omitempty"`
	ParamsFile string `yaml:"params_file,omitempty"`
}

const (
	ConfigFileName    = ".twp.yml"
	CurrentVersion    = "1.0"
	DefaultExecutable = "tw"
)

// LoadConfig loads configuration from .twp.yml in dir
func LoadConfig(dir string) (*Config, error) {
	return LoadConfigFile(filepath.Join(dir, ConfigFileName))
}

// LoadConfigFile loads configuration from configPath. A missing file
// yields the default configuration.
func LoadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := &Config{}
		config.ApplyDefaults()
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills in unset values
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Executable == "" {
		c.Executable = DefaultExecutable
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, name := range c.AliasNames() {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("alias name must not be empty")
		}
		alias := c.Aliases[name]
		if err := alias.Validate(); err != nil {
			return fmt.Errorf("invalid alias '%s': %w", name, err)
		}
	}

	return nil
}

// Validate validates a single alias
func (a *Alias) Validate() error {
	if strings.TrimSpace(a.Subcommand) == "" {
		return fmt.Errorf("alias requires 'subcommand' field")
	}
	if _, err := a.ParseArgs(); err != nil {
		return err
	}
	return nil
}

// ParseArgs splits Args into positional arguments honoring shell quoting
func (a *Alias) ParseArgs() ([]string, error) {
	if strings.TrimSpace(a.Args) == "" {
		return nil, nil
	}

	args, err := shellwords.Parse(a.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse args %q: %w", a.Args, err)
	}
	return args, nil
}

// AliasNames returns the configured alias names in sorted order
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasAliases returns true if the configuration defines any alias
func (c *Config) HasAliases() bool {
	return len(c.Aliases) > 0
}
