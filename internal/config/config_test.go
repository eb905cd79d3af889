package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfig_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()

	config, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.Version != CurrentVersion {
		t.Errorf("Expected version %s, got %s", CurrentVersion, config.Version)
	}

	if config.Executable != DefaultExecutable {
		t.Errorf("Expected default executable '%s', got %s", DefaultExecutable, config.Executable)
	}

	if config.HasAliases() {
		t.Errorf("Expected no aliases, got %v", config.Aliases)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	configContent := `version: "1.0"
executable: /opt/seqera/tw
workspace: "1234567890"
defaults:
  to_json: true
  config: /etc/tw.yaml
aliases:
  pipelines:
    subcommand: pipelines list
  hello:
    subcommand: launch
    args: "nextflow-io/hello --name 'hello world'"
    params_file: params.yml
    to_json: false
`

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.Executable != "/opt/seqera/tw" {
		t.Errorf("Expected executable '/opt/seqera/tw', got %s", config.Executable)
	}

	if config.Workspace != "1234567890" {
		t.Errorf("Expected workspace '1234567890', got %s", config.Workspace)
	}

	if !config.Defaults.ToJSON || config.Defaults.Config != "/etc/tw.yaml" {
		t.Errorf("Unexpected defaults: %+v", config.Defaults)
	}

	if got := config.AliasNames(); !reflect.DeepEqual(got, []string{"hello", "pipelines"}) {
		t.Errorf("Expected sorted alias names, got %v", got)
	}

	hello := config.Aliases["hello"]
	if hello.ToJSON == nil || *hello.ToJSON {
		t.Errorf("Expected hello.to_json to be explicitly false")
	}

	args, err := hello.ParseArgs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(args, []string{"nextflow-io/hello", "--name", "hello world"}) {
		t.Errorf("Unexpected args: %q", args)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	invalidContent := `version: "1.0"
aliases: [unclosed
`

	err := os.WriteFile(configPath, []byte(invalidContent), 0644)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = LoadConfig(tempDir)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}

	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadConfig_InvalidAlias(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	content := `aliases:
  broken:
    args: "x"
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadConfig(tempDir)
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "invalid alias 'broken'") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadConfigFile_CustomPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.yml")

	if err := os.WriteFile(configPath, []byte("workspace: ws\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := LoadConfigFile(configPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.Workspace != "ws" {
		t.Errorf("Expected workspace 'ws', got %s", config.Workspace)
	}
	if config.Version != CurrentVersion {
		t.Errorf("Expected default version, got %s", config.Version)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{
			name:        "empty config",
			config:      &Config{},
			expectError: false,
		},
		{
			name: "valid alias",
			config: &Config{
				Aliases: map[string]Alias{
					"hello": {Subcommand: "launch", Args: "nextflow-io/hello"},
				},
			},
			expectError: false,
		},
		{
			name: "blank alias name",
			config: &Config{
				Aliases: map[string]Alias{
					"  ": {Subcommand: "info"},
				},
			},
			expectError: true,
		},
		{
			name: "missing subcommand",
			config: &Config{
				Aliases: map[string]Alias{
					"nothing": {Args: "x"},
				},
			},
			expectError: true,
		},
		{
			name: "unterminated quote in args",
			config: &Config{
				Aliases: map[string]Alias{
					"broken": {Subcommand: "launch", Args: "'hello"},
				},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.ApplyDefaults()
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}

			if tt.config.Version == "" {
				t.Error("Version should be set to default")
			}
			if tt.config.Executable == "" {
				t.Error("Executable should be set to default")
			}
		})
	}
}

func TestAliasParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{name: "empty", args: "", want: nil},
		{name: "blank", args: "   ", want: nil},
		{name: "simple", args: "a b c", want: []string{"a", "b", "c"}},
		{name: "double quotes", args: `--name "my run"`, want: []string{"--name", "my run"}},
		{name: "escaped space", args: `my\ run`, want: []string{"my run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias := Alias{Subcommand: "launch", Args: tt.args}
			got, err := alias.ParseArgs()
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
