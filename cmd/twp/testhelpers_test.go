package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/twp-dev/twp/internal/config"
	"github.com/twp-dev/twp/internal/testutil"
	"github.com/twp-dev/twp/pkg/tower"
)

// mockInvoker records invocations and returns canned results
type mockInvoker struct {
	invocations []tower.Invocation
	result      tower.Result
	err         error
	aliases     map[string]tower.Alias
}

func (m *mockInvoker) Run(inv tower.Invocation) (tower.Result, error) {
	m.invocations = append(m.invocations, inv)
	return m.result, m.err
}

func (m *mockInvoker) Lookup(alias string, extra ...string) (tower.Invocation, error) {
	a, ok := m.aliases[alias]
	if !ok {
		return tower.Invocation{}, os.ErrNotExist
	}
	return tower.Invocation{
		Subcommand: a.Subcommand,
		Args:       append(append([]string(nil), a.Args...), extra...),
		Options:    a.Options,
	}, nil
}

// appHarness runs the real app inside an isolated directory and environment
type appHarness struct {
	dir    string
	env    map[string]string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newAppHarness(t *testing.T) *appHarness {
	t.Helper()

	h := &appHarness{
		dir: t.TempDir(),
		env: map[string]string{},
	}

	prevGetwd, prevLookupEnv, prevWidth := osGetwd, osLookupEnv, getTerminalWidth
	t.Cleanup(func() {
		osGetwd = prevGetwd
		osLookupEnv = prevLookupEnv
		getTerminalWidth = prevWidth
	})

	getTerminalWidth = func() int { return 0 }

	osGetwd = func() (string, error) { return h.dir, nil }
	osLookupEnv = func(key string) (string, bool) {
		v, ok := h.env[key]
		return v, ok
	}

	return h
}

func (h *appHarness) run(args ...string) error {
	app := newApp()
	app.Writer = &h.stdout
	app.ErrWriter = &h.stderr
	return app.Run(context.Background(), append([]string{"twp"}, args...))
}

func (h *appHarness) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, config.ConfigFileName), []byte(content), 0o600))
}

// writeScript creates an executable fake tw and returns its path
func (h *appHarness) writeScript(t *testing.T, body string) string {
	t.Helper()
	return testutil.WriteFakeExecutable(t, h.dir, "fake-tw", body)
}
