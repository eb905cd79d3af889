// Package testutil provides helpers shared across tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

const scriptPermissions = 0o755

// WriteFakeExecutable writes a POSIX shell script named name into dir and
// returns its absolute path. body is placed after the shebang line.
func WriteFakeExecutable(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(content), scriptPermissions); err != nil {
		t.Fatalf("failed to write fake executable %s: %v", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", path, err)
	}
	return abs
}

// EchoArgsScript prints every argument on its own line wrapped in brackets,
// followed by the workspace the child received.
const EchoArgsScript = `for a in "$@"; do echo "[$a]"; done
echo "workspace=$TOWER_WORKSPACE_ID"`
