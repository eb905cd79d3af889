package framework

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/twp-dev/twp/internal/testutil"
)

const (
	dirPerm  = 0755
	filePerm = 0600
)

// TestEnvironment owns a built twp binary and an isolated temp directory
type TestEnvironment struct {
	t         *testing.T
	tmpDir    string
	twpBinary string
}

func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:      t,
		tmpDir: t.TempDir(),
	}

	env.buildTWP()

	return env
}

func (e *TestEnvironment) buildTWP() {
	e.t.Helper()

	twpBinary := filepath.Join(e.tmpDir, "twp")
	if prebuilt := os.Getenv("TWP_E2E_BINARY"); prebuilt != "" {
		twpBinary = prebuilt
		if _, err := os.Stat(twpBinary); err != nil {
			e.t.Fatalf("Specified TWP binary not found: %s", twpBinary)
		}
	} else {
		cmd := exec.Command("go", "build", "-o", twpBinary, "./cmd/twp")
		cmd.Dir = e.findProjectRoot()
		if output, err := cmd.CombinedOutput(); err != nil {
			e.t.Fatalf("Failed to build twp binary: %v\nOutput: %s", err, output)
		}
	}

	absPath, err := filepath.Abs(filepath.Clean(twpBinary))
	if err != nil {
		e.t.Fatalf("Failed to get absolute path for binary: %v", err)
	}
	e.twpBinary = absPath
}

func (e *TestEnvironment) findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			e.t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}

// CreateProject creates an empty project directory under the temp dir
func (e *TestEnvironment) CreateProject(name string) *Project {
	e.t.Helper()

	dir := filepath.Join(e.tmpDir, name)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory: %v", err)
	}

	return &Project{
		env:  e,
		path: dir,
		vars: map[string]string{},
	}
}

// Project is a working directory in which twp is run
type Project struct {
	env  *TestEnvironment
	path string
	vars map[string]string
}

// Result holds the streams and exit code of one twp run
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (p *Project) Path() string {
	return p.path
}

// SetEnv sets an environment variable for subsequent runs
func (p *Project) SetEnv(key, value string) {
	p.vars[key] = value
}

// WriteConfig writes .twp.yml into the project
func (p *Project) WriteConfig(content string) {
	p.env.t.Helper()

	if err := os.WriteFile(filepath.Join(p.path, ".twp.yml"), []byte(content), filePerm); err != nil {
		p.env.t.Fatalf("Failed to write config: %v", err)
	}
}

// WriteFakeTW creates an executable fake tw in the project and returns its path
func (p *Project) WriteFakeTW(body string) string {
	p.env.t.Helper()
	return testutil.WriteFakeExecutable(p.env.t, p.path, "tw", body)
}

func (p *Project) HasFile(path string) bool {
	_, err := os.Stat(filepath.Join(p.path, path))
	return err == nil
}

// RunTWP runs the twp binary in the project directory. The environment is
// reduced to PATH and HOME plus variables set with SetEnv.
func (p *Project) RunTWP(args ...string) Result {
	p.env.t.Helper()

	cmd := exec.Command(p.env.twpBinary, args...)
	cmd.Dir = p.path
	cmd.Env = []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + p.env.tmpDir,
	}
	for key, value := range p.vars {
		cmd.Env = append(cmd.Env, key+"="+value)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			p.env.t.Fatalf("Failed to run twp: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
