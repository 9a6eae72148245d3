//go:build integration

// Package integration provides end-to-end tests that exercise the compiled
// vroom binary. Tests in this package are excluded from normal `go test ./...`
// runs and require the build tag: go test -tags integration ./internal/integration/
//
// TestMain builds the vroom binary once into a temporary directory and makes
// it available via vroomBin for all tests. Each test creates an isolated
// vroomEnv with its own HOME, config and fake package manager.
package integration

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// vroomBin holds the path to the compiled vroom binary, set once in TestMain.
var vroomBin string

// TestMain builds the vroom binary and runs all integration tests.
func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "vroom-integration-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration: create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmp)

	bin := filepath.Join(tmp, "vroom")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/vroom")
	cmd.Dir = modRoot()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "integration: build vroom binary: %v\n", err)
		os.Exit(1)
	}

	vroomBin = bin
	os.Exit(m.Run())
}

// modRoot returns the module root directory by walking up from the package
// directory until go.mod is found.
func modRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("integration: getwd: %v", err))
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("integration: could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

// vroomEnv is an isolated environment for running vroom. Its HOME sandboxes
// ~/.vroom and its bin directory, first on PATH, holds the fake package
// managers written by fakeTool.
type vroomEnv struct {
	t       *testing.T
	home    string
	bin     string
	cfgPath string
	extra   []string
}

func newEnv(t *testing.T) *vroomEnv {
	t.Helper()
	home := t.TempDir()
	dir := filepath.Join(home, ".vroom")
	require.NoError(t, os.MkdirAll(dir, 0o755), "create .vroom dir")
	bin := filepath.Join(home, "bin")
	require.NoError(t, os.MkdirAll(bin, 0o755), "create bin dir")
	return &vroomEnv{
		t:       t,
		home:    home,
		bin:     bin,
		cfgPath: filepath.Join(dir, "config.toml"),
	}
}

// fakeTool writes a shell script named name that prints each argument in
// brackets and exits with code.
func (e *vroomEnv) fakeTool(name string, code int) {
	e.t.Helper()
	script := fmt.Sprintf("#!/bin/sh\nfor a in \"$@\"; do printf '[%%s]\\n' \"$a\"; done\nexit %d\n", code)
	require.NoError(e.t, os.WriteFile(filepath.Join(e.bin, name), []byte(script), 0o755), "write %s", name)
}

// writeConfig writes ~/.vroom/config.toml.
func (e *vroomEnv) writeConfig(content string) {
	e.t.Helper()
	require.NoError(e.t, os.WriteFile(e.cfgPath, []byte(content), 0o644), "write config")
}

// setenv adds an environment variable for subsequent runs.
func (e *vroomEnv) setenv(key, value string) {
	e.extra = append(e.extra, key+"="+value)
}

// run executes `vroom <args>` and returns stdout, stderr and the exit code.
func (e *vroomEnv) run(args ...string) (stdout, stderr string, code int) {
	e.t.Helper()
	cmd := exec.Command(vroomBin, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"PATH="+e.bin+string(os.PathListSeparator)+os.Getenv("PATH"),
		"VROOM_CONFIG=",
		"VROOM_PACKAGE_MANAGER=",
		"VROOM_ANIMATION=",
		"VROOM_DEBUG=",
	)
	cmd.Env = append(cmd.Env, e.extra...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		require.NoError(e.t, err, "run vroom %v", args)
	}
	return outBuf.String(), errBuf.String(), code
}

// afterAnimation strips everything up to and including the final erase so
// only the package manager's output remains.
func afterAnimation(stdout string) string {
	if i := strings.LastIndex(stdout, "\x1b[5A"); i >= 0 {
		return stdout[i+len("\x1b[5A"):]
	}
	return stdout
}
