// The cmd/ package holds CLI integration tests that exercise the full
// stack: command parsing, extensions, the read service and a real index.
// Each test builds a workspace in a temp dir with a fixture index and runs
// the compiled binary against it.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpl-au/faqd/internal/index/indextest"
	"github.com/jpl-au/faqd/internal/repo"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the faqd binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "faqd-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "faqd"
		if os.PathSeparator == '\\' {
			binaryName = "faqd.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newBareEnv creates a temp project dir and home with no workspace.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// newTestEnv creates a workspace with the fixture documents in the default
// bleve index.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newBareEnv(t)
	env.run("init")
	indextest.WriteBleve(t, env.faqdPath(repo.BleveFile), indextest.Docs())
	return env
}

// faqdPath joins name onto the workspace's .faqd directory.
func (e *testEnv) faqdPath(name string) string {
	return filepath.Join(e.dir, repo.Dir, name)
}

// run executes faqd with the given args and returns its output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("faqd %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes faqd and returns output and any error. HOME points at a
// temp dir so global config and the audit log stay out of the real one.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(cleanEnv(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// cleanEnv drops faqd's own variables from the inherited environment.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "FAQD_") || strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, "USERPROFILE=") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks that output lacks a string.
func (e *testEnv) notContains(output, unexpected string) {
	e.t.Helper()
	assert.NotContains(e.t, output, unexpected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
