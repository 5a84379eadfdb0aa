package main

// NOTE: Tests in this package mutate package-level collaborators (newRunner,
// httpClient, releaseHost, isInteractive, useColor, confirmPublish).
// Do not use t.Parallel(). Each test restores them via t.Cleanup().

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/termapps/publisher/internal/command"
	"github.com/termapps/publisher/internal/testutil"
)

const testDigest = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

const testConfig = `
name = "foo"
description = "Foo does things"
homepage = "https://foo.dev"
license = "MIT"
repository = "termapps/foo"
exclude = ["debian"]

[homebrew]
repository = "termapps/homebrew-tap"

[scoop]
repository = "termapps/scoop-bucket"
`

type cliHarness struct {
	dir     string
	config  string
	workdir string
	runner  *testutil.FakeRunner
}

func newHarness(t *testing.T) *cliHarness {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "publisher.toml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	runner := &testutil.FakeRunner{}
	runner.Respond("git --version", command.Result{Stdout: "git version 2.44.0\n"})
	runner.Fail("git diff --cached --quiet", 1, "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "_sha256sum.txt") {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, testDigest+"\n")
	}))
	t.Cleanup(server.Close)

	origRunner, origClient, origHost := newRunner, httpClient, releaseHost
	origInteractive, origColor, origConfirm := isInteractive, useColor, confirmPublish
	t.Cleanup(func() {
		newRunner, httpClient, releaseHost = origRunner, origClient, origHost
		isInteractive, useColor, confirmPublish = origInteractive, origColor, origConfirm
	})
	newRunner = func() command.Runner { return runner }
	httpClient = server.Client()
	releaseHost = server.URL
	isInteractive = func() bool { return false }
	useColor = func(string) (bool, error) { return false, nil }
	confirmPublish = func(string) (bool, error) {
		t.Fatalf("unexpected confirmation prompt")
		return false, nil
	}

	return &cliHarness{
		dir:     dir,
		config:  path,
		workdir: filepath.Join(dir, "work"),
		runner:  runner,
	}
}

// run executes the CLI with --config and --workdir pointing into the harness.
func (h *cliHarness) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	full := append([]string{"publisher", "--config", h.config, "--workdir", h.workdir}, args...)
	err := execute(full, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}
