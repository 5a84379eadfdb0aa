package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/termapps/publisher/internal/command"
)

// WriteStub writes an executable shell stub that prints stdout and exits with exitCode.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string, stdout string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nprintf '%%s' %q\nexit %d\n", stdout, exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

// Call records one invocation seen by a FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return command.Line(c.Name, c.Args...)
}

type response struct {
	prefix string
	result command.Result
	err    error
}

// FakeRunner is a command.Runner that records calls and replies with scripted results.
// Calls that match no scripted prefix succeed with empty output.
type FakeRunner struct {
	mu        sync.Mutex
	calls     []Call
	responses []response
	// OnRun, when set, runs for every call before the scripted result is returned.
	OnRun func(call Call)
}

// Respond scripts the result for calls whose command line starts with prefix.
// Later registrations take precedence over earlier ones.
func (f *FakeRunner) Respond(prefix string, result command.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, response{prefix: prefix, result: result})
}

// Fail scripts a non-zero exit with stderr for calls starting with prefix.
func (f *FakeRunner) Fail(prefix string, exitCode int, stderr string) {
	f.Respond(prefix, command.Result{ExitCode: exitCode, Stderr: stderr})
}

// Missing scripts a start failure, as if the program were not installed.
func (f *FakeRunner) Missing(prefix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, response{prefix: prefix, err: fmt.Errorf("%s: executable file not found in $PATH", prefix)})
}

// Run implements command.Runner.
func (f *FakeRunner) Run(_ context.Context, dir string, name string, args ...string) (command.Result, error) {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	onRun := f.OnRun
	line := call.String()
	var matched *response
	for i := len(f.responses) - 1; i >= 0; i-- {
		if strings.HasPrefix(line, f.responses[i].prefix) {
			matched = &f.responses[i]
			break
		}
	}
	f.mu.Unlock()

	if onRun != nil {
		onRun(call)
	}
	if matched == nil {
		return command.Result{}, nil
	}
	return matched.result, matched.err
}

// Calls returns a copy of every recorded call in order.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Lines returns every recorded call rendered as a command line.
func (f *FakeRunner) Lines() []string {
	calls := f.Calls()
	lines := make([]string, 0, len(calls))
	for _, call := range calls {
		lines = append(lines, call.String())
	}
	return lines
}

// Ran reports whether any recorded call starts with prefix.
func (f *FakeRunner) Ran(prefix string) bool {
	for _, line := range f.Lines() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
