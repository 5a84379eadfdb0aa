// Package command runs external programs and captures their exit status and output.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures a finished invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the invocation exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a program in dir and returns its Result.
// The returned error is non-nil only when the program could not be started
// (for example, it is not installed); a non-zero exit is reported in Result.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// Error reports an invocation that exited unsuccessfully.
type Error struct {
	Command string
	Result  Result
}

func (e *Error) Error() string {
	msg := strings.TrimSpace(e.Result.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Result.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.Result.ExitCode)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Command, e.Result.ExitCode, msg)
}

// Exec implements Runner with os/exec.
type Exec struct {
	// Env, when non-nil, replaces the inherited environment.
	Env []string
}

// Run starts name with args in dir and waits for it to finish.
func (e Exec) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if e.Env != nil {
		cmd.Env = e.Env
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			if result.ExitCode <= 0 {
				result.ExitCode = 1
			}
			return result, nil
		}
		return result, fmt.Errorf("%s: %w", Line(name, args...), err)
	}
	return result, nil
}

// Output runs the program and returns its stdout, converting a non-zero exit into an *Error.
func Output(ctx context.Context, r Runner, dir string, name string, args ...string) (string, error) {
	result, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return "", err
	}
	if !result.Success() {
		return "", &Error{Command: Line(name, args...), Result: result}
	}
	return result.Stdout, nil
}

// Line renders an invocation for logs and error messages.
func Line(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
