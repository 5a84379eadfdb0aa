package publish

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/termapps/publisher/internal/command"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/messages"
)

// Workspace is one repository's directory inside the pipeline root.
type Workspace struct {
	ID       string
	Dir      string
	pipeline *Pipeline
	git      bool
}

// Path resolves rel inside the workspace, rejecting paths that escape it.
func (w *Workspace) Path(rel string) (string, error) {
	target := filepath.Join(w.Dir, filepath.FromSlash(rel))
	if target == w.Dir || !strings.HasPrefix(target, w.Dir+string(os.PathSeparator)) {
		return "", fmt.Errorf(messages.PublishPathEscapesFmt, rel, w.Dir)
	}
	return target, nil
}

// Write renders rel and writes it without staging. In dry-run mode the change
// is previewed as a unified diff first.
func (w *Workspace) Write(rel string, render Render) error {
	target, err := w.Path(rel)
	if err != nil {
		return err
	}
	lines, err := render()
	if err != nil {
		return fmt.Errorf(messages.PublishRenderFmt, rel, err)
	}
	content := strings.Join(lines, "\n") + "\n"

	previous, err := os.ReadFile(target)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(messages.PublishWriteFmt, rel, err)
	}
	if w.pipeline.DryRun {
		w.pipeline.previewDiff(w.ID+"/"+filepath.ToSlash(rel), string(previous), content)
	}

	w.pipeline.logger().Debug(fmt.Sprintf(messages.PublishWritingFmt, rel), "repository", w.ID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf(messages.PublishWriteFmt, rel, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.PublishWriteFmt, rel, err)
	}
	return nil
}

// WriteAndAdd renders rel, writes it, and stages it immediately.
func (w *Workspace) WriteAndAdd(ctx context.Context, rel string, render Render) error {
	if err := w.Write(rel, render); err != nil {
		return err
	}
	return w.Stage(ctx, rel)
}

// Stage adds a file generated inside the workspace by another tool.
func (w *Workspace) Stage(ctx context.Context, rel string) error {
	if _, err := w.Path(rel); err != nil {
		return err
	}
	return w.pipeline.git().Add(ctx, w.Dir, filepath.ToSlash(rel))
}

// Run runs a backend command inside sub, a directory relative to the workspace.
func (w *Workspace) Run(ctx context.Context, sub string, name string, args ...string) error {
	dir := w.Dir
	if sub != "" {
		resolved, err := w.Path(sub)
		if err != nil {
			return err
		}
		dir = resolved
	}
	w.pipeline.logger().Debug("running", "repository", w.ID, "command", command.Line(name, args...))
	_, err := command.Output(ctx, w.pipeline.Runner, dir, name, args...)
	return err
}

// CommitAndPush commits the staged files as "<id>: <version>" and pushes the
// default branch. In dry-run mode nothing is pushed and the id is recorded as
// skipped. Nothing is committed when the staged tree matches HEAD.
func (w *Workspace) CommitAndPush(ctx context.Context, version string) error {
	logger := w.pipeline.logger().With("repository", w.ID)
	client := w.pipeline.git()

	changed, err := client.HasStagedChanges(ctx, w.Dir)
	if err != nil {
		return err
	}
	if !changed {
		logger.Info("already up to date", "version", version)
		if w.pipeline.DryRun {
			w.pipeline.Skip(w.ID)
		}
		return nil
	}

	if err := client.Commit(ctx, w.Dir, fmt.Sprintf("%s: %s", w.ID, version)); err != nil {
		return err
	}
	if w.pipeline.DryRun {
		logger.Warn(messages.PublishDryRunNotice)
		w.pipeline.Skip(w.ID)
		return nil
	}
	return client.PushBranch(ctx, w.Dir, git.DefaultRemote, git.DefaultBranch)
}

// IsGit reports whether the workspace is backed by a git remote.
func (w *Workspace) IsGit() bool {
	return w.git
}
