// Package publish materializes package repositories in local workspaces,
// writes rendered files into them, and commits and pushes the result.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/termapps/publisher/internal/command"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/messages"
)

// Render produces the lines of a file. Lines are joined with "\n" and the
// file ends with a trailing newline.
type Render func() ([]string, error)

// Static returns a Render for precomputed lines.
func Static(lines []string) Render {
	return func() ([]string, error) { return lines, nil }
}

// Pipeline owns the workspace root shared by every repository in one command.
// Out receives dry-run diff previews, each capped at DiffMaxLines lines (zero
// selects DefaultDiffMaxLines).
type Pipeline struct {
	Runner command.Runner
	Root   string
	DryRun bool
	Logger *log.Logger

	Out          io.Writer
	DiffMaxLines int

	skipped []string
}

// New returns a Pipeline rooted at root.
func New(runner command.Runner, root string, dryRun bool, logger *log.Logger, out io.Writer) *Pipeline {
	return &Pipeline{Runner: runner, Root: root, DryRun: dryRun, Logger: logger, Out: out}
}

func (p *Pipeline) git() *git.Client {
	return git.New(p.Runner)
}

func (p *Pipeline) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard)
	}
	return p.Logger
}

// Acquire returns a fresh, empty directory for id, removing whatever a
// previous run left there.
func (p *Pipeline) Acquire(id string) (string, error) {
	dir := filepath.Join(p.Root, id)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf(messages.PublishWorkspaceFmt, dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf(messages.PublishWorkspaceFmt, dir, err)
	}
	return dir, nil
}

// PrepareDir acquires a plain workspace for repositories that are not git
// remotes.
func (p *Pipeline) PrepareDir(id string) (*Workspace, error) {
	dir, err := p.Acquire(id)
	if err != nil {
		return nil, err
	}
	return &Workspace{ID: id, Dir: dir, pipeline: p}, nil
}

// PrepareGitRepo acquires a workspace for id and points it at remote. When
// the remote already has the default branch it is checked out, otherwise the
// workspace starts an unborn default branch.
func (p *Pipeline) PrepareGitRepo(ctx context.Context, id string, remote string) (*Workspace, error) {
	dir, err := p.Acquire(id)
	if err != nil {
		return nil, err
	}
	client := p.git()
	wrap := func(err error) error {
		return fmt.Errorf(messages.PublishWorkspaceFmt, dir, err)
	}

	p.logger().Debug("preparing workspace", "repository", id, "remote", remote, "dir", dir)
	if err := client.Init(ctx, dir, git.DefaultBranch); err != nil {
		return nil, wrap(err)
	}
	if err := client.AddRemote(ctx, dir, git.DefaultRemote, remote); err != nil {
		return nil, wrap(err)
	}
	if err := client.Fetch(ctx, dir, git.DefaultRemote); err != nil {
		return nil, wrap(err)
	}
	exists, err := client.HasRemoteBranch(ctx, dir, git.DefaultRemote, git.DefaultBranch)
	if err != nil {
		return nil, wrap(err)
	}
	if exists {
		if err := client.Checkout(ctx, dir, git.DefaultBranch); err != nil {
			return nil, wrap(err)
		}
	}
	return &Workspace{ID: id, Dir: dir, pipeline: p, git: true}, nil
}

// Skip records that id was rendered but not published because of dry-run.
func (p *Pipeline) Skip(id string) {
	for _, existing := range p.skipped {
		if existing == id {
			return
		}
	}
	p.skipped = append(p.skipped, id)
}

// Skipped lists the repositories withheld by dry-run, in order.
func (p *Pipeline) Skipped() []string {
	return append([]string(nil), p.skipped...)
}

// Cleanup removes the workspace root.
func (p *Pipeline) Cleanup() error {
	if p.Root == "" {
		return nil
	}
	if err := os.RemoveAll(p.Root); err != nil {
		return fmt.Errorf(messages.PublishCleanupFmt, p.Root, err)
	}
	return nil
}

// SkippedSummary renders the skipped ids for the dry-run notice.
func SkippedSummary(ids []string) string {
	return strings.Join(ids, ", ")
}
