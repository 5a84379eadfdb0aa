// Package git wraps the git invocations used to probe and publish package repositories.
package git

import (
	"context"

	"github.com/termapps/publisher/internal/command"
)

// DefaultBranch is the branch package repositories are published to.
const DefaultBranch = "master"

// DefaultRemote is the remote name used inside publish workspaces.
const DefaultRemote = "origin"

// Client runs git through a command.Runner.
type Client struct {
	Runner command.Runner
}

// New returns a Client that runs git through r.
func New(r command.Runner) *Client {
	return &Client{Runner: r}
}

func (c *Client) run(ctx context.Context, dir string, args ...string) error {
	_, err := command.Output(ctx, c.Runner, dir, "git", args...)
	return err
}

// LsRemote succeeds when remote is reachable and advertises at least one ref.
func (c *Client) LsRemote(ctx context.Context, remote string) error {
	return c.run(ctx, "", "ls-remote", "--exit-code", remote)
}

// LsRemoteHead succeeds when remote has a head named branch.
func (c *Client) LsRemoteHead(ctx context.Context, remote string, branch string) error {
	return c.run(ctx, "", "ls-remote", "--exit-code", "--heads", remote, branch)
}

// Clone clones remote into dir.
func (c *Client) Clone(ctx context.Context, remote string, dir string) error {
	return c.run(ctx, "", "clone", remote, dir)
}

// Init creates an empty repository in dir whose unborn HEAD points at branch.
func (c *Client) Init(ctx context.Context, dir string, branch string) error {
	if err := c.run(ctx, dir, "init"); err != nil {
		return err
	}
	return c.run(ctx, dir, "symbolic-ref", "HEAD", "refs/heads/"+branch)
}

// AddRemote registers url as name in the repository at dir.
func (c *Client) AddRemote(ctx context.Context, dir string, name string, url string) error {
	return c.run(ctx, dir, "remote", "add", name, url)
}

// Fetch fetches all refs from the remote.
func (c *Client) Fetch(ctx context.Context, dir string, remote string) error {
	return c.run(ctx, dir, "fetch", remote)
}

// HasRemoteBranch reports whether the fetched remote-tracking branch exists.
func (c *Client) HasRemoteBranch(ctx context.Context, dir string, remote string, branch string) (bool, error) {
	result, err := c.Runner.Run(ctx, dir, "git", "rev-parse", "--verify", "--quiet", "refs/remotes/"+remote+"/"+branch)
	if err != nil {
		return false, err
	}
	return result.Success(), nil
}

// Checkout checks out branch.
func (c *Client) Checkout(ctx context.Context, dir string, branch string) error {
	return c.run(ctx, dir, "checkout", branch)
}

// Add stages path.
func (c *Client) Add(ctx context.Context, dir string, path string) error {
	return c.run(ctx, dir, "add", path)
}

// Commit records the staged changes with message.
func (c *Client) Commit(ctx context.Context, dir string, message string) error {
	return c.run(ctx, dir, "commit", "-m", message)
}

// Push pushes the current branch to its upstream.
func (c *Client) Push(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "push")
}

// PushBranch pushes branch to remote.
func (c *Client) PushBranch(ctx context.Context, dir string, remote string, branch string) error {
	return c.run(ctx, dir, "push", remote, branch)
}

// HasStagedChanges reports whether the index differs from HEAD. An unborn
// HEAD with staged files counts as changed.
func (c *Client) HasStagedChanges(ctx context.Context, dir string) (bool, error) {
	result, err := c.Runner.Run(ctx, dir, "git", "diff", "--cached", "--quiet")
	if err != nil {
		return false, err
	}
	return !result.Success(), nil
}
