package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/messages"
)

// ProbeRemote records a single repo outcome describing how far access to
// remote goes: exists, has branch, readable, writable. Each stage only runs
// when the previous one succeeded. A missing or empty remote is a warning when
// warnOnMissing is set; every later stage failure is a hard failure.
func ProbeRemote(ctx context.Context, client *git.Client, results *Results, remote string, branch string, warnOnMissing bool) {
	name := messages.CheckNameRepo
	if toolFailed(results, messages.CheckNameGit) {
		results.AddResult(name, Failure(messages.CheckRepoGitMissing))
		return
	}

	if err := client.LsRemote(ctx, remote); err != nil {
		results.AddResultWarn(name, messages.CheckRepoNotFound, warnOnMissing)
		return
	}

	if err := client.LsRemoteHead(ctx, remote, branch); err != nil {
		results.AddResult(name, Failure(fmt.Sprintf(messages.CheckRepoBranchMissFmt, branch)))
		return
	}

	results.AddResult(name, probeAccess(ctx, client, remote))
}

// probeAccess clones remote into a scratch directory and attempts a no-op push
// from it. The scratch directory is removed on every path.
func probeAccess(ctx context.Context, client *git.Client, remote string) Outcome {
	scratch, err := os.MkdirTemp("", "publisher-check-")
	if err != nil {
		return Failure(fmt.Sprintf(messages.CheckRepoScratchFailFmt, err))
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	dir := filepath.Join(scratch, "repo")
	if err := client.Clone(ctx, remote, dir); err != nil {
		return Failure(messages.CheckRepoNoReadAccess)
	}
	if err := client.Push(ctx, dir); err != nil {
		return Failure(messages.CheckRepoNoWriteAccess)
	}
	return Pass
}
