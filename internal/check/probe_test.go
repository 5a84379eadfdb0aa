package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/testutil"
)

const testRemote = "git@github.com:termapps/homebrew-tap"

func probe(t *testing.T, runner *testutil.FakeRunner, warn bool) Outcome {
	t.Helper()
	results := NewResults()
	results.Begin("Homebrew")
	ProbeRemote(context.Background(), git.New(runner), results, testRemote, "master", warn)
	outcome, ok := results.Outcome("repo")
	require.True(t, ok)
	require.Equal(t, []string{"repo"}, results.Checks("Homebrew"))
	return outcome
}

func TestProbeRemoteMissingSkipsLaterStages(t *testing.T) {
	for _, warn := range []bool{true, false} {
		runner := &testutil.FakeRunner{}
		runner.Fail("git ls-remote --exit-code "+testRemote, 128, "fatal: repository not found")

		outcome := probe(t, runner, warn)
		require.Equal(t, "repository not found or is empty", outcome.Message)
		if warn {
			require.Equal(t, SeverityWarn, outcome.Severity)
		} else {
			require.Equal(t, SeverityFail, outcome.Severity)
		}
		require.Equal(t, []string{"git ls-remote --exit-code " + testRemote}, runner.Lines())
		require.False(t, runner.Ran("git clone"))
		require.False(t, runner.Ran("git push"))
	}
}

func TestProbeRemoteMissingBranchIsHardFailure(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.Fail("git ls-remote --exit-code --heads", 2, "")

	outcome := probe(t, runner, true)
	require.Equal(t, Failure("repository branch 'master' does not exist"), outcome)
	require.False(t, runner.Ran("git clone"))
}

func TestProbeRemoteReadAccess(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.Fail("git clone", 128, "Permission denied (publickey).")

	outcome := probe(t, runner, true)
	require.Equal(t, Failure("read access to the repository not configured"), outcome)
	require.False(t, runner.Ran("git push"))
}

func TestProbeRemoteWriteAccessCleansScratch(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.Fail("git push", 128, "ERROR: Permission to termapps/homebrew-tap.git denied")
	var cloned string
	runner.OnRun = func(call testutil.Call) {
		if call.Name == "git" && len(call.Args) == 3 && call.Args[0] == "clone" {
			cloned = call.Args[2]
			require.NoError(t, os.MkdirAll(cloned, 0o755))
		}
	}

	outcome := probe(t, runner, true)
	require.Equal(t, Failure("write access to the repository not configured"), outcome)

	calls := runner.Calls()
	push := calls[len(calls)-1]
	require.Equal(t, []string{"push"}, push.Args)
	require.Equal(t, cloned, push.Dir)
	require.NoDirExists(t, filepath.Dir(cloned))
}

func TestProbeRemoteSuccess(t *testing.T) {
	runner := &testutil.FakeRunner{}
	outcome := probe(t, runner, false)
	require.True(t, outcome.Passed())
	require.Len(t, runner.Lines(), 4)
}

func TestProbeRemoteSkipsNetworkWhenGitMissing(t *testing.T) {
	runner := &testutil.FakeRunner{}
	runner.Missing("git")
	results := NewResults()
	results.Begin("AUR")
	CheckGit(context.Background(), runner, results)
	ProbeRemote(context.Background(), git.New(runner), results, testRemote, "master", true)

	outcome, _ := results.Outcome("repo")
	require.Equal(t, Failure("git is not installed"), outcome)
	require.Equal(t, []string{"git --version"}, runner.Lines())
}
