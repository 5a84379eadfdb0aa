package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/termapps/publisher/internal/command"
	"github.com/termapps/publisher/internal/messages"
)

// CheckProgram verifies that program is installed by running it with args and
// looking for expect in its stdout. The outcome is memoized under name.
func CheckProgram(ctx context.Context, r command.Runner, results *Results, name string, expect string, program string, args ...string) {
	if results.HasChecked(name) {
		return
	}
	out, err := command.Output(ctx, r, "", program, args...)
	if err != nil || !strings.Contains(out, expect) {
		results.AddResult(name, Failure(fmt.Sprintf(messages.CheckProgramMissingFmt, program)))
		return
	}
	results.AddResult(name, Pass)
}

// CheckGit verifies that git is installed.
func CheckGit(ctx context.Context, r command.Runner, results *Results) {
	CheckProgram(ctx, r, results, messages.CheckNameGit, "git version", "git", "--version")
}

// CheckNix verifies that nix is installed.
func CheckNix(ctx context.Context, r command.Runner, results *Results) {
	CheckProgram(ctx, r, results, messages.CheckNameNix, "nix (Nix) ", "nix", "--version")
}

// CheckNPM verifies that npm is installed.
func CheckNPM(ctx context.Context, r command.Runner, results *Results) {
	CheckProgram(ctx, r, results, messages.CheckNameNPM, "", "npm", "--version")
}

// CheckNPMLogin verifies that npm has credentials for the registry.
func CheckNPMLogin(ctx context.Context, r command.Runner, results *Results) {
	if results.HasChecked(messages.CheckNameNPMLogin) {
		return
	}
	if npm, ok := results.Outcome(messages.CheckNameNPM); ok && !npm.Passed() {
		results.AddResult(messages.CheckNameNPMLogin, Failure(fmt.Sprintf(messages.CheckProgramMissingFmt, "npm")))
		return
	}
	out, err := command.Output(ctx, r, "", "npm", "whoami")
	if err != nil || strings.TrimSpace(out) == "" {
		results.AddResult(messages.CheckNameNPMLogin, Failure(messages.CheckNPMNotLoggedIn))
		return
	}
	results.AddResult(messages.CheckNameNPMLogin, Pass)
}

// toolFailed reports whether the memoized outcome for a tool check failed.
func toolFailed(results *Results, name string) bool {
	outcome, ok := results.Outcome(name)
	return ok && !outcome.Passed()
}

// AURHost is the ssh endpoint of the AUR.
const AURHost = "aur@aur.archlinux.org"

const aurShellDisabled = "Interactive shell is disabled."

// CheckAURSSH verifies that ssh authenticates against the AUR. The AUR
// refuses interactive shells, so a configured key is recognized by the
// refusal on stderr rather than by the exit status. The outcome is memoized.
func CheckAURSSH(ctx context.Context, r command.Runner, results *Results) bool {
	if !results.HasChecked(messages.CheckNameSSH) {
		result, err := r.Run(ctx, "", "ssh", "-o", "BatchMode=yes", AURHost)
		if err != nil || !strings.Contains(result.Stderr, aurShellDisabled) {
			results.AddResult(messages.CheckNameSSH, Failure(messages.CheckAURSSHNotConfigured))
		} else {
			results.AddResult(messages.CheckNameSSH, Pass)
		}
	}
	outcome, _ := results.Outcome(messages.CheckNameSSH)
	return outcome.Passed()
}
