package messages

// Check messages for the check command and diagnostics.
const (
	CheckRepositoryHeaderFmt = "%s\n"
	CheckResultLineFmt       = "  %s %s%s\n"
	CheckResultMessageFmt    = " - %s"
	CheckStatusPassLabel     = "pass"
	CheckStatusWarnLabel     = "warn"
	CheckStatusFailLabel     = "fail"
	CheckFailureSummary      = "Some checks failed. Fix the failures above before publishing."
	CheckSuccessSummary      = "All required checks passed."

	CheckNoCurrentRepository = "check result recorded without a current repository"

	CheckNameGit      = "git"
	CheckNameNix      = "nix"
	CheckNameNPM      = "npm"
	CheckNameNPMLogin = "npm-login"
	CheckNameSSH      = "ssh"
	CheckNameRepo     = "repo"
	CheckNameConfig   = "config"

	CheckProgramMissingFmt = "%s is not installed"

	CheckAURSSHNotConfigured = "AUR SSH access is not configured"
	CheckNPMNotLoggedIn      = "not logged in to the npm registry"

	CheckRepoGitMissing     = "git is not installed"
	CheckRepoNotFound       = "repository not found or is empty"
	CheckRepoBranchMissFmt  = "repository branch '%s' does not exist"
	CheckRepoNoReadAccess   = "read access to the repository not configured"
	CheckRepoNoWriteAccess  = "write access to the repository not configured"
	CheckRepoScratchFailFmt = "create scratch directory: %v"

	CheckNoConfigFmt = "No configuration found for %s"
)
