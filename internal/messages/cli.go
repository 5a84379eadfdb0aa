package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "publisher"
	// RootShort is the short description for the root command.
	RootShort   = "Tool to publish & distribute CLI tools"
	RootVersion = "Print version and exit"

	FlagConfig  = "Path to the publisher configuration file"
	FlagWorkdir = "Directory in which per-repository workspaces are created"
	FlagVerbose = "Enable debug logging"
	FlagQuiet   = "Only log warnings and errors"
	FlagColor   = "When to use colors: auto, always, never"

	ColorInvalidFmt = "invalid --color value %q (supported: auto, always, never)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// CheckUse is the check command usage.
	CheckUse   = "check [repositories...]"
	CheckShort = "Check requirements for publishing to package repositories"

	// PublishUse is the publish command usage.
	PublishUse          = "publish <version> [repositories...]"
	PublishShort        = "Publish the tool to package repositories"
	PublishFlagNoDryRun = "Actually push to the package repositories"
	PublishFlagYes      = "Skip the confirmation prompt when publishing for real"
	PublishFlagKeep     = "Keep the per-repository workspaces after the command finishes"
	PublishConfirmFmt   = "Publish %s v%s to %s?"
	PublishAborted      = "publish aborted"
	PublishRequiresVer  = "requires a version argument"

	// GenerateUse is the generate command name.
	GenerateUse   = "generate"
	GenerateShort = "Generates things related to publishing"

	InstructionsUse             = "instructions <file>"
	InstructionsShort           = "Generates installation instructions"
	InstructionsFlagStartMarker = "Marks the beginning of the file content to replace with instructions"
	InstructionsFlagEndMarker   = "Marks the end of the file content to replace with instructions"
	InstructionsFlagPrefix      = "Prefix for each section in the installation instructions"

	UnknownRepositoryFmt   = "unknown repository %q (supported: %s)"
	SelectedButExcludedFmt = "%s is excluded in the config but was selected explicitly"
)
