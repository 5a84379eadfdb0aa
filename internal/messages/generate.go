package messages

// Generate messages for the generate subcommands.
const (
	InstructionsStartMarker     = "<!-- publisher install start -->"
	InstructionsEndMarker       = "<!-- publisher install end -->"
	InstructionsPrefix          = "#### "
	InstructionsHeading         = "## Install"
	InstructionsAvailableFmt    = "`%s` is available on Linux, macOS & Windows"
	InstructionsDirect          = "Direct"
	InstructionsReleasesFmt     = "Pre-built binary executables are available at [releases page](https://github.com/%s/releases)."
	InstructionsDownload        = "Download, unarchive the binary, and then put the executable in `$PATH`."
	InstructionsStartMissingFmt = "start marker %q not found in %s"
	InstructionsEndMissingFmt   = "end marker %q not found in %s"
	InstructionsEndBeforeFmt    = "end marker %q appears before start marker in %s"
	InstructionsReadFmt         = "read %s: %w"
	InstructionsWriteFmt        = "write %s: %w"
	InstructionsWrittenFmt      = "writing %s"
)
