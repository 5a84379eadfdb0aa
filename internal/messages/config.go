package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt     = "missing config file %s: %w"
	ConfigInvalidConfigFmt   = "invalid config %s: %w"
	ConfigUnrecognizedKeyFmt = "%s: unrecognized keys: %w"
	ConfigInvalidCargoFmt    = "invalid build metadata %s: %w"
	ConfigWorkdirFmt         = "resolve workdir %s: %w"

	ConfigNameRequiredFmt       = "%s: name is required"
	ConfigRepositoryRequiredFmt = "%s: repository is required"
	ConfigRepositoryInvalidFmt  = "%s: repository %q must be in the form owner/repo"
	ConfigHomebrewRepoFmt       = "%s: homebrew.repository is required"
	ConfigScoopRepoFmt          = "%s: scoop.repository is required"

	ConfigValidationGuidance = "Fix publisher.toml and run 'publisher check' again."
)
