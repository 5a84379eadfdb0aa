package messages

// Publish messages for the publish pipeline and backends.
const (
	PublishRepositoryFmt     = "publishing %s"
	PublishWritingFmt        = "writing %s"
	PublishDryRunNotice      = "not published, dry-run"
	PublishDryRunSummaryFmt  = "Not published, dry-run: %s. Pass --no-dry-run to push."
	PublishDoneFmt           = "published %s v%s"
	PublishDiffHeaderFmt     = "--- %s (dry-run diff)\n"
	PublishDiffTruncatedFmt  = "... diff truncated (%d more lines)\n"
	PublishNoConfigFmt       = "no configuration found for %s"
	PublishDebianNoRemoteFmt = "debian release checksums verified for %s; no package repository is pushed"

	PublishWorkspaceFmt    = "prepare workspace %s: %w"
	PublishRenderFmt       = "render %s: %w"
	PublishWriteFmt        = "write %s: %w"
	PublishCleanupFmt      = "remove workspace %s: %w"
	PublishPathEscapesFmt  = "path %s escapes workspace %s"
	PublishVersionFmt      = "invalid version %q: %w"
	PublishUnsupportedKind = "unsupported repository kind %q"

	PublishLockFmt        = "lock workspace %s: %w"
	PublishLockTimeoutFmt = "timed out after %s waiting for another publisher run using %s"

	ReleaseFetchFmt        = "fetch %s: %w"
	ReleaseStatusFmt       = "fetch %s: unexpected status %s"
	ReleaseEmptyFmt        = "checksum file %s is empty"
	ReleaseMalformedFmt    = "checksum file %s does not contain a sha256 digest: %q"
	ReleaseMismatchFmt     = "checksum mismatch for %s: expected %s, got %s"
	ReleaseRequestFmt      = "create request for %s: %w"
	ReleaseArchiveFmt      = "extract %s: %w"
	ReleaseArchiveEntryFmt = "archive entry %q escapes %s"
)
