// Package repositories implements the package repositories publisher can
// target and the registry that selects them.
package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/command"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/release"
	"github.com/termapps/publisher/internal/targets"
)

// Kind identifies a package repository in the CLI and in exclude lists.
type Kind string

// Supported repository kinds, in default processing order.
const (
	KindAur      Kind = "aur"
	KindAurBin   Kind = "aur-bin"
	KindHomebrew Kind = "homebrew"
	KindScoop    Kind = "scoop"
	KindNix      Kind = "nix"
	KindDebian   Kind = "debian"
	KindNPM      Kind = "npm"
)

// Repository is one publishing backend.
type Repository interface {
	Kind() Kind
	// Name is the display name used in reports.
	Name() string
	// Check records diagnostics into results for the current repository.
	Check(ctx context.Context, env *Env, results *check.Results, cfg *config.AppConfig) error
	Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error
	// Instructions returns the install section lines for a README.
	Instructions(cfg *config.AppConfig) ([]string, error)
}

// ChecksumResolver resolves release checksums for a set of targets.
type ChecksumResolver interface {
	Resolve(ctx context.Context, name, version, repo string, want []targets.Target) (release.Checksums, error)
}

// AssetDownloader fetches and verifies release assets.
type AssetDownloader interface {
	FetchAsset(ctx context.Context, asset release.Asset, expected string, dest string) error
}

// Env carries the collaborators a command hands to each repository.
type Env struct {
	Runner     command.Runner
	Git        *git.Client
	Resolver   ChecksumResolver
	Downloader AssetDownloader
	Pipeline   *publish.Pipeline
	Logger     *log.Logger
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// registry maps each kind to its constructor, in default processing order.
var registry = []struct {
	kind    Kind
	newRepo func() Repository
}{
	{kind: KindAur, newRepo: func() Repository { return aur{} }},
	{kind: KindAurBin, newRepo: func() Repository { return aurBin{} }},
	{kind: KindHomebrew, newRepo: func() Repository { return homebrew{} }},
	{kind: KindScoop, newRepo: func() Repository { return scoop{} }},
	{kind: KindNix, newRepo: func() Repository { return nix{} }},
	{kind: KindDebian, newRepo: func() Repository { return debian{} }},
	{kind: KindNPM, newRepo: func() Repository { return npm{} }},
}

// AllKinds lists every supported kind in default processing order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for _, entry := range registry {
		kinds = append(kinds, entry.kind)
	}
	return kinds
}

// ParseKind resolves a repository id.
func ParseKind(id string) (Kind, error) {
	normalized := Kind(strings.ToLower(strings.TrimSpace(id)))
	for _, entry := range registry {
		if entry.kind == normalized {
			return entry.kind, nil
		}
	}
	return "", fmt.Errorf(messages.UnknownRepositoryFmt, id, kindList())
}

// ParseKinds resolves every id, failing on the first unknown one.
func ParseKinds(ids []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(ids))
	for _, id := range ids {
		kind, err := ParseKind(id)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// New constructs the repository for kind.
func New(kind Kind) (Repository, error) {
	for _, entry := range registry {
		if entry.kind == kind {
			return entry.newRepo(), nil
		}
	}
	return nil, fmt.Errorf(messages.PublishUnsupportedKind, kind)
}

// Build returns the active repositories. An explicit selection is used as
// given (deduplicated, in order) and bypasses exclude; otherwise every kind
// not in exclude is active. Unknown ids in exclude are errors.
func Build(selected []Kind, exclude []string) ([]Repository, error) {
	excluded, err := ParseKinds(exclude)
	if err != nil {
		return nil, err
	}

	var kinds []Kind
	if len(selected) > 0 {
		kinds = dedupe(selected)
	} else {
		for _, kind := range AllKinds() {
			if !containsKind(excluded, kind) {
				kinds = append(kinds, kind)
			}
		}
	}

	repos := make([]Repository, 0, len(kinds))
	for _, kind := range kinds {
		repo, err := New(kind)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// SelectedButExcluded returns the explicitly selected kinds that exclude
// would otherwise have removed. Unknown exclude ids are ignored here.
func SelectedButExcluded(selected []Kind, exclude []string) []Kind {
	var out []Kind
	for _, kind := range dedupe(selected) {
		for _, id := range exclude {
			if parsed, err := ParseKind(id); err == nil && parsed == kind {
				out = append(out, kind)
				break
			}
		}
	}
	return out
}

// KindsOf lists the kinds of repos in order.
func KindsOf(repos []Repository) []Kind {
	kinds := make([]Kind, 0, len(repos))
	for _, repo := range repos {
		kinds = append(kinds, repo.Kind())
	}
	return kinds
}

func dedupe(kinds []Kind) []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, kind := range kinds {
		if !containsKind(out, kind) {
			out = append(out, kind)
		}
	}
	return out
}

func containsKind(kinds []Kind, kind Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func kindList() string {
	ids := make([]string, 0, len(registry))
	for _, kind := range AllKinds() {
		ids = append(ids, string(kind))
	}
	return strings.Join(ids, ", ")
}
