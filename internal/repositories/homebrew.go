package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/manifest"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/targets"
)

var homebrewTargets = []targets.Target{
	targets.Aarch64AppleDarwin,
	targets.X86_64AppleDarwin,
	targets.X86_64UnknownLinuxGnu,
}

type homebrew struct{}

func (homebrew) Kind() Kind { return KindHomebrew }
func (homebrew) Name() string { return "Homebrew" }

func (h homebrew) Check(ctx context.Context, env *Env, results *check.Results, cfg *config.AppConfig) error {
	check.CheckGit(ctx, env.Runner, results)
	if cfg.Homebrew == nil {
		results.AddResult(messages.CheckNameConfig, check.Failure(fmt.Sprintf(messages.CheckNoConfigFmt, h.Kind())))
		return nil
	}
	check.ProbeRemote(ctx, env.Git, results, githubRemote(cfg.Homebrew.Repository), git.DefaultBranch, true)
	return nil
}

func (h homebrew) Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error {
	if cfg.Homebrew == nil {
		return fmt.Errorf(messages.PublishNoConfigFmt, h.Kind())
	}
	name := HomebrewName(cfg)
	checksums, err := resolveChecksums(ctx, env, cfg, version, homebrewTargets)
	if err != nil {
		return err
	}
	pkg := newPackage(cfg, name, version, checksums)

	ws, err := env.Pipeline.PrepareGitRepo(ctx, string(h.Kind()), githubRemote(cfg.Homebrew.Repository))
	if err != nil {
		return err
	}
	if err := ws.WriteAndAdd(ctx, manifest.FormulaPath(name), publish.Static(manifest.Formula(pkg))); err != nil {
		return err
	}
	return ws.CommitAndPush(ctx, version)
}

// Instructions uses the short tap form when the tap follows the
// homebrew-<tap> naming convention.
func (h homebrew) Instructions(cfg *config.AppConfig) ([]string, error) {
	if cfg.Homebrew == nil {
		return nil, fmt.Errorf(messages.PublishNoConfigFmt, h.Kind())
	}
	name := HomebrewName(cfg)
	org := owner(cfg.Homebrew.Repository)
	tap := repoName(cfg.Homebrew.Repository)

	if short, ok := strings.CutPrefix(tap, "homebrew-"); ok {
		return codeBlock("Homebrew", "https://brew.sh", fmt.Sprintf("brew install %s/%s/%s", org, short, name)), nil
	}
	return codeBlock("Homebrew", "https://brew.sh",
		fmt.Sprintf("brew tap %s/%s https://github.com/%s/%s", org, tap, org, tap),
		fmt.Sprintf("brew install %s/%s/%s", org, tap, name),
	), nil
}
