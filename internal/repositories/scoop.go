package repositories

import (
	"context"
	"fmt"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/manifest"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/targets"
)

var scoopTargets = []targets.Target{targets.I686PcWindowsMsvc, targets.X86_64PcWindowsMsvc}

type scoop struct{}

func (scoop) Kind() Kind { return KindScoop }
func (scoop) Name() string { return "Scoop" }

func (s scoop) Check(ctx context.Context, env *Env, results *check.Results, cfg *config.AppConfig) error {
	check.CheckGit(ctx, env.Runner, results)
	if cfg.Scoop == nil {
		results.AddResult(messages.CheckNameConfig, check.Failure(fmt.Sprintf(messages.CheckNoConfigFmt, s.Kind())))
		return nil
	}
	check.ProbeRemote(ctx, env.Git, results, githubRemote(cfg.Scoop.Repository), git.DefaultBranch, true)
	return nil
}

func (s scoop) Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error {
	if cfg.Scoop == nil {
		return fmt.Errorf(messages.PublishNoConfigFmt, s.Kind())
	}
	name := ScoopName(cfg)
	checksums, err := resolveChecksums(ctx, env, cfg, version, scoopTargets)
	if err != nil {
		return err
	}
	pkg := newPackage(cfg, name, version, checksums)

	ws, err := env.Pipeline.PrepareGitRepo(ctx, string(s.Kind()), githubRemote(cfg.Scoop.Repository))
	if err != nil {
		return err
	}
	if err := ws.WriteAndAdd(ctx, manifest.ScoopPath(name), func() ([]string, error) {
		return manifest.ScoopManifest(pkg)
	}); err != nil {
		return err
	}
	return ws.CommitAndPush(ctx, version)
}

func (s scoop) Instructions(cfg *config.AppConfig) ([]string, error) {
	if cfg.Scoop == nil {
		return nil, fmt.Errorf(messages.PublishNoConfigFmt, s.Kind())
	}
	return codeBlock("Scoop", "https://scoop.sh",
		fmt.Sprintf("scoop bucket add %s https://github.com/%s", owner(cfg.Scoop.Repository), cfg.Scoop.Repository),
		"scoop install "+ScoopName(cfg),
	), nil
}
