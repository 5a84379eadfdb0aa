package repositories

import (
	"context"
	"path"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/manifest"
	"github.com/termapps/publisher/internal/publish"
)

type nix struct{}

func (nix) Kind() Kind { return KindNix }
func (nix) Name() string { return "Nix" }

func (nix) Check(ctx context.Context, env *Env, results *check.Results, cfg *config.AppConfig) error {
	check.CheckGit(ctx, env.Runner, results)
	check.ProbeRemote(ctx, env.Git, results, githubRemote(NixRepository(cfg)), git.DefaultBranch, true)
	if NixLockfile(cfg) {
		check.CheckNix(ctx, env.Runner, results)
	}
	return nil
}

// Publish writes the flake and, unless disabled, regenerates its lock file
// next to it.
func (n nix) Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error {
	name := NixName(cfg)
	checksums, err := resolveChecksums(ctx, env, cfg, version, manifest.FlakeTargets())
	if err != nil {
		return err
	}
	pkg := newPackage(cfg, name, version, checksums)
	flakePath := NixPath(cfg)

	ws, err := env.Pipeline.PrepareGitRepo(ctx, string(n.Kind()), githubRemote(NixRepository(cfg)))
	if err != nil {
		return err
	}
	if err := ws.WriteAndAdd(ctx, flakePath, publish.Static(manifest.Flake(pkg))); err != nil {
		return err
	}

	if NixLockfile(cfg) {
		dir := path.Dir(flakePath)
		if dir == "." {
			dir = ""
		}
		if err := ws.Run(ctx, dir, "nix", "--extra-experimental-features", "nix-command flakes", "flake", "update"); err != nil {
			return err
		}
		if err := ws.Stage(ctx, path.Join(dir, "flake.lock")); err != nil {
			return err
		}
	}
	return ws.CommitAndPush(ctx, version)
}

// Instructions names the package explicitly unless the flake sits at the
// repository root.
func (nix) Instructions(cfg *config.AppConfig) ([]string, error) {
	install := "nix profile install github:" + NixRepository(cfg)
	if NixPath(cfg) != manifest.DefaultFlakePath {
		install += "#" + NixName(cfg)
	}
	return codeBlock("Nix", "https://nixos.org", install), nil
}
