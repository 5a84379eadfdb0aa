package repositories

import (
	"context"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/manifest"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/targets"
)

func aurSSHRemote(name string) string {
	return "ssh://" + check.AURHost + "/" + name + ".git"
}

func aurHTTPSRemote(name string) string {
	return "https://aur.archlinux.org/" + name + ".git"
}

// checkAUR runs the checks shared by both AUR packages. Without ssh access
// only the public https remote can be probed.
func checkAUR(ctx context.Context, env *Env, results *check.Results, name string) {
	check.CheckGit(ctx, env.Runner, results)
	remote := aurHTTPSRemote(name)
	if check.CheckAURSSH(ctx, env.Runner, results) {
		remote = aurSSHRemote(name)
	}
	check.ProbeRemote(ctx, env.Git, results, remote, git.DefaultBranch, true)
}

type aur struct{}

func (aur) Kind() Kind { return KindAur }
func (aur) Name() string { return "AUR" }

func (aur) Check(ctx context.Context, env *Env, results *check.Results, cfg *config.AppConfig) error {
	checkAUR(ctx, env, results, AurName(cfg))
	return nil
}

func (a aur) Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error {
	name := AurName(cfg)
	checksums, err := resolveChecksums(ctx, env, cfg, version, []targets.Target{targets.Source})
	if err != nil {
		return err
	}
	pkg := newPackage(cfg, name, version, checksums)
	if cfg.Aur != nil {
		pkg.Conflicts = cfg.Aur.Conflicts
	}

	ws, err := env.Pipeline.PrepareGitRepo(ctx, string(a.Kind()), aurSSHRemote(name))
	if err != nil {
		return err
	}
	if err := ws.WriteAndAdd(ctx, "PKGBUILD", publish.Static(manifest.PKGBUILD(pkg))); err != nil {
		return err
	}
	if err := ws.WriteAndAdd(ctx, ".SRCINFO", publish.Static(manifest.SRCINFO(pkg))); err != nil {
		return err
	}
	return ws.CommitAndPush(ctx, version)
}

func (aur) Instructions(cfg *config.AppConfig) ([]string, error) {
	return codeBlock("AUR", "https://aur.archlinux.org", "yay -S "+AurName(cfg)), nil
}
