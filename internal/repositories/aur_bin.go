package repositories

import (
	"context"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/manifest"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/targets"
)

var aurBinTargets = []targets.Target{targets.X86_64UnknownLinuxGnu, targets.I686UnknownLinuxGnu}

type aurBin struct{}

func (aurBin) Kind() Kind { return KindAurBin }
func (aurBin) Name() string { return "AUR (bin)" }

func (aurBin) Check(ctx context.Context, env *Env, results *check.Results, cfg *config.AppConfig) error {
	checkAUR(ctx, env, results, AurBinName(cfg))
	return nil
}

func (a aurBin) Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error {
	name := AurBinName(cfg)
	checksums, err := resolveChecksums(ctx, env, cfg, version, aurBinTargets)
	if err != nil {
		return err
	}
	pkg := newPackage(cfg, name, version, checksums)
	if cfg.AurBin != nil {
		pkg.Conflicts = cfg.AurBin.Conflicts
	}

	ws, err := env.Pipeline.PrepareGitRepo(ctx, string(a.Kind()), aurSSHRemote(name))
	if err != nil {
		return err
	}
	if err := ws.WriteAndAdd(ctx, "PKGBUILD", publish.Static(manifest.BinPKGBUILD(pkg))); err != nil {
		return err
	}
	if err := ws.WriteAndAdd(ctx, ".SRCINFO", publish.Static(manifest.BinSRCINFO(pkg))); err != nil {
		return err
	}
	return ws.CommitAndPush(ctx, version)
}

func (aurBin) Instructions(cfg *config.AppConfig) ([]string, error) {
	return codeBlock("AUR", "https://aur.archlinux.org", "yay -S "+AurBinName(cfg)), nil
}
