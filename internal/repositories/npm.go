package repositories

import (
	"context"
	"path"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/manifest"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/release"
)

type npm struct{}

func (npm) Kind() Kind { return KindNPM }
func (npm) Name() string { return "NPM" }

func (npm) Check(ctx context.Context, env *Env, results *check.Results, _ *config.AppConfig) error {
	check.CheckNPM(ctx, env.Runner, results)
	check.CheckNPMLogin(ctx, env.Runner, results)
	return nil
}

// Publish renders one binary distribution package per platform plus the main
// package in a plain workspace. Platform packages are published before the
// main package that depends on them.
func (n npm) Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error {
	name := NPMName(cfg)
	checksums, err := resolveChecksums(ctx, env, cfg, version, manifest.NPMPlatformTargets())
	if err != nil {
		return err
	}
	pkg := newPackage(cfg, name, version, checksums)

	ws, err := env.Pipeline.PrepareDir(string(n.Kind()))
	if err != nil {
		return err
	}
	logger := env.logger().With("repository", n.Kind())

	var packages []string
	for _, platform := range manifest.NPMPlatforms() {
		dir := platform.Suffix()
		if err := ws.Write(path.Join(dir, "package.json"), func() ([]string, error) {
			return manifest.NPMPlatformPackageJSON(pkg, platform)
		}); err != nil {
			return err
		}
		dest, err := ws.Path(path.Join(dir, "bin"))
		if err != nil {
			return err
		}
		asset := release.Asset{Repository: cfg.Repository, Name: cfg.Name, Version: version, Target: platform.Target}
		if err := env.Downloader.FetchAsset(ctx, asset, checksums[platform.Target], dest); err != nil {
			return err
		}
		packages = append(packages, dir)
	}

	mainDir := manifest.NPMMainDir
	if err := ws.Write(path.Join(mainDir, "package.json"), func() ([]string, error) {
		return manifest.NPMMainPackageJSON(pkg)
	}); err != nil {
		return err
	}
	if err := ws.Write(path.Join(mainDir, "constants.js"), publish.Static(manifest.NPMConstantsJS(pkg))); err != nil {
		return err
	}
	for _, file := range manifest.NPMTemplateFiles {
		if err := ws.Write(path.Join(mainDir, file), func() ([]string, error) {
			return manifest.NPMTemplate(file)
		}); err != nil {
			return err
		}
	}
	packages = append(packages, mainDir)

	if env.Pipeline.DryRun {
		logger.Warn(messages.PublishDryRunNotice)
		env.Pipeline.Skip(string(n.Kind()))
		return nil
	}
	for _, dir := range packages {
		logger.Debug("npm publish", "package", dir)
		if err := ws.Run(ctx, dir, "npm", "publish"); err != nil {
			return err
		}
	}
	return nil
}

func (npm) Instructions(cfg *config.AppConfig) ([]string, error) {
	return codeBlock("NPM", "https://npmjs.com", "npm install -g "+NPMName(cfg)), nil
}
