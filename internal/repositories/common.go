package repositories

import (
	"context"
	"strings"

	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/manifest"
	"github.com/termapps/publisher/internal/release"
	"github.com/termapps/publisher/internal/targets"
)

func githubRemote(repo string) string {
	return "git@github.com:" + repo
}

func resolveChecksums(ctx context.Context, env *Env, cfg *config.AppConfig, version string, want []targets.Target) (release.Checksums, error) {
	return env.Resolver.Resolve(ctx, cfg.Name, version, cfg.Repository, want)
}

func newPackage(cfg *config.AppConfig, name string, version string, checksums release.Checksums) manifest.Package {
	return manifest.Package{
		Name:           name,
		Binary:         cfg.Name,
		Version:        version,
		Description:    cfg.Description,
		Homepage:       cfg.Homepage,
		License:        cfg.License,
		Repository:     cfg.Repository,
		RepositoryName: cfg.RepositoryName(),
		Checksums:      checksums,
	}
}

// codeBlock wraps commands in a fenced block under a "With [label](url)" line.
func codeBlock(label string, url string, commands ...string) []string {
	lines := []string{"With [" + label + "](" + url + ")", "", "```"}
	lines = append(lines, commands...)
	return append(lines, "```")
}

func owner(repo string) string {
	head, _, _ := strings.Cut(repo, "/")
	return head
}

func repoName(repo string) string {
	_, tail, found := strings.Cut(repo, "/")
	if !found {
		return repo
	}
	return tail
}
