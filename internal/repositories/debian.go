package repositories

import (
	"context"
	"fmt"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/targets"
)

var debianTargets = []targets.Target{targets.X86_64UnknownLinuxGnu, targets.I686UnknownLinuxGnu}

// debian verifies that the Linux release assets exist. No apt repository is
// written or pushed.
type debian struct{}

func (debian) Kind() Kind { return KindDebian }
func (debian) Name() string { return "Debian" }

func (debian) Check(ctx context.Context, env *Env, results *check.Results, _ *config.AppConfig) error {
	check.CheckGit(ctx, env.Runner, results)
	return nil
}

func (d debian) Publish(ctx context.Context, env *Env, cfg *config.AppConfig, version string) error {
	if _, err := resolveChecksums(ctx, env, cfg, version, debianTargets); err != nil {
		return err
	}
	logger := env.logger().With("repository", d.Kind(), "version", version)
	logger.Info(fmt.Sprintf(messages.PublishDebianNoRemoteFmt, DebianName(cfg)))
	if env.Pipeline.DryRun {
		logger.Warn(messages.PublishDryRunNotice)
		env.Pipeline.Skip(string(d.Kind()))
	}
	return nil
}

func (debian) Instructions(cfg *config.AppConfig) ([]string, error) {
	return codeBlock("Debian", "https://www.debian.org",
		fmt.Sprintf("sudo apt-add-repository https://raw.githubusercontent.com/%s/ppa/master", owner(cfg.Repository)),
		"sudo apt-get update",
		"sudo apt-get install "+DebianName(cfg),
	), nil
}
