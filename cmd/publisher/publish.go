package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/repositories"
	"github.com/termapps/publisher/internal/version"
)

// confirmPublish asks before pushing for real; swapped in tests.
var confirmPublish = func(title string) (bool, error) {
	confirmed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&confirmed),
		),
	).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return confirmed, err
}

type publishOptions struct {
	noDryRun    bool
	yes         bool
	keepWorkdir bool
}

func newPublishCmd(opts *globalOptions) *cobra.Command {
	pubOpts := &publishOptions{}
	cmd := &cobra.Command{
		Use:   messages.PublishUse,
		Short: messages.PublishShort,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(messages.PublishRequiresVer)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, opts, pubOpts, args[0], args[1:])
		},
	}
	cmd.Flags().BoolVar(&pubOpts.noDryRun, "no-dry-run", false, messages.PublishFlagNoDryRun)
	cmd.Flags().BoolVarP(&pubOpts.yes, "yes", "y", false, messages.PublishFlagYes)
	cmd.Flags().BoolVar(&pubOpts.keepWorkdir, "keep-workdir", false, messages.PublishFlagKeep)
	return cmd
}

func runPublish(cmd *cobra.Command, opts *globalOptions, pubOpts *publishOptions, rawVersion string, selected []string) (err error) {
	logger := opts.logger(cmd.ErrOrStderr())
	ver, err := version.Normalize(rawVersion)
	if err != nil {
		return err
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	repos, err := selectRepositories(selected, cfg, logger)
	if err != nil {
		return err
	}
	kinds := repositories.KindsOf(repos)
	repositories.ResolveConflicts(kinds, cfg)

	dryRun := !pubOpts.noDryRun
	if !dryRun && !pubOpts.yes && isInteractive() {
		names := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			names = append(names, string(kind))
		}
		ok, err := confirmPublish(fmt.Sprintf(messages.PublishConfirmFmt, cfg.Name, ver, strings.Join(names, ", ")))
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(messages.PublishAborted)
		}
	}

	root, err := config.ResolveWorkdir(opts.workdir)
	if err != nil {
		return err
	}
	runner := newRunner()
	pipeline := publish.New(runner, root, dryRun, logger, cmd.OutOrStdout())
	unlock, err := pipeline.Lock()
	if err != nil {
		return err
	}
	defer unlock()
	if !pubOpts.keepWorkdir {
		defer func() {
			if cleanupErr := pipeline.Cleanup(); cleanupErr != nil && err == nil {
				err = cleanupErr
			}
		}()
	}

	env := newEnv(runner, pipeline, logger)
	ctx := commandContext(cmd)
	for _, repo := range repos {
		logger.Info(fmt.Sprintf(messages.PublishRepositoryFmt, repo.Name()), "version", ver)
		if err := repo.Publish(ctx, env, cfg, ver); err != nil {
			return err
		}
	}

	if skipped := pipeline.Skipped(); len(skipped) > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.PublishDryRunSummaryFmt+"\n", publish.SkippedSummary(skipped))
		return nil
	}
	logger.Info(fmt.Sprintf(messages.PublishDoneFmt, cfg.Name, ver))
	return nil
}
