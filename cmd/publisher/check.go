package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/termapps/publisher/internal/check"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/repositories"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger := opts.logger(cmd.ErrOrStderr())
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			repos, err := selectRepositories(args, cfg, logger)
			if err != nil {
				return err
			}

			env := newEnv(newRunner(), nil, logger)
			results := check.NewResults()
			hasFail := false
			ctx := commandContext(cmd)
			for _, repo := range repos {
				id := string(repo.Kind())
				results.Begin(id)
				if err := repo.Check(ctx, env, results, cfg); err != nil {
					return err
				}
				entries := results.Report(id)
				printRepository(out, repo, entries)
				if check.Failed(entries) {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.CheckFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.CheckSuccessSummary))
			return nil
		},
	}
}

func printRepository(out io.Writer, repo repositories.Repository, entries []check.Entry) {
	_, _ = fmt.Fprintf(out, messages.CheckRepositoryHeaderFmt, repo.Name())
	for _, entry := range entries {
		printResult(out, entry)
	}
}

func printResult(out io.Writer, entry check.Entry) {
	var status string
	switch {
	case entry.Outcome.Passed():
		status = color.GreenString(messages.CheckStatusPassLabel)
	case entry.Outcome.Failed():
		status = color.RedString(messages.CheckStatusFailLabel)
	default:
		status = color.YellowString(messages.CheckStatusWarnLabel)
	}

	detail := ""
	if !entry.Outcome.Passed() {
		detail = fmt.Sprintf(messages.CheckResultMessageFmt, entry.Outcome.Message)
	}
	_, _ = fmt.Fprintf(out, messages.CheckResultLineFmt, status, entry.Name, detail)
}
