package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termapps/publisher/internal/instructions"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/repositories"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.GenerateUse,
		Short: messages.GenerateShort,
	}
	cmd.AddCommand(newInstructionsCmd(opts))
	return cmd
}

func newInstructionsCmd(opts *globalOptions) *cobra.Command {
	genOpts := instructions.DefaultOptions()
	cmd := &cobra.Command{
		Use:   messages.InstructionsUse,
		Short: messages.InstructionsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd.ErrOrStderr())
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			repos, err := repositories.Build(nil, cfg.Exclude)
			if err != nil {
				return err
			}
			logger.Info(fmt.Sprintf(messages.InstructionsWrittenFmt, args[0]))
			return instructions.WriteFile(args[0], cfg, repos, genOpts)
		},
	}
	cmd.Flags().StringVar(&genOpts.StartMarker, "start-marker", genOpts.StartMarker, messages.InstructionsFlagStartMarker)
	cmd.Flags().StringVar(&genOpts.EndMarker, "end-marker", genOpts.EndMarker, messages.InstructionsFlagEndMarker)
	cmd.Flags().StringVar(&genOpts.Prefix, "prefix", genOpts.Prefix, messages.InstructionsFlagPrefix)
	return cmd
}
