package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/termapps/publisher/internal/command"
	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/git"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/publish"
	"github.com/termapps/publisher/internal/release"
	"github.com/termapps/publisher/internal/repositories"
	"github.com/termapps/publisher/internal/terminal"
)

const (
	flagConfig       = "config"
	flagWorkdir      = "workdir"
	flagVerbose      = "verbose"
	flagVerboseShort = "v"
	flagQuiet        = "quiet"
	flagQuietShort   = "q"
	flagColor        = "color"
)

// Collaborators swapped in tests.
var (
	newRunner     = func() command.Runner { return command.Exec{} }
	httpClient    = http.DefaultClient
	releaseHost   = release.DefaultHost
	isInteractive = terminal.IsInteractive
	useColor      = terminal.UseColor
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	workdir    string
	verbose    bool
	quiet      bool
	color      string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := useColor(opts.color)
			if err != nil {
				return err
			}
			color.NoColor = !enabled
			return nil
		},
	}
	cmd.Flags().BoolP("version", "V", false, messages.RootVersion)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, flagConfig, config.DefaultConfigFile, messages.FlagConfig)
	flags.StringVar(&opts.workdir, flagWorkdir, "", messages.FlagWorkdir)
	flags.BoolVarP(&opts.verbose, flagVerbose, flagVerboseShort, false, messages.FlagVerbose)
	flags.BoolVarP(&opts.quiet, flagQuiet, flagQuietShort, false, messages.FlagQuiet)
	flags.StringVar(&opts.color, flagColor, terminal.ColorAuto, messages.FlagColor)
	cmd.MarkFlagsMutuallyExclusive(flagVerbose, flagQuiet)

	cmd.AddCommand(
		newCheckCmd(opts),
		newPublishCmd(opts),
		newGenerateCmd(opts),
	)
	return cmd
}

// logger returns a leveled logger on w without timestamps.
func (o *globalOptions) logger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	switch {
	case o.verbose:
		level = log.DebugLevel
	case o.quiet:
		level = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{Level: level})
}

// loadConfig reads the config file selected by --config.
func (o *globalOptions) loadConfig() (*config.AppConfig, error) {
	return config.Load(o.configPath)
}

// selectRepositories resolves the repositories named in args, or every
// repository not excluded by the config when args is empty. Explicitly
// selected repositories that the config excludes are still run, with a warning.
func selectRepositories(args []string, cfg *config.AppConfig, logger *log.Logger) ([]repositories.Repository, error) {
	kinds, err := repositories.ParseKinds(args)
	if err != nil {
		return nil, err
	}
	for _, kind := range repositories.SelectedButExcluded(kinds, cfg.Exclude) {
		logger.Warn(fmt.Sprintf(messages.SelectedButExcludedFmt, kind))
	}
	return repositories.Build(kinds, cfg.Exclude)
}

func newEnv(runner command.Runner, pipeline *publish.Pipeline, logger *log.Logger) *repositories.Env {
	return &repositories.Env{
		Runner:     runner,
		Git:        git.New(runner),
		Resolver:   &release.Resolver{Client: httpClient, Host: releaseHost},
		Downloader: &release.Downloader{Client: httpClient, Host: releaseHost},
		Pipeline:   pipeline,
		Logger:     logger,
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
