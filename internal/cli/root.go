package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/luban-cli/luban/internal/branding"
	"github.com/luban-cli/luban/internal/config"
	"github.com/luban-cli/luban/internal/creator"
	"github.com/luban-cli/luban/internal/logger"

	// Built-in plugin generators register themselves on import.
	_ "github.com/luban-cli/luban/internal/plugins/service"
	_ "github.com/luban-cli/luban/internal/plugins/unittest"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	debug bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds React applications. It asks which features you want,
writes package.json, installs the CLI plugins and lets each plugin generate its files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug output")
}

// Execute runs the root command with build info injected via ldflags.
// Ctrl-C cancels the running command and its child processes.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, creator.ErrCancelled) {
		logger.Log()
		logger.Error(err.Error())
	}
	return err
}
