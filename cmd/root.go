package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lab-launcher/core/browser"
	"lab-launcher/core/config"
	"lab-launcher/core/launcher"
	"lab-launcher/core/logger"
	"lab-launcher/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd serves the directory of the executable when called without arguments.
var RootCmd = &cobra.Command{
	Use:   "lab-launcher",
	Short: "Serve the Experiment Manager front-end from this directory",
	Long: `lab-launcher is the fallback launcher for the Experiment Manager.
It serves the files next to the executable on http://localhost:8080 and
opens the page in the default browser. Stop it with Ctrl+C.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:              runLauncher,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		launcher.PrintFailure(RootCmd.OutOrStdout(), err)
		os.Exit(1)
	}
}

func runLauncher(cmd *cobra.Command, _ []string) error {
	// 1. Serving root
	root, err := launcher.EnterRoot()
	if err != nil {
		return err
	}

	// 2. Configuration and logger, read from outside the served tree
	// Without a user config dir only the environment is read
	cfgDir, _ := config.Dir()
	cfg, err := config.LoadConfig(cfgDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()
	zap.ReplaceGlobals(logg)

	browser.Discard()

	// 3. Ctrl+C and SIGTERM end the run cleanly
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := launcher.New(
		server.Config{Port: server.DefaultPort, Root: root},
		launcher.WithOutput(cmd.OutOrStdout()),
		launcher.WithLogger(logg),
	)
	return l.Run(ctx)
}
