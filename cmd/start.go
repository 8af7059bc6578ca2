package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"envserve/core/assets"
	"envserve/core/config"
	"envserve/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the file server",
	Long:  `Starts the HTTP server on the configured address and serves the configured root.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runServer(ctx context.Context) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	root, err := assets.New(ctx, cfg.Server, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open serving root: %w", err)
	}

	values := cfg.Vite.Values()
	if missing := values.Missing(); len(missing) > 0 {
		logg.Warn("Injected configuration values are empty", zap.Strings("missing", missing))
	}

	app, err := newApp(logg, loaderFor(cfg, root, values, logg))
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Server running",
			zap.String("addr", cfg.Server.Addr()),
			zap.String("source", cfg.Server.Source),
			zap.String("root", cfg.Server.Root),
		)
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sig:
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
