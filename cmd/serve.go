package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/on-the-issues/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the comparison page",
	Long: `Starts an HTTP server that renders the comparison page from the dataset on
every request, with a JSON API under /api. With --watch the dataset file is
reloaded on change and open pages refresh themselves.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("watch", false, "reload the dataset and refresh pages when it changes")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow cross-origin API requests from any origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Server.Port
	}
	watch := cfg.Server.Watch
	if cmd.Flags().Changed("watch") {
		watch, _ = cmd.Flags().GetBool("watch")
	}
	allowAll := cfg.Server.AllowAllOrigins
	if cmd.Flags().Changed("allow-all-origins") {
		allowAll, _ = cmd.Flags().GetBool("allow-all-origins")
	}

	srv := server.New(server.Config{
		Port:       port,
		AllowAll:   allowAll,
		LiveReload: watch,
	}, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		dw, err := server.NewDataWatcher(cfg.DataFile, logger, srv.SetStore)
		if err != nil {
			return err
		}
		go dw.Run(ctx)
		logger.Info("watching dataset", zap.String("path", cfg.DataFile))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	fmt.Printf("Preview at http://localhost:%d (Ctrl+C to stop)\n", port)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
