package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bpguide/internal/search"
	"github.com/ziadkadry99/bpguide/internal/server"
	"github.com/ziadkadry99/bpguide/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live guide",
	Long: `Starts the guide server: server-rendered pages, a websocket channel that
keeps each browser tab's navigation state on the server, keyword search and
a JSON API.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("allow-all-origins", false, "accept requests and websockets from any origin")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	renderer, err := site.NewRenderer(reg, siteOptions())
	if err != nil {
		return fmt.Errorf("preparing pages: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	index, err := search.Build(ctx, renderer)
	if err != nil {
		return fmt.Errorf("building search index: %w", err)
	}
	defer index.Close()

	port := cfg.Server.Port
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		port = p
	}
	allowAll := cfg.Server.AllowAllOrigins
	if cmd.Flags().Changed("allow-all-origins") {
		allowAll, _ = cmd.Flags().GetBool("allow-all-origins")
	}

	srv := server.New(server.Config{
		Port:              port,
		AllowAll:          allowAll,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ScrollThreshold:   cfg.ScrollThreshold,
	}, reg, renderer, index, logger)

	n, _ := index.Count(ctx)
	logger.Info("bpguide server starting",
		zap.String("version", Version),
		zap.Int("port", port),
		zap.Int("sections", reg.Catalog().Len()),
		zap.Int("authored", len(reg.AuthoredIDs())),
		zap.Int("indexed", n),
	)

	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(fmt.Sprintf("http://localhost:%d", port))
	}

	return srv.Run(ctx, 5*time.Second)
}
