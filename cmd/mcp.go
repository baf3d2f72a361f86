package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/ziadkadry99/bpguide/internal/mcp"
	"github.com/ziadkadry99/bpguide/internal/search"
	"github.com/ziadkadry99/bpguide/internal/site"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to list, read and search the guide.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		renderer, err := site.NewRenderer(reg, siteOptions())
		if err != nil {
			return fmt.Errorf("preparing pages: %w", err)
		}
		index, err := search.Build(context.Background(), renderer)
		if err != nil {
			return fmt.Errorf("building search index: %w", err)
		}
		defer index.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logger.Info("bpguide MCP server started on stdio", zap.Int("sections", reg.Catalog().Len()))

		srv := mcpserver.NewServer(reg, index)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
