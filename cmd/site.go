package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bpguide/internal/progress"
	"github.com/ziadkadry99/bpguide/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the guide as a static website",
	Long:  `Writes a self-contained static site: one page per section, shared assets and a search index. Navigation and accordions work in the page without a server.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	siteCmd.Flags().Int("port", 8080, "port for the local dev server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	// Determine output directory.
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	generator := site.NewSiteGenerator(reg, outputDir, siteOptions())
	generator.Reporter = progress.NewReporter("Writing pages")
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	// Optionally serve the site.
	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Serving at http://localhost:%d — press Ctrl+C to stop\n", port)
		if err := site.Serve(ctx, outputDir, port, openBrowser, logger); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
