package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bpguide/internal/config"
	"github.com/ziadkadry99/bpguide/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "bpguide",
	Short: "Oracle Unifier business process guide",
	Long: `bpguide serves the Oracle Unifier BP master guide as a single-page site
with live navigation, exports it as a static site, browses it in the
terminal, and exposes it to AI agents over MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == initCmd || cmd == versionCmd {
			return nil
		}
		c, err := loadConfig()
		if err != nil {
			return err
		}
		level := c.Log.Level
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level, c.Log.Format)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
