package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bpguide/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [section]",
	Short: "Browse the guide in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		opts := tui.Options{Title: cfg.Title}
		if len(args) == 1 {
			opts.Section = args[0]
		}
		opts.Style, _ = cmd.Flags().GetString("style")
		return tui.Run(reg, opts)
	},
}

func init() {
	browseCmd.Flags().String("style", "", "glamour style (dark, light, dracula, notty); detected when empty")
	rootCmd.AddCommand(browseCmd)
}
