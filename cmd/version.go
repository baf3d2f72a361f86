package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bpguide/internal/guide"
)

// Version is set via ldflags at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bpguide release and the guide content it bundles",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := guide.Load("", "")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "bpguide %s (%d sections, %d authored)\n",
			Version, len(reg.Catalog().Sections()), len(reg.AuthoredIDs()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
