package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bpguide/internal/config"
	"github.com/ziadkadry99/bpguide/internal/guide"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize bpguide configuration with an interactive wizard",
	Long:  `Runs an interactive wizard and writes a .bpguide.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := guide.Load("", "")
		if err != nil {
			return err
		}
		var ids []string
		for _, s := range reg.Catalog().Sections() {
			ids = append(ids, s.ID)
		}
		_, err = config.RunWizard(cfgFile, ids)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
