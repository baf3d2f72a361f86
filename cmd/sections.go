package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bpguide/internal/guide"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the guide's sections by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reg.Catalog().Groups())
		}

		for _, g := range reg.Catalog().Groups() {
			fmt.Println(g.Category.Title)
			for _, s := range g.Sections {
				status := ""
				if _, ok := reg.Authored(s.ID); !ok {
					status = "  (coming soon)"
				}
				if s.ID == reg.DefaultID() {
					status += "  [default]"
				}
				fmt.Printf("  %s %-28s %s%s\n", guide.Glyph(s.Icon), s.Title, s.ID, status)
			}
			fmt.Println()
		}
		fmt.Printf("%d sections, %d authored\n", reg.Catalog().Len(), len(reg.AuthoredIDs()))
		return nil
	},
}

func init() {
	sectionsCmd.Flags().Bool("json", false, "print the grouped catalog as JSON")
	rootCmd.AddCommand(sectionsCmd)
}
