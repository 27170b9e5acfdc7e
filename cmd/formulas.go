package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formulasPath string

func init() {
	rootCmd.AddCommand(formulasCmd)
	formulasCmd.Flags().StringVarP(&formulasPath, "formulas", "f", "", "YAML or TOML chord formula file")
}

var formulasCmd = &cobra.Command{
	Use:   "formulas",
	Short: "Lists the chord formulas in matching order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formulas, err := loadFormulas(formulasPath)
		if err != nil {
			return err
		}
		for _, f := range formulas.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", f.Name, labelsOf(f.Intervals))
		}
		return nil
	},
}
