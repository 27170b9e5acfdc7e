package cmd

import (
	"fmt"

	"github.com/jsphweid/scalechords/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists the named scales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range scale.Names() {
			intervals, err := scale.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%-18s %s\n", name, labelsOf(intervals))
			for mode := 1; mode <= len(intervals); mode++ {
				if modeName := scale.ModeName(intervals, mode); modeName != "" {
					fmt.Fprintf(w, "  mode %d: %s\n", mode, modeName)
				}
			}
		}
		return nil
	},
}
