package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/scalechords/chord"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

var harmonizeOpts matchOptions

func init() {
	rootCmd.AddCommand(harmonizeCmd)
	addScaleFlags(harmonizeCmd, &harmonizeOpts)
}

var harmonizeCmd = &cobra.Command{
	Use:     "harmonize",
	Short:   "Lists the chords built on every degree of a scale",
	Example: `  scalechords harmonize --key A --scale "harmonic minor"`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		harmonizeOpts.applyDefaults(cmd)
		return runHarmonize(cmd.OutOrStdout(), harmonizeOpts)
	},
}

func runHarmonize(w io.Writer, o matchOptions) error {
	key, intervals, err := parseInput(o.key, o.scale, nil)
	if err != nil {
		return err
	}
	formulas, err := loadFormulas(o.formulas)
	if err != nil {
		return err
	}

	degrees, err := chord.Harmonize(key, intervals, o.mode, formulas)
	if err != nil {
		return err
	}

	if o.json {
		return json.NewEncoder(w).Encode(degrees)
	}

	au := aurora.NewAurora(!o.noColor)
	fmt.Fprintln(w, au.Bold(describe(key, o.scale, intervals, o.mode)))
	for _, d := range degrees {
		header := fmt.Sprintf("%d. %s", d.Degree, d.Root)
		if d.Mode != "" {
			header += fmt.Sprintf(" (%s)", d.Mode)
		}
		fmt.Fprintln(w, au.Cyan(header))
		printChords(w, au, d.Chords)
	}
	return nil
}
