package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/scalechords/chord"
	"github.com/jsphweid/scalechords/model"
	"github.com/jsphweid/scalechords/note"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type matchOptions struct {
	key      string
	scale    string
	mode     int
	degree   int
	formulas string
	json     bool
	noColor  bool
}

var matchOpts matchOptions

func init() {
	rootCmd.AddCommand(matchCmd)
	addScaleFlags(matchCmd, &matchOpts)
	matchCmd.Flags().IntVarP(&matchOpts.degree, "degree", "d", 1, "scale degree the chords are built on (1-based)")
}

// addScaleFlags registers the flags shared by match and harmonize.
func addScaleFlags(c *cobra.Command, o *matchOptions) {
	c.Flags().StringVarP(&o.key, "key", "k", "", "key, as a note name or 0-11 (default from config)")
	c.Flags().StringVarP(&o.scale, "scale", "s", "", "scale name or interval list such as \"1,2,b3,4,5,b6,b7\" (default from config)")
	c.Flags().IntVarP(&o.mode, "mode", "m", 0, "mode of the scale (1-based, default from config)")
	c.Flags().StringVarP(&o.formulas, "formulas", "f", "", "YAML or TOML chord formula file")
	c.Flags().BoolVar(&o.json, "json", false, "print JSON")
	c.Flags().BoolVar(&o.noColor, "no-color", false, "disable colours")
}

func (o *matchOptions) applyDefaults(c *cobra.Command) {
	if !c.Flags().Changed("key") {
		o.key = cfg.Match.Key
	}
	if !c.Flags().Changed("scale") {
		o.scale = cfg.Match.Scale
	}
	if !c.Flags().Changed("mode") {
		o.mode = cfg.Match.Mode
	}
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Lists the chords built on one scale degree",
	Example: `  scalechords match --key C --scale major --degree 2
  scalechords match -k Bb -s "1,2,b3,4,5,b6,7" -d 5 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		matchOpts.applyDefaults(cmd)
		return runMatch(cmd.OutOrStdout(), matchOpts)
	},
}

func runMatch(w io.Writer, o matchOptions) error {
	key, intervals, err := parseInput(o.key, o.scale, nil)
	if err != nil {
		return err
	}
	formulas, err := loadFormulas(o.formulas)
	if err != nil {
		return err
	}

	chords, err := chord.MatchChords(key, intervals, o.mode, o.degree, formulas)
	if err != nil {
		return err
	}
	log.Debug("matched",
		zap.Int("key", key),
		zap.String("scale", o.scale),
		zap.Int("mode", o.mode),
		zap.Int("degree", o.degree),
		zap.Int("chords", len(chords)),
	)

	if o.json {
		return json.NewEncoder(w).Encode(chords)
	}

	au := aurora.NewAurora(!o.noColor)
	fmt.Fprintf(w, "%s, degree %d\n", au.Bold(describe(key, o.scale, intervals, o.mode)), o.degree)
	printChords(w, au, chords)
	return nil
}

func printChords(w io.Writer, au aurora.Aurora, chords []model.Chord) {
	if len(chords) == 0 {
		fmt.Fprintf(w, "  %s\n", au.Gray(12, "no chords"))
		return
	}
	for _, c := range chords {
		notes := make([]string, len(c.Formula))
		for i, n := range c.Formula {
			notes[i] = note.IntegerToNote(n)
		}
		fmt.Fprintf(w, "  %s %-14s %v\n", au.Green(fmt.Sprintf("%-12s", c.Name)), chord.CreateChordKey(c.Formula), notes)
	}
}
