package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scalechords/chord"
	"github.com/jsphweid/scalechords/config"
	"github.com/jsphweid/scalechords/constants"
	"github.com/jsphweid/scalechords/formula"
	"github.com/jsphweid/scalechords/logger"
	"github.com/jsphweid/scalechords/note"
	"github.com/jsphweid/scalechords/scale"
	"github.com/jsphweid/scalechords/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string

	cfg = config.Default()
	log = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "scalechords",
	Short: "Finds the chords that fit a scale",
	Long: `Finds the chords whose notes all belong to a scale, starting from any
degree of any mode, in any key.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level = logLevel
		}
		cfg = c

		l, err := logger.New(cfg.Log.Level, cmd.Name() == "serve")
		if err != nil {
			return err
		}
		log = l
		log.Debug("config loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.GetConfigPath(), "path to the INI config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadFormulas returns the built-in table when path is empty.
func loadFormulas(path string) (*chord.Formulas, error) {
	if path == "" {
		return chord.DefaultFormulas(), nil
	}
	f, err := formula.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug("formulas loaded", zap.String("path", path), zap.Int("count", f.Len()))
	return f, nil
}

// parseInput resolves a key and either a scale name / label list or
// explicit labels.
func parseInput(key, scaleArg string, labels []string) (int, []note.Interval, error) {
	k, err := note.ParseKey(key)
	if err != nil {
		return 0, nil, err
	}

	if len(labels) > 0 {
		intervals, err := note.ParseIntervals(strings.Join(labels, ","))
		if err != nil {
			return 0, nil, err
		}
		return k, intervals, nil
	}

	intervals, err := scale.Parse(scaleArg)
	if err != nil {
		return 0, nil, err
	}
	return k, intervals, nil
}

func toStrings(intervals []note.Interval) []string {
	return util.Map(intervals, func(i note.Interval) string { return string(i) })
}

func labelsOf(intervals []note.Interval) string {
	return strings.Join(toStrings(intervals), " ")
}

func describe(key int, scaleArg string, intervals []note.Interval, mode int) string {
	desc := fmt.Sprintf("%s %s", note.IntegerToNote(key), scaleArg)
	if name := scale.ModeName(intervals, mode); name != "" {
		desc += fmt.Sprintf(", mode %d (%s)", mode, name)
	} else if mode != 1 {
		desc += fmt.Sprintf(", mode %d", mode)
	}
	return desc
}
