package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/scalechords/note"
	"golang.org/x/exp/slices"
)

var ErrUnknownScale = errors.New("unknown scale")

type Named struct {
	Name      string
	Intervals []note.Interval
}

var catalogue = []Named{
	{Name: "major", Intervals: []note.Interval{"1", "2", "3", "4", "5", "6", "7"}},
	{Name: "natural minor", Intervals: []note.Interval{"1", "2", "b3", "4", "5", "b6", "b7"}},
	{Name: "harmonic minor", Intervals: []note.Interval{"1", "2", "b3", "4", "5", "b6", "7"}},
	{Name: "melodic minor", Intervals: []note.Interval{"1", "2", "b3", "4", "5", "6", "7"}},
	{Name: "major pentatonic", Intervals: []note.Interval{"1", "2", "3", "5", "6"}},
	{Name: "minor pentatonic", Intervals: []note.Interval{"1", "b3", "4", "5", "b7"}},
	{Name: "blues", Intervals: []note.Interval{"1", "b3", "4", "b5", "5", "b7"}},
	{Name: "whole tone", Intervals: []note.Interval{"1", "2", "3", "b5", "#5", "b7"}},
	{Name: "chromatic", Intervals: []note.Interval{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}},
}

var modeNames = []string{
	"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian",
}

func Names() []string {
	res := make([]string, len(catalogue))
	for i, s := range catalogue {
		res[i] = s.Name
	}
	return res
}

// Lookup is case insensitive; "-" and "_" may stand in for spaces.
func Lookup(name string) ([]note.Interval, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)
	if normalized == "minor" {
		normalized = "natural minor"
	}
	for _, s := range catalogue {
		if s.Name == normalized {
			return slices.Clone(s.Intervals), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

// Parse resolves a catalogue name or falls back to a list of interval labels.
func Parse(s string) ([]note.Interval, error) {
	if res, err := Lookup(s); err == nil {
		return res, nil
	}
	res, err := note.ParseIntervals(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a scale name nor an interval list", ErrUnknownScale, s)
	}
	if len(res) == 0 {
		return nil, ErrEmptyScale
	}
	return res, nil
}

// ModeName names the church modes of the major scale. Any other scale gets "".
func ModeName(intervals []note.Interval, mode int) string {
	if mode <= 0 || !slices.Equal(intervals, catalogue[0].Intervals) {
		return ""
	}
	return modeNames[(mode-1)%len(modeNames)]
}
