package formula

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/scalechords/chord"
	"github.com/jsphweid/scalechords/note"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported formula file format")

type tomlFormulas struct {
	Chords []struct {
		Name      string   `toml:"name"`
		Intervals []string `toml:"intervals"`
	} `toml:"chord"`
}

// Load reads a chord formula table, picking the decoder from the file
// extension (.yaml, .yml or .toml).
func Load(path string) (*chord.Formulas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading formulas failed: %w", err)
	}

	var formulas *chord.Formulas
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		formulas, err = ParseYAML(data)
	case ".toml":
		formulas, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return formulas, nil
}

// ParseYAML expects a mapping of chord name to interval list:
//
//	Maj: [1, 3, 5]
//	m: [1, b3, 5]
//
// Mapping order is kept and labels are read as written, so 5 stays "5".
func ParseYAML(data []byte) (*chord.Formulas, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return chord.NewFormulas()
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of chord names", root.Line)
	}

	var formulas []chord.Formula
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: %q: expected a list of intervals", value.Line, key.Value)
		}
		intervals := make([]note.Interval, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: %q: interval must be a scalar", item.Line, key.Value)
			}
			interval, err := note.ParseInterval(item.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", item.Line, key.Value, err)
			}
			intervals = append(intervals, interval)
		}
		formulas = append(formulas, chord.Formula{Name: key.Value, Intervals: intervals})
	}
	return chord.NewFormulas(formulas...)
}

// ParseTOML expects an array of tables so the order survives decoding:
//
//	[[chord]]
//	name = "Maj"
//	intervals = ["1", "3", "5"]
func ParseTOML(data []byte) (*chord.Formulas, error) {
	var raw tomlFormulas
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}

	formulas := make([]chord.Formula, 0, len(raw.Chords))
	for i, c := range raw.Chords {
		if c.Name == "" {
			return nil, fmt.Errorf("chord #%d: name not set", i+1)
		}
		intervals := make([]note.Interval, 0, len(c.Intervals))
		for _, s := range c.Intervals {
			interval, err := note.ParseInterval(s)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", c.Name, err)
			}
			intervals = append(intervals, interval)
		}
		formulas = append(formulas, chord.Formula{Name: c.Name, Intervals: intervals})
	}
	return chord.NewFormulas(formulas...)
}
