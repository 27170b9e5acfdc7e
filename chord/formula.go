package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/scalechords/note"
	"golang.org/x/exp/slices"
)

var ErrDuplicateFormula = errors.New("duplicate chord formula")

// Formula lists the intervals of a chord quality relative to its own root.
type Formula struct {
	Name      string
	Intervals []note.Interval
}

// Formulas is an ordered, read-only table of chord formulas. Matching
// reports chords in the order they were given to NewFormulas.
type Formulas struct {
	formulas []Formula
	index    map[string]int
}

func NewFormulas(formulas ...Formula) (*Formulas, error) {
	f := &Formulas{
		formulas: make([]Formula, 0, len(formulas)),
		index:    make(map[string]int, len(formulas)),
	}
	for _, formula := range formulas {
		if _, ok := f.index[formula.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFormula, formula.Name)
		}
		if _, err := note.IntervalsToIntegers(formula.Intervals); err != nil {
			return nil, fmt.Errorf("formula %q: %w", formula.Name, err)
		}
		f.index[formula.Name] = len(f.formulas)
		f.formulas = append(f.formulas, Formula{
			Name:      formula.Name,
			Intervals: slices.Clone(formula.Intervals),
		})
	}
	return f, nil
}

func mustFormulas(formulas ...Formula) *Formulas {
	f, err := NewFormulas(formulas...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formulas) Len() int {
	return len(f.formulas)
}

func (f *Formulas) Get(name string) (Formula, bool) {
	i, ok := f.index[name]
	if !ok {
		return Formula{}, false
	}
	return f.at(i), true
}

// All returns copies, in table order.
func (f *Formulas) All() []Formula {
	res := make([]Formula, len(f.formulas))
	for i := range f.formulas {
		res[i] = f.at(i)
	}
	return res
}

func (f *Formulas) at(i int) Formula {
	return Formula{
		Name:      f.formulas[i].Name,
		Intervals: slices.Clone(f.formulas[i].Intervals),
	}
}

var defaultFormulas = mustFormulas(
	Formula{Name: "Maj", Intervals: []note.Interval{"1", "3", "5"}},
	Formula{Name: "m", Intervals: []note.Interval{"1", "b3", "5"}},
	Formula{Name: "dim", Intervals: []note.Interval{"1", "b3", "b5"}},
	Formula{Name: "aug", Intervals: []note.Interval{"1", "3", "#5"}},
	Formula{Name: "sus2", Intervals: []note.Interval{"1", "2", "5"}},
	Formula{Name: "sus4", Intervals: []note.Interval{"1", "4", "5"}},
	Formula{Name: "add4", Intervals: []note.Interval{"1", "3", "4", "5"}},
	Formula{Name: "Maj7", Intervals: []note.Interval{"1", "3", "5", "7"}},
	Formula{Name: "m/Maj7", Intervals: []note.Interval{"1", "b3", "5", "7"}},
	Formula{Name: "Dominant 7", Intervals: []note.Interval{"1", "3", "5", "b7"}},
	// the diminished seventh is spelled with a 6 (its enharmonic bb7)
	Formula{Name: "dim7", Intervals: []note.Interval{"1", "b3", "b5", "6"}},
	Formula{Name: "5", Intervals: []note.Interval{"1", "5"}},
	Formula{Name: "-5", Intervals: []note.Interval{"1", "b5"}},
)

func DefaultFormulas() *Formulas {
	return defaultFormulas
}
