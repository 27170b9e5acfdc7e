package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/scalechords/constants"
	"github.com/jsphweid/scalechords/model"
	"github.com/jsphweid/scalechords/note"
	"github.com/jsphweid/scalechords/scale"
	"golang.org/x/exp/slices"
)

var ErrInvalidDegree = errors.New("degree out of range")

// CreateChordKey joins the sorted notes with dashes, e.g. "2-5-9".
func CreateChordKey(notes []int) string {
	sorted := slices.Clone(notes)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%v", n)
	}
	return strings.Join(parts, "-")
}

// stepsFrom returns the absolute root of degree and the scale steps above
// it, relative to that root, spanning two octaves of the moded scale.
func stepsFrom(key int, intervals []note.Interval, mode, degree int) (int, []int, error) {
	if len(intervals) == 0 {
		return 0, nil, scale.ErrEmptyScale
	}
	if mode <= 0 {
		return 0, nil, fmt.Errorf("%w: %d", scale.ErrInvalidMode, mode)
	}
	if degree <= 0 || degree > len(intervals) {
		return 0, nil, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidDegree, degree, len(intervals))
	}

	semitones, err := note.IntervalsToIntegers(intervals)
	if err != nil {
		return 0, nil, err
	}
	moded, err := scale.RotateToMode(semitones, mode)
	if err != nil {
		return 0, nil, err
	}

	extended := make([]int, 0, 2*len(moded))
	extended = append(extended, moded...)
	extended = append(extended, scale.TransposeToKey(moded, constants.OctaveSize, true)...)
	extended = extended[degree-1:]
	extended = scale.TransposeToKey(extended, key, true)

	root := extended[0]
	return root, scale.TransposeToKey(extended, -root, true), nil
}

func match(key int, intervals []note.Interval, mode, degree int, formulas *Formulas) (int, []model.Chord, error) {
	if formulas == nil {
		formulas = defaultFormulas
	}
	root, steps, err := stepsFrom(key, intervals, mode, degree)
	if err != nil {
		return 0, nil, err
	}
	rootNote := note.IntegerToNote(root)

	chords := make([]model.Chord, 0)
	for _, formula := range formulas.formulas {
		offsets, err := note.IntervalsToIntegers(formula.Intervals)
		if err != nil {
			return 0, nil, err
		}
		if !containsAll(steps, offsets) {
			continue
		}
		chords = append(chords, model.Chord{
			Name:    rootNote + formula.Name,
			Formula: scale.TransposeToKey(offsets, root, true),
		})
	}
	return root, chords, nil
}

func containsAll(steps []int, offsets []int) bool {
	for _, o := range offsets {
		if !slices.Contains(steps, o) {
			return false
		}
	}
	return true
}

// MatchChords finds every formula whose intervals all land on a step of the
// scale (in the given mode) starting at degree, transposed to key. A nil
// formulas table means DefaultFormulas. Results keep the table order.
func MatchChords(key int, intervals []note.Interval, mode, degree int, formulas *Formulas) ([]model.Chord, error) {
	_, chords, err := match(key, intervals, mode, degree, formulas)
	return chords, err
}

// MatchChordsWithRoot is MatchChords that also names the note degree lands on.
func MatchChordsWithRoot(key int, intervals []note.Interval, mode, degree int, formulas *Formulas) (string, []model.Chord, error) {
	root, chords, err := match(key, intervals, mode, degree, formulas)
	if err != nil {
		return "", nil, err
	}
	return note.IntegerToNote(root), chords, nil
}

// Harmonize runs MatchChords for every degree of the scale.
func Harmonize(key int, intervals []note.Interval, mode int, formulas *Formulas) ([]model.Degree, error) {
	if len(intervals) == 0 {
		return nil, scale.ErrEmptyScale
	}
	res := make([]model.Degree, 0, len(intervals))
	for degree := 1; degree <= len(intervals); degree++ {
		root, chords, err := match(key, intervals, mode, degree, formulas)
		if err != nil {
			return nil, err
		}
		res = append(res, model.Degree{
			Degree: degree,
			Root:   note.IntegerToNote(root),
			Mode:   scale.ModeName(intervals, mode+degree-1),
			Chords: chords,
		})
	}
	return res, nil
}
