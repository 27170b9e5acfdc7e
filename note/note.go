package note

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/scalechords/constants"
	"github.com/jsphweid/scalechords/util"
)

var (
	ErrUnknownNote     = errors.New("unknown note")
	ErrUnknownInterval = errors.New("unknown interval")
)

// canonical spelling, sharps preferred
var integerToNoteTable = [constants.OctaveSize]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var noteToIntegerTable = map[string]int{
	"Cb": 11,
	"C":  0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"E#": 5,
	"Fb": 4,
	"F":  5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"B":  11,
}

func NoteToInteger(name string) (int, error) {
	pc, ok := noteToIntegerTable[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}
	return pc, nil
}

// IntegerToNote reduces pc into a single octave before the lookup.
func IntegerToNote(pc int) string {
	return integerToNoteTable[util.Mod(pc, constants.OctaveSize)]
}

// ParseKey accepts a note name ("Bb") or a pitch class number ("10").
func ParseKey(s string) (int, error) {
	s = strings.TrimSpace(s)
	if pc, err := NoteToInteger(s); err == nil {
		return pc, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || i >= constants.OctaveSize {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, s)
	}
	return i, nil
}

// Notes returns every accepted note spelling, canonical names first.
func Notes() []string {
	res := make([]string, 0, len(noteToIntegerTable))
	res = append(res, integerToNoteTable[:]...)
	for _, name := range util.GetKeysSorted(noteToIntegerTable) {
		if integerToNoteTable[noteToIntegerTable[name]] != name {
			res = append(res, name)
		}
	}
	return res
}
