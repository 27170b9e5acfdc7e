package note

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnharmonicNotesShareInteger(t *testing.T) {
	for _, pair := range [][2]string{
		{"C#", "Db"}, {"D#", "Eb"}, {"F#", "Gb"}, {"G#", "Ab"}, {"A#", "Bb"},
		{"Cb", "B"}, {"Fb", "E"}, {"E#", "F"},
	} {
		t.Run(pair[0]+"="+pair[1], func(t *testing.T) {
			a, err := NoteToInteger(pair[0])
			require.NoError(t, err)
			b, err := NoteToInteger(pair[1])
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestRoundTripPrefersSharps(t *testing.T) {
	expected := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	for pc, name := range expected {
		assert.Equal(t, name, IntegerToNote(pc))

		n, err := NoteToInteger(name)
		require.NoError(t, err)
		assert.Equal(t, pc, n)
	}

	flat, err := NoteToInteger("Db")
	require.NoError(t, err)
	assert.Equal(t, "C#", IntegerToNote(flat))
}

func TestIntegerToNoteReducesOutOfRange(t *testing.T) {
	assert.Equal(t, "D", IntegerToNote(14))
	assert.Equal(t, "B", IntegerToNote(-1))
}

func TestUnknownNote(t *testing.T) {
	for _, name := range []string{"H", "c", "", "C##", "B#"} {
		_, err := NoteToInteger(name)
		assert.True(t, errors.Is(err, ErrUnknownNote), name)
	}
}

func TestParseKey(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected int
		err      error
	}{
		{input: "C", expected: 0},
		{input: "Bb", expected: 10},
		{input: " F# ", expected: 6},
		{input: "7", expected: 7},
		{input: "11", expected: 11},
		{input: "12", err: ErrUnknownNote},
		{input: "-1", err: ErrUnknownNote},
		{input: "X", err: ErrUnknownNote},
	} {
		t.Run(tc.input, func(t *testing.T) {
			k, err := ParseKey(tc.input)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, k)
		})
	}
}

func TestNotesListsCanonicalFirst(t *testing.T) {
	notes := Notes()
	assert.Len(t, notes, 20)
	assert.Equal(t, "C", notes[0])
	assert.Equal(t, "B", notes[11])
	assert.Contains(t, notes[12:], "Db")
	assert.NotContains(t, notes[12:], "C#")
}
