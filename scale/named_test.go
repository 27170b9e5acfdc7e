package scale

import (
	"testing"

	"github.com/jsphweid/scalechords/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueIsValid(t *testing.T) {
	for _, name := range Names() {
		intervals, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, intervals)
		assert.Equal(t, note.Unison, intervals[0], name)
		_, err = note.IntervalsToIntegers(intervals)
		assert.NoError(t, err, name)
	}
}

func TestLookupNormalizesName(t *testing.T) {
	for _, name := range []string{"Harmonic Minor", "harmonic-minor", "harmonic_minor"} {
		res, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, []note.Interval{"1", "2", "b3", "4", "5", "b6", "7"}, res)
	}

	res, err := Lookup("minor")
	require.NoError(t, err)
	assert.Equal(t, note.MinorSixth, res[5])
}

func TestLookupReturnsCopy(t *testing.T) {
	a, err := Lookup("major")
	require.NoError(t, err)
	a[0] = note.Ninth

	b, err := Lookup("major")
	require.NoError(t, err)
	assert.Equal(t, note.Unison, b[0])
}

func TestParse(t *testing.T) {
	res, err := Parse("major pentatonic")
	require.NoError(t, err)
	assert.Len(t, res, 5)

	res, err = Parse("1,2,b3,5")
	require.NoError(t, err)
	assert.Equal(t, []note.Interval{"1", "2", "b3", "5"}, res)

	_, err = Parse("lydian dominant")
	assert.ErrorIs(t, err, ErrUnknownScale)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrEmptyScale)
}

func TestModeName(t *testing.T) {
	major, err := Lookup("major")
	require.NoError(t, err)
	assert.Equal(t, "Ionian", ModeName(major, 1))
	assert.Equal(t, "Dorian", ModeName(major, 2))
	assert.Equal(t, "Locrian", ModeName(major, 7))
	assert.Equal(t, "Ionian", ModeName(major, 8))
	assert.Equal(t, "", ModeName(major, 0))

	minor, err := Lookup("harmonic minor")
	require.NoError(t, err)
	assert.Equal(t, "", ModeName(minor, 2))
}
