package scale

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var major = []int{0, 2, 4, 5, 7, 9, 11}

func TestTransposeToKey(t *testing.T) {
	for i, tc := range []struct {
		scale          []int
		key            int
		preserveOctave bool
		expected       []int
	}{
		{scale: major, key: 0, expected: major},
		{scale: major, key: 2, expected: []int{2, 4, 6, 7, 9, 11, 1}},
		{scale: major, key: 2, preserveOctave: true, expected: []int{2, 4, 6, 7, 9, 11, 13}},
		{scale: []int{0, 12, 23}, key: 5, preserveOctave: true, expected: []int{5, 17, 28}},
		{scale: []int{0, 12, 23}, key: 5, expected: []int{5, 5, 4}},
		{scale: []int{3}, key: -5, expected: []int{10}},
		{scale: []int{}, key: 3, expected: []int{}},
	} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert.Equal(t, tc.expected, TransposeToKey(tc.scale, tc.key, tc.preserveOctave))
		})
	}
}

func TestTransposeWithoutOctaveStaysInRange(t *testing.T) {
	for key := -24; key <= 24; key++ {
		for _, v := range TransposeToKey([]int{0, 4, 7, 11, 14, 15}, key, false) {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 11)
		}
	}
}

func TestTransposeDoesNotAlias(t *testing.T) {
	in := []int{0, 4, 7}
	out := TransposeToKey(in, 0, true)
	out[0] = 99
	assert.Equal(t, []int{0, 4, 7}, in)
}

func TestRotateToModeIdentity(t *testing.T) {
	res, err := RotateToMode(major, 1)
	require.NoError(t, err)
	assert.Equal(t, major, res)
}

func TestRotateToModeReanchors(t *testing.T) {
	res, err := RotateToMode([]int{2, 4, 7}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5}, res)
}

func TestRotateToModeChurchModes(t *testing.T) {
	for _, tc := range []struct {
		mode     int
		expected []int
	}{
		{mode: 2, expected: []int{0, 2, 3, 5, 7, 9, 10}}, // dorian
		{mode: 3, expected: []int{0, 1, 3, 5, 7, 8, 10}}, // phrygian
		{mode: 4, expected: []int{0, 2, 4, 6, 7, 9, 11}}, // lydian
		{mode: 5, expected: []int{0, 2, 4, 5, 7, 9, 10}}, // mixolydian
		{mode: 6, expected: []int{0, 2, 3, 5, 7, 8, 10}}, // aeolian
		{mode: 7, expected: []int{0, 1, 3, 5, 6, 8, 10}}, // locrian
		{mode: 8, expected: major},
	} {
		t.Run(fmt.Sprintf("mode %d", tc.mode), func(t *testing.T) {
			res, err := RotateToMode(major, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestRotateToModeErrors(t *testing.T) {
	_, err := RotateToMode(nil, 1)
	assert.ErrorIs(t, err, ErrEmptyScale)

	_, err = RotateToMode(major, 0)
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = RotateToMode(major, -3)
	assert.ErrorIs(t, err, ErrInvalidMode)
}
