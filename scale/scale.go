package scale

import (
	"errors"

	"github.com/jsphweid/scalechords/constants"
	"github.com/jsphweid/scalechords/util"
)

var (
	ErrEmptyScale  = errors.New("scale is empty")
	ErrInvalidMode = errors.New("mode must be 1 or greater")
)

// TransposeToKey adds key to every offset. Without preserveOctave each
// result is folded into [0,11]; with it the raw sums are kept so notes in
// the next octave stay above the ones below them.
func TransposeToKey(scale []int, key int, preserveOctave bool) []int {
	res := make([]int, len(scale))
	for i, semitone := range scale {
		val := semitone + key
		if !preserveOctave {
			val = util.Mod(val, constants.OctaveSize)
		}
		res[i] = val
	}
	return res
}

// RotateToMode left-rotates scale by mode-1 steps and re-anchors it so the
// new first element is 0. Modes past the scale length wrap around.
func RotateToMode(scale []int, mode int) ([]int, error) {
	if len(scale) == 0 {
		return nil, ErrEmptyScale
	}
	if mode <= 0 {
		return nil, ErrInvalidMode
	}

	shift := (mode - 1) % len(scale)
	rotated := make([]int, 0, len(scale))
	rotated = append(rotated, scale[shift:]...)
	rotated = append(rotated, scale[:shift]...)

	return TransposeToKey(rotated, constants.OctaveSize-rotated[0], false), nil
}
