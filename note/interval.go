package note

import (
	"fmt"
	"strings"
)

// Interval is a scale or chord degree label such as "b3". It is a token,
// never a number: "5" is the perfect fifth, not five semitones.
type Interval string

const (
	Unison       Interval = "1"
	MinorSecond  Interval = "b2"
	MajorSecond  Interval = "2"
	MinorThird   Interval = "b3"
	MajorThird   Interval = "3"
	Fourth       Interval = "4"
	FlatFifth    Interval = "b5"
	Fifth        Interval = "5"
	SharpFifth   Interval = "#5"
	MinorSixth   Interval = "b6"
	MajorSixth   Interval = "6"
	MinorSeventh Interval = "b7"
	MajorSeventh Interval = "7"
	SharpSeventh Interval = "7#"
	FlatNinth    Interval = "b9"
	Ninth        Interval = "9"
	SharpNinth   Interval = "#9"
)

var intervals = []Interval{
	Unison, MinorSecond, MajorSecond, MinorThird, MajorThird, Fourth,
	FlatFifth, Fifth, SharpFifth, MinorSixth, MajorSixth, MinorSeventh,
	MajorSeventh, SharpSeventh, FlatNinth, Ninth, SharpNinth,
}

// #5 and b6 are enharmonic and share an offset.
var intervalToIntegerTable = map[Interval]int{
	Unison:       0,
	MinorSecond:  1,
	MajorSecond:  2,
	MinorThird:   3,
	MajorThird:   4,
	Fourth:       5,
	FlatFifth:    6,
	Fifth:        7,
	SharpFifth:   8,
	MinorSixth:   8,
	MajorSixth:   9,
	MinorSeventh: 10,
	MajorSeventh: 11,
	SharpSeventh: 12,
	FlatNinth:    13,
	Ninth:        14,
	SharpNinth:   15,
}

func (i Interval) Semitones() (int, error) {
	v, ok := intervalToIntegerTable[i]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownInterval, string(i))
	}
	return v, nil
}

func ParseInterval(s string) (Interval, error) {
	i := Interval(strings.TrimSpace(s))
	if _, err := i.Semitones(); err != nil {
		return "", err
	}
	return i, nil
}

// ParseIntervals splits a list like "1, b3, 5" or "1 b3 5".
func ParseIntervals(s string) ([]Interval, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	res := make([]Interval, 0, len(fields))
	for _, f := range fields {
		i, err := ParseInterval(f)
		if err != nil {
			return nil, err
		}
		res = append(res, i)
	}
	return res, nil
}

func IntervalsToIntegers(labels []Interval) ([]int, error) {
	res := make([]int, 0, len(labels))
	for _, label := range labels {
		v, err := label.Semitones()
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func Intervals() []Interval {
	res := make([]Interval, len(intervals))
	copy(res, intervals)
	return res
}
