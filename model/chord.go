package model

type Notes = []int

// Chord is a chord found over a scale fragment. Formula holds absolute
// semitones starting at the root and is not folded into one octave.
type Chord struct {
	Name    string `json:"name"`
	Formula Notes  `json:"formula"`
}

type Degree struct {
	Degree int     `json:"degree"`
	Root   string  `json:"root"`
	Mode   string  `json:"mode,omitempty"`
	Chords []Chord `json:"chords"`
}
