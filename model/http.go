package model

// Scale is a catalogue name or an interval list such as "1,2,b3". Labels
// takes precedence when set.
type MatchRequestBody struct {
	Key    string   `json:"key"`
	Scale  string   `json:"scale"`
	Labels []string `json:"labels,omitempty"`
	Mode   int      `json:"mode"`
	Degree int      `json:"degree"`
}

type MatchResponse struct {
	Root   string  `json:"root"`
	Chords []Chord `json:"chords"`
}

type HarmonizeRequestBody struct {
	Key    string   `json:"key"`
	Scale  string   `json:"scale"`
	Labels []string `json:"labels,omitempty"`
	Mode   int      `json:"mode"`
}

type FormulaResponse struct {
	Name      string   `json:"name"`
	Intervals []string `json:"intervals"`
}

type ScaleResponse struct {
	Name      string   `json:"name"`
	Intervals []string `json:"intervals"`
}

type NotesResponse struct {
	Notes     []string `json:"notes"`
	Intervals []string `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
