package model

// PairRequestBody names two chords in note-name notation, e.g. "C4 E4 G4".
type PairRequestBody struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Dedup    bool   `json:"dedup"`
	Strategy string `json:"strategy,omitempty"`
}

type DiffResponse struct {
	Vec  []int   `json:"vec"`
	SV   int     `json:"sv"`
	Norm float64 `json:"norm"`
	Text string  `json:"text"`
}

type PairResponse struct {
	From     ChordView    `json:"from"`
	To       ChordView    `json:"to"`
	Strategy string       `json:"strategy"`
	Diff     DiffResponse `json:"diff"`
}

type ChordView struct {
	Notes []int    `json:"notes"`
	Names []string `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
