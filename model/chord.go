package model

import (
	"github.com/jsphweid/chordnova/chord"
	"github.com/jsphweid/chordnova/distance"
)

func NewChordView(c chord.Chord) ChordView {
	v := ChordView{Notes: []int{}, Names: []string{}}
	for _, p := range c.Pitches() {
		v.Notes = append(v.Notes, int(p))
		v.Names = append(v.Names, p.String())
	}
	return v
}

func NewDiffResponse(d distance.Diff) DiffResponse {
	return DiffResponse{Vec: d.Vec(), SV: d.SV(), Norm: d.Norm(), Text: d.String()}
}

func NewPairResponse(p distance.Pair, d distance.Diff, s distance.Strategy) PairResponse {
	return PairResponse{
		From:     NewChordView(p.From),
		To:       NewChordView(p.To),
		Strategy: s.String(),
		Diff:     NewDiffResponse(d),
	}
}
