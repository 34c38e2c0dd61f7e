package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordnova/notation"
	"github.com/jsphweid/chordnova/pitch"
	"golang.org/x/exp/slices"
)

var ErrEmptyChord = errors.New("chord has no pitches")

// Chord is an immutable, ascending sequence of pitches. Every transformation
// returns a new Chord; the pitch slice is never shared.
type Chord struct {
	pitches []pitch.Pitch
}

// New sorts a copy of pitches and, when dedup is set, drops repeated pitches.
func New(pitches []pitch.Pitch, dedup bool) Chord {
	ps := slices.Clone(pitches)
	slices.Sort(ps)
	if dedup {
		ps = slices.Compact(ps)
	}
	return Chord{pitches: ps}
}

// FromNotes builds a chord from raw MIDI key numbers.
func FromNotes(notes []uint8, dedup bool) (Chord, error) {
	ps := make([]pitch.Pitch, 0, len(notes))
	for _, n := range notes {
		p, err := pitch.New(int(n))
		if err != nil {
			return Chord{}, err
		}
		ps = append(ps, p)
	}
	return New(ps, dedup), nil
}

// Parse reads whitespace-separated note names, e.g. "C4 E4 G4".
func Parse(text string, dedup bool) (Chord, error) {
	ps, err := notation.ParsePitches(text)
	if err != nil {
		return Chord{}, fmt.Errorf("could not parse chord %q: %w", text, err)
	}
	return New(ps, dedup), nil
}

func (c Chord) Size() int {
	return len(c.pitches)
}

func (c Chord) At(i int) pitch.Pitch {
	return c.pitches[i]
}

func (c Chord) Pitches() []pitch.Pitch {
	return slices.Clone(c.pitches)
}

func (c Chord) Notes() []uint8 {
	res := make([]uint8, len(c.pitches))
	for i, p := range c.pitches {
		res[i] = uint8(p)
	}
	return res
}

// PitchClasses lists classes in ascending pitch order, collapsing only
// adjacent repeats.
func (c Chord) PitchClasses() []pitch.Class {
	var res []pitch.Class
	for _, p := range c.pitches {
		pc := p.Class()
		if len(res) > 0 && res[len(res)-1] == pc {
			continue
		}
		res = append(res, pc)
	}
	return res
}

func (c Chord) Equal(other Chord) bool {
	return slices.Equal(c.pitches, other.pitches)
}

// Key identifies the pitch content, e.g. "60-64-67".
func (c Chord) Key() string {
	parts := make([]string, len(c.pitches))
	for i, p := range c.pitches {
		parts[i] = fmt.Sprintf("%v", uint8(p))
	}
	return strings.Join(parts, "-")
}

func (c Chord) String() string {
	names := make([]string, len(c.pitches))
	for i, p := range c.pitches {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
