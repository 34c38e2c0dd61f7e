package pitch

import (
	"errors"
	"fmt"
	"strconv"
)

// Pitch is a MIDI key number: C-1 is 0, C4 is 60.
type Pitch uint8

const (
	Min Pitch = 0
	Max Pitch = 127
)

var ErrOutOfRange = errors.New("pitch out of range")

// New validates v against the MIDI key range.
func New(v int) (Pitch, error) {
	if v < int(Min) || v > int(Max) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return Pitch(v), nil
}

// Transpose moves p by a signed number of semitones.
func (p Pitch) Transpose(semitones int) (Pitch, error) {
	res, err := New(int(p) + semitones)
	if err != nil {
		return 0, fmt.Errorf("transpose %v by %d: %w", p, semitones, err)
	}
	return res, nil
}

func (p Pitch) Class() Class {
	return Class(p % 12)
}

// Spelling is the fixed canonical name of a pitch. HasOctave is false for
// pitches below 12, which spell as a bare pitch class.
type Spelling struct {
	Step       Step
	Accidental Accidental
	Octave     int
	HasOctave  bool
}

func (p Pitch) Spell() Spelling {
	step, acc := p.Class().Step()
	s := Spelling{Step: step, Accidental: acc}
	if p >= 12 {
		s.Octave = int(p)/12 - 1
		s.HasOctave = true
	}
	return s
}

func (s Spelling) String() string {
	res := s.Step.String() + s.Accidental.String()
	if s.HasOctave {
		res += strconv.Itoa(s.Octave)
	}
	return res
}

func (p Pitch) String() string {
	return p.Spell().String()
}
