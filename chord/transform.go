package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordnova/pitch"
)

var (
	ErrInvalidInversion = errors.New("invalid inversion")
	ErrInvalidExpansion = errors.New("invalid expansion map")
)

// ApplyInversion moves the lowest `inversion` pitches to the top, raising each
// by ceil((top - pivot) / 12) octaves where pivot is the highest moved pitch,
// then transposes the whole chord by `octave` octaves.
func (c Chord) ApplyInversion(octave int, inversion int) (Chord, error) {
	n := len(c.pitches)
	if n == 0 {
		return Chord{}, ErrEmptyChord
	}
	if inversion < 0 || inversion >= n {
		return Chord{}, fmt.Errorf("%w: %d for chord of size %d", ErrInvalidInversion, inversion, n)
	}

	lift := 0
	if inversion > 0 {
		span := int(c.pitches[n-1]) - int(c.pitches[inversion-1])
		lift = (span + 11) / 12
	}

	rotated := make([]pitch.Pitch, 0, n)
	for i := 0; i < n; i++ {
		idx := (inversion + i) % n
		shift := 12 * octave
		if idx < inversion {
			shift += 12 * lift
		}
		p, err := c.pitches[idx].Transpose(shift)
		if err != nil {
			return Chord{}, fmt.Errorf("inversion %d octave %d: %w", inversion, octave, err)
		}
		rotated = append(rotated, p)
	}
	return New(rotated, false), nil
}

// ExpansionMap lists the output positions (1-based, strictly increasing, each
// below the target size) after which expansion moves on to the next source
// pitch. A map for a chord of size n holds n-1 positions.
type ExpansionMap []int

func (m ExpansionMap) validate(sourceSize, targetSize int) error {
	if len(m) != sourceSize-1 {
		return fmt.Errorf("%w: %d seams for %d pitches", ErrInvalidExpansion, len(m), sourceSize)
	}
	prev := 0
	for _, pos := range m {
		if pos <= prev || pos >= targetSize {
			return fmt.Errorf("%w: %v for target size %d", ErrInvalidExpansion, []int(m), targetSize)
		}
		prev = pos
	}
	return nil
}

// ApplyExpansion repeats pitches to reach targetSize: output positions
// 1..targetSize each take the current source pitch, and the source advances
// after every position listed in m. The result keeps expansion order.
func (c Chord) ApplyExpansion(m ExpansionMap, targetSize int) (Chord, error) {
	if len(c.pitches) == 0 {
		return Chord{}, ErrEmptyChord
	}
	if targetSize < len(c.pitches) {
		return Chord{}, fmt.Errorf("%w: target size %d below chord size %d", ErrInvalidExpansion, targetSize, len(c.pitches))
	}
	if err := m.validate(len(c.pitches), targetSize); err != nil {
		return Chord{}, err
	}

	res := make([]pitch.Pitch, 0, targetSize)
	counter := 0
	for pos := 1; pos <= targetSize; pos++ {
		res = append(res, c.pitches[counter])
		if counter < len(m) && m[counter] == pos {
			counter++
		}
	}
	return Chord{pitches: res}, nil
}

// Seams recovers the expansion map that produces c from its distinct
// pitches: the positions where the next pitch differs.
func (c Chord) Seams() ExpansionMap {
	res := ExpansionMap{}
	for i := 1; i < len(c.pitches); i++ {
		if c.pitches[i] != c.pitches[i-1] {
			res = append(res, i)
		}
	}
	return res
}
