package pitch

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrNoPitchClass = errors.New("no candidate pitch class")

// Nearest finds the closest pitch to p whose class is in classes. Offsets are
// tried outward from 0 to 11, downward before upward, so ties go down.
// Candidates outside the MIDI range are skipped.
func (p Pitch) Nearest(classes []Class) (Pitch, error) {
	if len(classes) == 0 {
		return 0, ErrNoPitchClass
	}
	for offset := 0; offset < 12; offset++ {
		for _, direction := range []int{-1, 1} {
			candidate, err := p.Transpose(direction * offset)
			if err != nil {
				continue
			}
			if slices.Contains(classes, candidate.Class()) {
				return candidate, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: none of %v near %v", ErrNoPitchClass, classes, p)
}
