package distance

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordnova/chord"
	"github.com/jsphweid/chordnova/pitch"
	"golang.org/x/exp/slices"
)

// Strategy selects how the second chord is matched against the first.
type Strategy int

const (
	// StrategyPairs expands the smaller chord without moving either chord.
	StrategyPairs Strategy = iota
	// StrategyInversion also tries octave shifts and inversions of the second chord.
	StrategyInversion
	// StrategyPitchClass greedily snaps each pitch to the nearest unused target class.
	StrategyPitchClass
)

var ErrUnknownStrategy = errors.New("unknown strategy")

var strategyNames = map[Strategy]string{
	StrategyPairs:      "pairs",
	StrategyInversion:  "inversion",
	StrategyPitchClass: "pitch-class",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return StrategyPairs, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// SearchDiff runs Search and returns the diff reported for the result. The
// pairs strategy reports Compare(a, b), so it agrees with a plain diff of the
// same chords. The voicing strategies report the pair's own movement.
func SearchDiff(a, b chord.Chord, s Strategy) (Pair, Diff, error) {
	pair, err := Search(a, b, s)
	if err != nil {
		return Pair{}, Diff{}, err
	}
	if s != StrategyPairs {
		return pair, pair.Diff(), nil
	}
	d, err := Compare(a, b)
	if err != nil {
		return Pair{}, Diff{}, err
	}
	return pair, d, nil
}

// Search runs the chosen strategy.
func Search(a, b chord.Chord, s Strategy) (Pair, error) {
	switch s {
	case StrategyPairs:
		return BestPairs(a, b)
	case StrategyInversion:
		return ByInversion(a, b)
	case StrategyPitchClass:
		return ByPitchClass(a, b)
	}
	return Pair{}, fmt.Errorf("%w %v", ErrUnknownStrategy, s)
}

// FindVec pairs a with b. In substitution mode b may be voiced in another
// register, so its inversions and octave shifts are searched first.
func FindVec(a, b chord.Chord, substitution bool) (Pair, error) {
	if substitution {
		return ByInversion(a, b)
	}
	return BestPairs(a, b)
}

// octave shifts tried by ByInversion, in order
var inversionOctaves = []int{-1, 0}

// ByInversion tries every inversion of b at each of inversionOctaves, keeps
// the transform closest to a (first minimum SV in octave-then-inversion
// order) and pairs a with it. Transforms leaving the MIDI range are skipped.
func ByInversion(a, b chord.Chord) (Pair, error) {
	if err := checkNotEmpty(a, b); err != nil {
		return Pair{}, err
	}

	var (
		best     chord.Chord
		bestSV   int
		found    bool
		firstErr error
	)
	for _, octave := range inversionOctaves {
		for inversion := 0; inversion < b.Size(); inversion++ {
			candidate, err := b.ApplyInversion(octave, inversion)
			if err == nil {
				var d Diff
				d, err = Compare(a, candidate)
				if err == nil && (!found || d.SV() < bestSV) {
					best, bestSV, found = candidate, d.SV(), true
				}
			}
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	if !found {
		return Pair{}, firstErr
	}
	return BestPairs(a, best)
}

// ByPitchClass builds a new chord by moving each pitch of a, lowest first, to
// the nearest pitch whose class comes from b and is not yet taken. Once every
// class of b is taken the pool starts over. This is a cheap approximation of
// ByInversion and may disagree with it.
func ByPitchClass(a, b chord.Chord) (Pair, error) {
	if err := checkNotEmpty(a, b); err != nil {
		return Pair{}, err
	}

	classes := b.PitchClasses()
	unused := slices.Clone(classes)
	matched := make([]pitch.Pitch, 0, a.Size())
	for _, p := range a.Pitches() {
		if len(unused) == 0 {
			unused = slices.Clone(classes)
		}
		np, err := p.Nearest(unused)
		if err != nil {
			return Pair{}, err
		}
		matched = append(matched, np)
		i := slices.Index(unused, np.Class())
		unused = slices.Delete(unused, i, i+1)
	}
	return Pair{From: a, To: chord.New(matched, false)}, nil
}
