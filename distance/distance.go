// Package distance pairs chords of possibly different sizes and measures how
// far one is from the other.
//
// When sizes differ the smaller chord is expanded by repeating some of its
// pitches until both sizes match. Every expansion map is tried in lexicographic
// order and the first one with the smallest SV wins, so results are
// reproducible. The resulting distance is a best partial match, not a metric:
// it does not satisfy the triangle inequality across three chord sizes.
package distance

import (
	"github.com/jsphweid/chordnova/chord"
	"github.com/jsphweid/chordnova/util"
)

var ErrEmptyChord = chord.ErrEmptyChord

// Pair holds two index-aligned chords of equal size.
type Pair struct {
	From chord.Chord
	To   chord.Chord
}

// Diff is the voice movement To - From. When the input sizes differed it can
// have the opposite sign to Compare; use SearchDiff for a diff that matches it.
func (p Pair) Diff() Diff {
	return equalSizeDiff(p.From, p.To)
}

func checkNotEmpty(chords ...chord.Chord) error {
	for _, c := range chords {
		if c.Size() == 0 {
			return ErrEmptyChord
		}
	}
	return nil
}

// Compare returns the movement from a to b. For equal sizes entry i is
// b[i] - a[i]. When a is smaller, entry i is expanded(a)[i] - b[i] for the best
// expansion of a; when a is larger the result is Compare(b, a) negated.
func Compare(a, b chord.Chord) (Diff, error) {
	if err := checkNotEmpty(a, b); err != nil {
		return Diff{}, err
	}
	switch {
	case a.Size() == b.Size():
		return equalSizeDiff(a, b), nil
	case a.Size() > b.Size():
		d, err := Compare(b, a)
		if err != nil {
			return Diff{}, err
		}
		return d.Negate(), nil
	}
	_, d, err := bestExpansion(a, b)
	return d, err
}

// BestPairs aligns a and b index for index. The smaller chord is replaced by
// its best expansion; the pair keeps the argument order.
func BestPairs(a, b chord.Chord) (Pair, error) {
	if err := checkNotEmpty(a, b); err != nil {
		return Pair{}, err
	}
	switch {
	case a.Size() == b.Size():
		return Pair{From: a, To: b}, nil
	case a.Size() > b.Size():
		p, err := BestPairs(b, a)
		if err != nil {
			return Pair{}, err
		}
		return Pair{From: p.To, To: p.From}, nil
	}
	expanded, _, err := bestExpansion(a, b)
	if err != nil {
		return Pair{}, err
	}
	return Pair{From: expanded, To: b}, nil
}

func equalSizeDiff(a, b chord.Chord) Diff {
	vec := make([]int, a.Size())
	for i := range vec {
		vec[i] = int(b.At(i)) - int(a.At(i))
	}
	return NewDiff(vec)
}

// bestExpansion expands small to the size of large, trying every choice of
// small.Size()-1 seams out of positions 1..large.Size()-1.
func bestExpansion(small, large chord.Chord) (chord.Chord, Diff, error) {
	var (
		best     chord.Chord
		bestDiff Diff
		found    bool
		firstErr error
	)
	seams := util.Seq(1, large.Size())
	util.Combinations(seams, small.Size()-1, func(m []int) bool {
		expanded, err := small.ApplyExpansion(chord.ExpansionMap(m), large.Size())
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return true
		}
		d := equalSizeDiff(large, expanded)
		if !found || d.SV() < bestDiff.SV() {
			best, bestDiff, found = expanded, d, true
		}
		return true
	})
	if !found {
		return chord.Chord{}, Diff{}, firstErr
	}
	return best, bestDiff, nil
}
