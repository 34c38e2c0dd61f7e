package distance

import (
	"fmt"

	"github.com/jsphweid/chordnova/util"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

// Diff is the index-wise movement between two paired chords of equal size.
type Diff struct {
	vec  []int
	sv   int
	norm float64
}

func NewDiff(vec []int) Diff {
	v := slices.Clone(vec)
	abs := make([]int, len(v))
	fv := make([]float64, len(v))
	for i, x := range v {
		abs[i] = util.Abs(x)
		fv[i] = float64(x)
	}
	norm := 0.0
	if len(fv) > 0 {
		norm = floats.Norm(fv, 2)
	}
	return Diff{vec: v, sv: util.Sum(abs), norm: norm}
}

func (d Diff) Vec() []int {
	return slices.Clone(d.vec)
}

// SV is the sum of absolute movements.
func (d Diff) SV() int {
	return d.sv
}

// Norm is the Euclidean norm of the movement vector.
func (d Diff) Norm() float64 {
	return d.norm
}

func (d Diff) Negate() Diff {
	neg := make([]int, len(d.vec))
	for i, x := range d.vec {
		neg[i] = -x
	}
	return NewDiff(neg)
}

func (d Diff) String() string {
	return fmt.Sprintf("<ChordDiff: %v, sv: %v, norm: %.2f>", util.FormatList(d.vec), d.sv, d.norm)
}
