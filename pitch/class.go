package pitch

import "golang.org/x/exp/slices"

// Class is a pitch reduced modulo 12.
type Class uint8

var (
	naturalClasses   = []Class{0, 2, 4, 5, 7, 9, 11}
	sharpableClasses = []Class{1, 6, 8}
	flatableClasses  = []Class{3, 10}
)

func (c Class) IsNatural() bool {
	return slices.Contains(naturalClasses, c)
}

func (c Class) IsSharpable() bool {
	return slices.Contains(sharpableClasses, c)
}

func (c Class) IsFlatable() bool {
	return slices.Contains(flatableClasses, c)
}

// Step returns the canonical letter and accidental for c. Sharpable classes
// spell from the letter below, flatable classes from the letter above.
func (c Class) Step() (Step, Accidental) {
	switch {
	case c.IsNatural():
		return stepOf(c), Natural
	case c.IsSharpable():
		return stepOf(c - 1), Sharp
	default:
		return stepOf(c + 1), Flat
	}
}

func stepOf(natural Class) Step {
	for step, base := range stepBases {
		if base == natural {
			return Step(step)
		}
	}
	panic("not a natural pitch class")
}

type Step int

const (
	C Step = iota
	D
	E
	F
	G
	A
	B
)

var (
	stepBases = [...]Class{0, 2, 4, 5, 7, 9, 11}
	stepNames = [...]string{"C", "D", "E", "F", "G", "A", "B"}
)

// Base is the pitch class of the unaltered letter.
func (s Step) Base() int {
	return int(stepBases[s])
}

func (s Step) String() string {
	return stepNames[s]
}

// ParseStep accepts a single upper-case letter A-G.
func ParseStep(name string) (Step, bool) {
	i := slices.Index(stepNames[:], name)
	if i < 0 {
		return 0, false
	}
	return Step(i), true
}

type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

func (a Accidental) Offset() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	}
	return 0
}

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "-"
	}
	return ""
}

func ParseAccidental(s string) (Accidental, bool) {
	switch s {
	case "":
		return Natural, true
	case "#":
		return Sharp, true
	case "-":
		return Flat, true
	}
	return Natural, false
}
