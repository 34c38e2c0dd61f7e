// Package notation parses note names such as "C4", "B-4" and "F#3" into
// pitches. A name is a letter A-G, an optional accidental ("#" sharp, "-"
// flat) and optional octave digits; without digits the name denotes the
// bare pitch class in 0..11.
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/chordnova/pitch"
)

var ErrSyntax = errors.New("invalid note name")

type SyntaxError struct {
	Token string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %q", ErrSyntax, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

var noteName = regexp.MustCompile(`^([A-G])([#-]?)([0-9]*)$`)

// ParsePitch returns (letter + accidental) + (octave + 1) * 12.
func ParsePitch(token string) (pitch.Pitch, error) {
	m := noteName.FindStringSubmatch(token)
	if m == nil {
		return 0, &SyntaxError{Token: token}
	}
	step, _ := pitch.ParseStep(m[1])
	acc, _ := pitch.ParseAccidental(m[2])

	value := step.Base() + acc.Offset()
	if m[3] != "" {
		octave, err := strconv.Atoi(m[3])
		if err != nil {
			return 0, &SyntaxError{Token: token}
		}
		value += (octave + 1) * 12
	}

	p, err := pitch.New(value)
	if err != nil {
		return 0, fmt.Errorf("note %q: %w", token, err)
	}
	return p, nil
}

// ParsePitches parses whitespace-separated note names. The first failure is
// returned as is.
func ParsePitches(text string) ([]pitch.Pitch, error) {
	tokens := strings.Fields(text)
	res := make([]pitch.Pitch, 0, len(tokens))
	for _, token := range tokens {
		p, err := ParsePitch(token)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}
