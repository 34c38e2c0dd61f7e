package notation

import (
	"errors"
	"testing"

	"github.com/jsphweid/chordnova/pitch"
	"github.com/stretchr/testify/assert"
)

func TestParsePitch(t *testing.T) {
	cases := map[string]pitch.Pitch{
		"C4":  60,
		"B-4": 70,
		"F#3": 54,
		"A0":  21,
		"C-1": 23,
		"G9":  127,
		"C":   0,
		"B-":  10,
	}

	for token, want := range cases {
		t.Run("parse "+token, func(t *testing.T) {
			got, err := ParsePitch(token)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParsePitchSyntaxError(t *testing.T) {
	for _, token := range []string{"", "H4", "c4", "C##4", "Cb4", "C4x", "4"} {
		t.Run("reject "+token, func(t *testing.T) {
			_, err := ParsePitch(token)
			assert.ErrorIs(t, err, ErrSyntax)

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, token, syntaxErr.Token)
		})
	}
}

func TestParsePitchOutOfRange(t *testing.T) {
	_, err := ParsePitch("A9")
	assert.ErrorIs(t, err, pitch.ErrOutOfRange)

	_, err = ParsePitch("C-")
	assert.ErrorIs(t, err, pitch.ErrOutOfRange)
}

func TestParsePitches(t *testing.T) {
	assert := assert.New(t)

	ps, err := ParsePitches("C4 E4  G4\tB-4")
	assert.NoError(err)
	assert.Equal([]pitch.Pitch{60, 64, 67, 70}, ps)

	_, err = ParsePitches("C4 X4 G4")
	assert.ErrorIs(err, ErrSyntax)
}

func TestSpellingRoundTrip(t *testing.T) {
	for v := int(pitch.Min); v <= int(pitch.Max); v++ {
		p := pitch.Pitch(v)
		parsed, err := ParsePitch(p.String())
		if assert.NoError(t, err, "pitch %d", v) {
			assert.Equal(t, p, parsed)
		}
	}
}
