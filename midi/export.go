package midi

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jsphweid/chordnova/chord"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type ExportOptions struct {
	TempoBPM      float64
	Velocity      uint8
	BeatsPerChord uint32
	Channel       uint8
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{TempoBPM: 60, Velocity: 80, BeatsPerChord: 2}
}

const ticksPerQuarter = smf.MetricTicks(480)

// Write renders chords one after another as block chords in a single-track
// SMF. Repeated pitches inside a chord sound once.
func Write(w io.Writer, chords []chord.Chord, opts ExportOptions) error {
	if len(chords) == 0 {
		return ErrNoNotes
	}
	if opts.BeatsPerChord == 0 || opts.TempoBPM <= 0 {
		return fmt.Errorf("invalid export options: %+v", opts)
	}

	var track smf.Track
	track.Add(0, smf.MetaTempo(opts.TempoBPM))

	length := ticksPerQuarter.Ticks4th() * opts.BeatsPerChord
	for _, c := range chords {
		keys := chord.New(c.Pitches(), true).Notes()
		if len(keys) == 0 {
			return chord.ErrEmptyChord
		}
		for _, key := range keys {
			track.Add(0, gomidi.NoteOn(opts.Channel, key, opts.Velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = length
			}
			track.Add(delta, gomidi.NoteOff(opts.Channel, key))
		}
	}
	track.Close(0)

	var s smf.SMF
	s.TimeFormat = ticksPerQuarter
	s.Tracks = append(s.Tracks, track)
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

// Encode is Write into a byte slice.
func Encode(chords []chord.Chord, opts ExportOptions) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := Write(buf, chords, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
