package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/chordnova/chord"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/maps"
)

func ReadMidiFile(filepath string) ([]chord.Chord, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadChords(bytes.NewReader(dat))
}

// ReadChords decodes an SMF and returns the sounding notes after every tick at
// which they change, in time order. Silent snapshots are dropped.
func ReadChords(r io.Reader) (res []chord.Chord, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			res, e = nil, fmt.Errorf("error parsing midi file: %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return snapshots(collectEvents(s))
}

type noteEvent struct {
	ticks     int64
	isNoteOff bool
	key       uint8
}

func collectEvents(s *smf.SMF) []noteEvent {
	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, noteEvent{ticks: absTicks, isNoteOff: velocity == 0, key: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{ticks: absTicks, isNoteOff: true, key: key})
			}
		}
	}

	// prioritize smaller tick values then note off
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ticks != events[j].ticks {
			return events[i].ticks < events[j].ticks
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})
	return events
}

var ErrNoNotes = errors.New("midi file contains no notes")

func snapshots(events []noteEvent) ([]chord.Chord, error) {
	var res []chord.Chord
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}

		// only the last event at a tick closes the snapshot
		if i+1 < len(events) && events[i+1].ticks == evt.ticks {
			continue
		}
		if len(pressed) == 0 {
			continue
		}
		c, err := chord.FromNotes(maps.Keys(pressed), true)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	if len(res) == 0 {
		return nil, ErrNoNotes
	}
	return res, nil
}
