// Package trainer implements the practice engine: the note catalog, the
// request-and-listen attempt state machine, the fairness-driven note scheduler
// and the capture worker that ties them to a live audio source.
package trainer

import (
	"fmt"

	"github.com/tbracken/fretwise/pitch"
)

// Note is a single named pitch. StaffPosition is the offset in half staff lines
// from guitar middle C (MIDI 48, one octave below piano middle C); it exists
// purely for the rendering layer and is passed through unchanged here.
type Note struct {
	MIDI          int
	Name          string
	StaffPosition int
}

// NewNote builds a Note, rejecting MIDI values outside the supported band.
func NewNote(midi int, name string, staffPosition int) (Note, error) {
	if !pitch.InBand(midi) {
		return Note{}, fmt.Errorf("midi %d outside supported band [%d, %d]",
			midi, pitch.MinMIDI, pitch.MaxMIDI)
	}
	return Note{MIDI: midi, Name: name, StaffPosition: staffPosition}, nil
}

// mustNote is used for the static catalog, whose values are known in-band.
func mustNote(midi int, name string, staffPosition int) Note {
	n, err := NewNote(midi, name, staffPosition)
	if err != nil {
		panic(err)
	}
	return n
}

// Frequency returns the note's frequency in Hz.
func (n Note) Frequency() float64 {
	return pitch.MIDIToFrequency(n.MIDI)
}

func (n Note) String() string {
	return fmt.Sprintf("%s, %d", n.Name, n.MIDI)
}
