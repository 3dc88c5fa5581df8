// Package pitch converts between MIDI note numbers and frequencies on the
// equal-tempered scale with A4 = 440 Hz.
package pitch

import (
	"fmt"
	"math"
)

// Supported MIDI band for a 6-string guitar in standard tuning: open low E (E2)
// through the 12th fret of the high E string (E5). Frequencies outside this band
// are treated as non-musical by the analysis layer.
const (
	MinMIDI = 40 // E2
	MaxMIDI = 76 // E5
)

// MIDIToFrequency returns the frequency in Hz of the given MIDI note number.
func MIDIToFrequency(midi int) float64 {
	return 440 * math.Pow(2, float64(midi-69)/12.0)
}

// FrequencyToMIDI returns the MIDI note number nearest to the given frequency.
// Ties (frequencies exactly between two notes) round half away from zero.
// Frequencies <= 0 are a caller contract violation and return an error.
func FrequencyToMIDI(freq float64) (int, error) {
	if freq <= 0 {
		return 0, fmt.Errorf("frequency must be positive, got %g", freq)
	}
	return int(math.Round(69 + 12*math.Log2(freq/440.0))), nil
}

// InBand reports whether the MIDI note number falls inside the supported band.
func InBand(midi int) bool {
	return midi >= MinMIDI && midi <= MaxMIDI
}
