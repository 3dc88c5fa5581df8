package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbracken/fretwise/pitch"
)

func TestNewNoteRejectsOutOfBandMIDI(t *testing.T) {
	_, err := NewNote(pitch.MinMIDI-1, "D#", -6)
	assert.Error(t, err)
	_, err = NewNote(pitch.MaxMIDI+1, "F", 17)
	assert.Error(t, err)

	n, err := NewNote(pitch.MinMIDI, "E", -5)
	require.NoError(t, err)
	assert.Equal(t, pitch.MinMIDI, n.MIDI)
	assert.InDelta(t, 82.407, n.Frequency(), 1e-3)
}

func TestNoteEqualityIsStructural(t *testing.T) {
	a, err := NewNote(42, "F#", -4)
	require.NoError(t, err)
	b, err := NewNote(42, "F#", -4)
	require.NoError(t, err)
	enharmonic, err := NewNote(42, "Gb", -3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, enharmonic, "same pitch, different spelling")
}

func TestTopicNotesAreCopies(t *testing.T) {
	topic := Catalog()[0]
	notes := topic.Notes()
	notes[0] = Note{}
	assert.NotEqual(t, Note{}, topic.Notes()[0], "mutating a snapshot must not touch the topic")
}

func TestCatalogShape(t *testing.T) {
	topics := Catalog()
	require.Len(t, topics, 18, "six strings, three spellings each")

	for _, topic := range topics {
		notes := topic.Notes()
		assert.NotEmpty(t, topic.Name())
		assert.GreaterOrEqual(t, len(notes), 8)
		for i, n := range notes {
			assert.True(t, pitch.InBand(n.MIDI), "topic %q note %s out of band", topic.Name(), n)
			if i > 0 {
				assert.Greater(t, n.MIDI, notes[i-1].MIDI-1,
					"topic %q notes should ascend", topic.Name())
			}
		}
	}
}
