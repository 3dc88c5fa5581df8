package trainer

// Topic is one learning unit: a named, ordered group of notes, typically the
// notes of a single string. Topics are immutable.
type Topic struct {
	name  string
	notes []Note
}

// NewTopic creates a topic over a copy of the given notes.
func NewTopic(name string, notes []Note) Topic {
	owned := make([]Note, len(notes))
	copy(owned, notes)
	return Topic{name: name, notes: owned}
}

// Name returns the topic name.
func (t Topic) Name() string {
	return t.name
}

// Notes returns a copy of the topic's notes in order.
func (t Topic) Notes() []Note {
	out := make([]Note, len(t.notes))
	copy(out, t.notes)
	return out
}

// Len returns the number of notes in the topic.
func (t Topic) Len() int {
	return len(t.notes)
}
