package trainer

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State-machine violation errors. Under correct scheduler use none of these can
// occur; hitting one indicates a programming error, not a runtime condition.
var (
	ErrAlreadyStarted     = errors.New("attempt already started")
	ErrAlreadyComplete    = errors.New("attempt already complete")
	ErrAlreadyTerminated  = errors.New("attempt already terminated")
	ErrSuccessAlreadySet  = errors.New("success time already set")
	ErrSuccessBeforeStart = errors.New("success time must come after start time")
)

// Attempt is one request-and-listen cycle for a single target note. It records
// how many gated notes were heard before the right one and how long the right
// one took. The capture worker writes it; the caller polls it, so all access
// goes through a mutex.
//
// Lifecycle: Created -> Listening (start time set once) -> Complete or
// Terminated, each reachable exactly once.
type Attempt struct {
	mu sync.Mutex

	id         string
	target     Note
	notesHeard int
	complete   bool
	terminate  bool
	start      time.Time
	success    time.Time
	err        error
}

// NewAttempt creates an attempt for the given target note.
func NewAttempt(target Note) *Attempt {
	return &Attempt{
		id:     uuid.NewString(),
		target: target,
	}
}

// ID returns the attempt's unique identifier.
func (a *Attempt) ID() string {
	return a.id
}

// Target returns the note this attempt is listening for.
func (a *Attempt) Target() Note {
	return a.target
}

// markStarted records the moment capture began. It may be called exactly once.
func (a *Attempt) markStarted(t time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.start.IsZero() {
		return ErrAlreadyStarted
	}
	a.start = t
	return nil
}

// markSuccess records the moment the target note was heard. It may be called
// exactly once and t must come after the start time.
func (a *Attempt) markSuccess(t time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.success.IsZero() {
		return ErrSuccessAlreadySet
	}
	if !t.After(a.start) {
		return ErrSuccessBeforeStart
	}
	a.success = t
	return nil
}

// markComplete transitions the attempt to its successful terminal state.
func (a *Attempt) markComplete() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.complete {
		return ErrAlreadyComplete
	}
	a.complete = true
	return nil
}

// RequestTerminate asks the capture worker to stop at the next iteration
// boundary. Asking twice is an error.
func (a *Attempt) RequestTerminate() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.terminate {
		return ErrAlreadyTerminated
	}
	a.terminate = true
	return nil
}

// fail records a capture failure and forces termination. The attempt ends
// terminated but not completed, which is how resource errors surface to the
// polling caller.
func (a *Attempt) fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err == nil {
		a.err = err
	}
	a.terminate = true
}

// addNoteHeard counts one gated (above-threshold) detection.
func (a *Attempt) addNoteHeard() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notesHeard++
}

// Started reports whether capture has begun.
func (a *Attempt) Started() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.start.IsZero()
}

// Complete reports whether the target note was heard.
func (a *Attempt) Complete() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.complete
}

// Terminated reports whether termination was requested or forced.
func (a *Attempt) Terminated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.terminate
}

// NotesHeard returns how many above-threshold notes were heard so far.
func (a *Attempt) NotesHeard() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.notesHeard
}

// Err returns the capture failure, if any.
func (a *Attempt) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Elapsed returns success minus start once complete, the live duration since
// start while listening, and zero before capture begins. The live value is not
// memoized; it grows with each call.
func (a *Attempt) Elapsed() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.start.IsZero() {
		return 0
	}
	if a.complete {
		return a.success.Sub(a.start)
	}
	return time.Since(a.start)
}
