package trainer

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/tbracken/fretwise/algorithms/noise"
	"github.com/tbracken/fretwise/algorithms/spectral"
	"github.com/tbracken/fretwise/audio"
	"github.com/tbracken/fretwise/logging"
)

// AddNotesMethod controls how a topic's notes are introduced over a session.
type AddNotesMethod int

const (
	// AddNotesIncremental starts with a few notes and introduces the rest one
	// at a time as attempts are completed.
	AddNotesIncremental AddNotesMethod = iota

	// AddNotesAllAtOnce puts the whole topic in play immediately.
	AddNotesAllAtOnce
)

func (m AddNotesMethod) String() string {
	switch m {
	case AddNotesIncremental:
		return "incremental"
	case AddNotesAllAtOnce:
		return "all-at-once"
	default:
		return "unknown"
	}
}

const (
	// DefaultThresholdMultiplier suits a cheap microphone placed near the
	// sound hole; with a proper pickup it can be raised to reject more noise.
	DefaultThresholdMultiplier = 1.3

	// DefaultAddNotesIncrement is how many completed attempts introduce one
	// new note in incremental mode.
	DefaultAddNotesIncrement = 10

	MinAddNotesIncrement = 1
	MaxAddNotesIncrement = 100

	// seedCount is how many notes incremental mode starts with.
	seedCount = 3
)

var (
	ErrAttemptInProgress = errors.New("an attempt is already in progress")
	ErrNoActiveAttempt   = errors.New("no active attempt")
)

// Config holds the scheduler's tunable parameters.
type Config struct {
	Analyzer            spectral.Config `json:"analyzer"`
	WindowCapacity      int             `json:"window_capacity"`
	ThresholdMultiplier float64         `json:"threshold_multiplier"`
	AddNotesMethod      AddNotesMethod  `json:"add_notes_method"`
	AddNotesIncrement   int             `json:"add_notes_increment"`
	TopicIndex          int             `json:"topic_index"`

	// Seed seeds the random source; zero means time-seeded. Tests inject a
	// fixed seed for determinism.
	Seed int64 `json:"seed,omitempty"`
}

// DefaultConfig returns the standard practice configuration.
func DefaultConfig() Config {
	return Config{
		Analyzer:            spectral.DefaultConfig(),
		WindowCapacity:      noise.DefaultCapacity,
		ThresholdMultiplier: DefaultThresholdMultiplier,
		AddNotesMethod:      AddNotesIncremental,
		AddNotesIncrement:   DefaultAddNotesIncrement,
		TopicIndex:          1, // Low E String Incl Sharps
	}
}

// Scheduler owns the note catalog, the practice history and the active capture
// worker. It decides which note to request next, balancing repetitions across
// the notes in play while forbidding immediate repeats.
//
// Exactly one capture worker runs at a time. The caller interacts through
// non-blocking reads (Complete, Elapsed, NotesInPlay, ...) at its own cadence;
// there is no blocking wait for completion.
type Scheduler struct {
	mu sync.Mutex

	topics   []Topic
	topicIdx int

	method     AddNotesMethod
	increment  int
	inPlay     []Note
	inQueue    []Note
	history    []*Attempt
	growthMark int
	needReseed bool

	analyzer *spectral.Analyzer
	floor    *noise.FloorEstimator
	source   audio.Source
	rng      *rand.Rand
	log      logging.Logger

	workerDone chan struct{}
}

// NewScheduler builds a scheduler over the static catalog and the given audio
// source. The source is owned by the scheduler from here on and is closed by
// Close.
func NewScheduler(source audio.Source, cfg Config) (*Scheduler, error) {
	analyzer, err := spectral.NewAnalyzer(cfg.Analyzer)
	if err != nil {
		return nil, fmt.Errorf("building analyzer: %w", err)
	}
	floor, err := noise.NewFloorEstimator(cfg.WindowCapacity, cfg.ThresholdMultiplier)
	if err != nil {
		return nil, fmt.Errorf("building noise floor estimator: %w", err)
	}

	topics := Catalog()
	if cfg.TopicIndex < 0 || cfg.TopicIndex >= len(topics) {
		return nil, fmt.Errorf("topic index %d outside catalog [0, %d)", cfg.TopicIndex, len(topics))
	}
	if cfg.AddNotesMethod != AddNotesIncremental && cfg.AddNotesMethod != AddNotesAllAtOnce {
		return nil, fmt.Errorf("unrecognized add-notes method %d", cfg.AddNotesMethod)
	}
	if cfg.AddNotesIncrement < MinAddNotesIncrement || cfg.AddNotesIncrement > MaxAddNotesIncrement {
		return nil, fmt.Errorf("add-notes increment %d outside [%d, %d]",
			cfg.AddNotesIncrement, MinAddNotesIncrement, MaxAddNotesIncrement)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Scheduler{
		topics:     topics,
		topicIdx:   cfg.TopicIndex,
		method:     cfg.AddNotesMethod,
		increment:  cfg.AddNotesIncrement,
		needReseed: true,
		analyzer:   analyzer,
		floor:      floor,
		source:     source,
		rng:        rand.New(rand.NewSource(seed)),
		log:        logging.GetGlobalLogger().WithFields(logging.Fields{"component": "scheduler"}),
	}, nil
}

// Topics returns the catalog.
func (s *Scheduler) Topics() []Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Topic, len(s.topics))
	copy(out, s.topics)
	return out
}

// CurrentTopic returns the active topic.
func (s *Scheduler) CurrentTopic() Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topics[s.topicIdx]
}

// SetTopic switches the active topic. The practice history is reset and the
// play/queue sets are re-seeded before the next attempt.
func (s *Scheduler) SetTopic(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.topics) {
		return fmt.Errorf("topic index %d outside catalog [0, %d)", index, len(s.topics))
	}
	s.topicIdx = index
	s.needReseed = true
	return nil
}

// AddNotesMethod returns the active note-introduction mode.
func (s *Scheduler) AddNotesMethod() AddNotesMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.method
}

// SetAddNotesMethod switches the note-introduction mode. Changing the mode
// resets the practice history and re-seeds the play/queue sets.
func (s *Scheduler) SetAddNotesMethod(m AddNotesMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m != AddNotesIncremental && m != AddNotesAllAtOnce {
		return fmt.Errorf("unrecognized add-notes method %d", m)
	}
	if m != s.method {
		s.needReseed = true
	}
	s.method = m
	return nil
}

// AddNotesIncrement returns the completed-attempt count between note
// introductions.
func (s *Scheduler) AddNotesIncrement() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.increment
}

// SetAddNotesIncrement updates the introduction increment, rejecting values
// outside [MinAddNotesIncrement, MaxAddNotesIncrement].
func (s *Scheduler) SetAddNotesIncrement(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < MinAddNotesIncrement || n > MaxAddNotesIncrement {
		return fmt.Errorf("add-notes increment %d outside [%d, %d]",
			n, MinAddNotesIncrement, MaxAddNotesIncrement)
	}
	s.increment = n
	return nil
}

// ThresholdMultiplier returns the noise-gate multiplier.
func (s *Scheduler) ThresholdMultiplier() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.floor.Multiplier()
}

// SetThresholdMultiplier updates the noise-gate multiplier, rejecting values
// outside the estimator's valid range.
func (s *Scheduler) SetThresholdMultiplier(m float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.floor.SetMultiplier(m)
}

// NoiseThreshold returns the current detection threshold.
func (s *Scheduler) NoiseThreshold() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.floor.Threshold()
}

// NotesInPlay returns an ordered snapshot of the eligible target notes.
func (s *Scheduler) NotesInPlay() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Note, len(s.inPlay))
	copy(out, s.inPlay)
	return out
}

// NotesInQueue returns an ordered snapshot of the notes not yet introduced.
func (s *Scheduler) NotesInQueue() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Note, len(s.inQueue))
	copy(out, s.inQueue)
	return out
}

// CurrentAttempt returns the most recent attempt, or nil before the first one.
func (s *Scheduler) CurrentAttempt() *Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Scheduler) currentLocked() *Attempt {
	if len(s.history) == 0 {
		return nil
	}
	return s.history[len(s.history)-1]
}

// TerminateCurrent asks the active attempt's worker to stop. Cancellation is
// cooperative; latency is bounded by one block's capture duration.
func (s *Scheduler) TerminateCurrent() error {
	s.mu.Lock()
	cur := s.currentLocked()
	s.mu.Unlock()
	if cur == nil {
		return ErrNoActiveAttempt
	}
	return cur.RequestTerminate()
}

// NextAttempt selects the next target note, creates an attempt for it and
// starts the capture worker. It fails if a worker is still running or the
// current attempt is unfinished.
func (s *Scheduler) NextAttempt() (*Attempt, error) {
	s.mu.Lock()

	if s.workerDone != nil {
		select {
		case <-s.workerDone:
		default:
			s.mu.Unlock()
			return nil, ErrAttemptInProgress
		}
	}
	if cur := s.currentLocked(); cur != nil && !cur.Complete() && !cur.Terminated() {
		s.mu.Unlock()
		return nil, ErrAttemptInProgress
	}

	if s.needReseed {
		s.reseedLocked()
	} else {
		s.maybeGrowLocked()
	}

	target := s.selectTargetLocked()
	attempt := NewAttempt(target)
	s.history = append(s.history, attempt)

	done := make(chan struct{})
	s.workerDone = done
	s.mu.Unlock()

	s.log.Info("new practice attempt", logging.Fields{
		"attempt": attempt.ID(),
		"target":  target.String(),
	})
	go s.captureLoop(attempt, done)
	return attempt, nil
}

// reseedLocked clears the session history and rebuilds the play/queue sets per
// the active mode.
func (s *Scheduler) reseedLocked() {
	s.needReseed = false
	s.history = nil
	s.growthMark = 0
	notes := s.topics[s.topicIdx].Notes()

	switch s.method {
	case AddNotesAllAtOnce:
		s.inPlay = notes
		s.inQueue = nil
	default:
		s.inQueue = notes
		s.inPlay = nil
		n := seedCount
		if n > len(s.inQueue) {
			n = len(s.inQueue)
		}
		for range n {
			s.moveQueuedLocked()
		}
	}
}

// maybeGrowLocked moves one queued note into play once enough further attempts
// have been completed since the last introduction.
func (s *Scheduler) maybeGrowLocked() {
	if s.method != AddNotesIncremental || len(s.inQueue) == 0 {
		return
	}
	completed := 0
	for _, a := range s.history {
		if a.Complete() {
			completed++
		}
	}
	if completed-s.growthMark >= s.increment {
		note := s.moveQueuedLocked()
		s.growthMark = completed
		s.log.Info("introduced new note", logging.Fields{
			"note":    note.String(),
			"in_play": len(s.inPlay),
			"queued":  len(s.inQueue),
		})
	}
}

// moveQueuedLocked moves one uniformly random note from queue to play.
func (s *Scheduler) moveQueuedLocked() Note {
	i := s.rng.Intn(len(s.inQueue))
	note := s.inQueue[i]
	s.inQueue = append(s.inQueue[:i], s.inQueue[i+1:]...)
	s.inPlay = append(s.inPlay, note)
	return note
}

// selectTargetLocked draws the next target uniformly from the candidate set.
func (s *Scheduler) selectTargetLocked() Note {
	var last *Note
	if cur := s.currentLocked(); cur != nil {
		t := cur.Target()
		last = &t
	}
	candidates := selectionCandidates(s.inPlay, s.history, last)
	return candidates[s.rng.Intn(len(candidates))]
}

// gate runs the compare-before-fold noise check for one magnitude reading.
func (s *Scheduler) gate(magnitude float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.floor.Gate(magnitude)
}

// Close terminates any active attempt, waits for its worker to exit and closes
// the audio source.
func (s *Scheduler) Close() error {
	s.mu.Lock()
	cur := s.currentLocked()
	done := s.workerDone
	s.mu.Unlock()

	if cur != nil && !cur.Terminated() && !cur.Complete() {
		_ = cur.RequestTerminate()
	}
	if done != nil {
		<-done
	}
	return s.source.Close()
}
