// Package noise maintains an adaptive estimate of the ambient noise floor from a
// sliding window of magnitude readings.
package noise

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// InitialLevel seeds the window. It is deliberately conservative so that early
// attempts are not flooded with false positives before the window fills with
// real readings.
const InitialLevel = 100000

// DefaultCapacity is the default window size.
const DefaultCapacity = 50

// quietestCount is how many of the lowest readings are averaged into the floor
// estimate. The lowest readings approximate the ambient floor even while notes
// are being played, because played notes are transient relative to ambient hum.
const quietestCount = 10

// Multiplier bounds. A multiplier of 1.3 means a note is not counted until its
// energy is 30% above the sensed floor.
const (
	MinMultiplier = 1.0
	MaxMultiplier = 3.0
)

// FloorEstimator keeps a fixed-capacity FIFO window of the most recent magnitude
// readings and derives a detection threshold from the quietest of them.
type FloorEstimator struct {
	window     []float64 // ring buffer, always full
	head       int       // index of the oldest reading
	multiplier float64
}

// NewFloorEstimator creates an estimator with the given window capacity and
// threshold multiplier. Capacity must be at least 10; the multiplier must fall
// in [MinMultiplier, MaxMultiplier].
func NewFloorEstimator(capacity int, multiplier float64) (*FloorEstimator, error) {
	if capacity < quietestCount {
		return nil, fmt.Errorf("window capacity must be at least %d, got %d", quietestCount, capacity)
	}
	if multiplier < MinMultiplier || multiplier > MaxMultiplier {
		return nil, fmt.Errorf("threshold multiplier %g outside [%g, %g]",
			multiplier, MinMultiplier, MaxMultiplier)
	}

	window := make([]float64, capacity)
	for i := range window {
		window[i] = InitialLevel
	}
	return &FloorEstimator{window: window, multiplier: multiplier}, nil
}

// Push folds a new reading into the window, evicting the oldest.
func (f *FloorEstimator) Push(reading float64) {
	f.window[f.head] = reading
	f.head = (f.head + 1) % len(f.window)
}

// Threshold derives the detection threshold: the mean of the quietest readings
// in the window, times the multiplier. The window itself is not modified.
func (f *FloorEstimator) Threshold() float64 {
	sorted := make([]float64, len(f.window))
	copy(sorted, f.window)
	sort.Float64s(sorted)
	return stat.Mean(sorted[:quietestCount], nil) * f.multiplier
}

// Gate reports whether the reading exceeds the threshold as it stood before
// this reading, then folds the reading into the window. A reading is never
// compared against an estimate that includes itself.
func (f *FloorEstimator) Gate(reading float64) bool {
	exceeds := reading > f.Threshold()
	f.Push(reading)
	return exceeds
}

// SetMultiplier updates the threshold multiplier, rejecting values outside
// [MinMultiplier, MaxMultiplier].
func (f *FloorEstimator) SetMultiplier(m float64) error {
	if m < MinMultiplier || m > MaxMultiplier {
		return fmt.Errorf("threshold multiplier %g outside [%g, %g]", m, MinMultiplier, MaxMultiplier)
	}
	f.multiplier = m
	return nil
}

// Multiplier returns the current threshold multiplier.
func (f *FloorEstimator) Multiplier() float64 {
	return f.multiplier
}

// Capacity returns the fixed window capacity.
func (f *FloorEstimator) Capacity() int {
	return len(f.window)
}

// Window returns the readings oldest-first. Mainly for tests and diagnostics.
func (f *FloorEstimator) Window() []float64 {
	out := make([]float64, len(f.window))
	for i := range f.window {
		out[i] = f.window[(f.head+i)%len(f.window)]
	}
	return out
}
