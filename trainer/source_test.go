package trainer

import (
	"math"
	"sync"
	"time"
)

// fakeSource is a scripted audio.Source. It emits silence until pluck is
// called, then emits exactly one block of the plucked tone, modeling a player
// who waits, plays the requested note once and goes quiet again.
type fakeSource struct {
	mu         sync.Mutex
	sampleRate int
	active     bool
	closed     bool
	tone       float64 // pending tone frequency; 0 means silence
	amplitude  float64
	readErr    error
}

func newFakeSource(sampleRate int) *fakeSource {
	return &fakeSource{
		sampleRate: sampleRate,
		amplitude:  20000,
	}
}

// pluck schedules one block of the given tone.
func (f *fakeSource) pluck(freq float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tone = freq
}

// failNextRead makes the following Read return err.
func (f *fakeSource) failNextRead(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

func (f *fakeSource) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = true
	return nil
}

func (f *fakeSource) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = false
	return nil
}

func (f *fakeSource) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *fakeSource) Read(block []float64) error {
	// A real device blocks for the block's capture duration; a short sleep
	// keeps the worker from spinning and keeps timestamps strictly ordered.
	time.Sleep(time.Millisecond)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		err := f.readErr
		f.readErr = nil
		return err
	}

	freq := f.tone
	f.tone = 0
	for i := range block {
		if freq == 0 {
			block[i] = 0
			continue
		}
		block[i] = f.amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(f.sampleRate))
	}
	return nil
}

func (f *fakeSource) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.active = false
	return nil
}
