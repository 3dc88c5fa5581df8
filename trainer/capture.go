package trainer

import (
	"fmt"
	"time"

	"github.com/tbracken/fretwise/logging"
	"github.com/tbracken/fretwise/pitch"
)

// captureLoop is the per-attempt worker. It pulls fixed-size blocks from the
// audio source, gates each block's magnitude against the noise floor as it
// stood before that block, and completes the attempt when the gated dominant
// frequency maps to the target note's MIDI value.
//
// The worker exclusively owns the noise window and the attempt while it runs;
// the caller only polls. Termination is observed at iteration boundaries, so
// cancellation latency is bounded by one block's capture duration. Read and
// start failures are fatal to the attempt, which ends terminated but not
// completed.
func (s *Scheduler) captureLoop(a *Attempt, done chan struct{}) {
	defer close(done)

	log := s.log.WithFields(logging.Fields{
		"attempt": a.ID(),
		"target":  a.Target().String(),
	})

	if err := s.source.Start(); err != nil {
		a.fail(fmt.Errorf("starting capture: %w", err))
		log.Error(err, "audio source failed to start")
		return
	}
	defer func() {
		if s.source.Active() {
			if err := s.source.Stop(); err != nil {
				log.Error(err, "audio source failed to stop")
			}
		}
	}()

	if err := a.markStarted(time.Now()); err != nil {
		a.fail(err)
		return
	}

	block := make([]float64, s.analyzer.Config().BlockSize)
	for s.source.Active() && !a.Terminated() {
		if err := s.source.Read(block); err != nil {
			a.fail(fmt.Errorf("reading capture block: %w", err))
			log.Error(err, "audio read failed, abandoning attempt")
			return
		}

		reading, err := s.analyzer.Analyze(block)
		if err != nil {
			a.fail(fmt.Errorf("analyzing capture block: %w", err))
			log.Error(err, "analysis failed, abandoning attempt")
			return
		}

		if !s.gate(reading.Magnitude) {
			continue
		}

		a.addNoteHeard()
		midi, err := pitch.FrequencyToMIDI(reading.Frequency)
		if err != nil {
			continue
		}
		log.Debug("note heard", logging.Fields{
			"frequency": reading.Frequency,
			"midi":      midi,
			"magnitude": reading.Magnitude,
		})

		if midi == a.Target().MIDI {
			now := time.Now()
			if err := a.markSuccess(now); err != nil {
				a.fail(err)
				return
			}
			if err := a.markComplete(); err != nil {
				a.fail(err)
				return
			}
			log.Info("target note heard", logging.Fields{
				"elapsed":     a.Elapsed().Round(10 * time.Millisecond).String(),
				"notes_heard": a.NotesHeard(),
			})
			return
		}
	}

	log.Info("attempt terminated before completion")
}
