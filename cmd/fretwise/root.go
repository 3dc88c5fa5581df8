package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbracken/fretwise/audio"
	"github.com/tbracken/fretwise/logging"
	"github.com/tbracken/fretwise/trainer"
)

// pollInterval is the cadence at which attempt state is re-read; completion is
// polled, never waited on.
const pollInterval = 50 * time.Millisecond

// pauseBetweenAttempts gives the player a moment to see the result before the
// next note is requested.
const pauseBetweenAttempts = time.Second

var (
	flagTopic     int
	flagMode      string
	flagIncrement int
	flagThreshold float64
	flagAttempts  int
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Learn fretboard note positions by ear",
	Long: `fretwise listens to your instrument and asks you to play notes from the
selected topic, introducing new notes as you go and balancing how often each
note comes up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return practice()
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagTopic, "topic", 1, "topic index (see 'fretwise topics')")
	rootCmd.Flags().StringVar(&flagMode, "mode", "incremental", "note introduction mode: incremental or all")
	rootCmd.Flags().IntVar(&flagIncrement, "increment", trainer.DefaultAddNotesIncrement,
		"completed attempts between new notes in incremental mode")
	rootCmd.Flags().Float64Var(&flagThreshold, "threshold", trainer.DefaultThresholdMultiplier,
		"noise threshold multiplier (1.0 to 3.0)")
	rootCmd.Flags().IntVar(&flagAttempts, "attempts", 0, "stop after this many attempts (0 = until interrupted)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every note heard")
}

// Execute runs the CLI.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func practice() error {
	log := logging.GetGlobalLogger()
	if flagVerbose {
		log.SetLevel(logging.DebugLevel)
	}

	cfg := trainer.DefaultConfig()
	cfg.TopicIndex = flagTopic
	cfg.AddNotesIncrement = flagIncrement
	cfg.ThresholdMultiplier = flagThreshold
	switch strings.ToLower(flagMode) {
	case "incremental":
		cfg.AddNotesMethod = trainer.AddNotesIncremental
	case "all":
		cfg.AddNotesMethod = trainer.AddNotesAllAtOnce
	default:
		return fmt.Errorf("unrecognized mode %q (want incremental or all)", flagMode)
	}

	device, err := audio.Open(audio.Config{
		SampleRate: cfg.Analyzer.SampleRate,
		BlockSize:  cfg.Analyzer.BlockSize,
	})
	if err != nil {
		return fmt.Errorf("opening audio input: %w", err)
	}

	scheduler, err := trainer.NewScheduler(device, cfg)
	if err != nil {
		_ = device.Close()
		return err
	}
	defer scheduler.Close()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)

	log.Info("practicing", logging.Fields{
		"topic": scheduler.CurrentTopic().Name(),
		"mode":  scheduler.AddNotesMethod().String(),
	})

	for n := 0; flagAttempts == 0 || n < flagAttempts; n++ {
		attempt, err := scheduler.NextAttempt()
		if err != nil {
			return err
		}
		fmt.Printf("\nPlay: %s   (in play: %s | queued: %s)\n",
			attempt.Target(), noteNames(scheduler.NotesInPlay()), noteNames(scheduler.NotesInQueue()))

		for !attempt.Complete() && !attempt.Terminated() {
			select {
			case <-interrupted:
				_ = scheduler.TerminateCurrent()
			case <-time.After(pollInterval):
			}
		}

		if !attempt.Complete() {
			if err := attempt.Err(); err != nil {
				return fmt.Errorf("capture failed: %w", err)
			}
			fmt.Println("Stopped.")
			return nil
		}
		fmt.Printf("Got it in %.2fs (%d notes heard)\n",
			attempt.Elapsed().Seconds(), attempt.NotesHeard())
		time.Sleep(pauseBetweenAttempts)
	}
	return nil
}

func noteNames(notes []trainer.Note) string {
	if len(notes) == 0 {
		return "-"
	}
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name
	}
	return strings.Join(names, " ")
}
