// Package audio defines the capture boundary: a blocking block-oriented source
// of mono samples, with a portaudio-backed default implementation.
package audio

// Source is the engine's view of an audio input. Implementations deliver mono
// samples in fixed-size blocks; Read blocks until a full block is available.
//
// A Source is opened once for the lifetime of its owner and started/stopped
// per practice attempt. Only one reader may use a Source at a time.
type Source interface {
	// Start begins capture. Samples captured before Start are discarded.
	Start() error

	// Stop halts capture. The source may be started again afterwards.
	Stop() error

	// Read fills block with the next len(block) samples, blocking until they
	// have been captured. A failed read is fatal to the current capture; the
	// torn block cannot be meaningfully reprocessed.
	Read(block []float64) error

	// Active reports whether the source is currently capturing.
	Active() bool

	// Close releases the underlying device. The source is unusable afterwards.
	Close() error
}

// Config describes the capture format.
type Config struct {
	SampleRate int `json:"sample_rate"`
	BlockSize  int `json:"block_size"`
}

// DefaultConfig matches the analyzer defaults: 44.1 kHz mono, 16384-sample blocks.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		BlockSize:  1 << 14,
	}
}
