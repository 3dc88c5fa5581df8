package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Device is a Source backed by the system's default portaudio input. Capture is
// mono int16, converted to float64 on read, matching a cheap microphone or
// pickup feeding the analyzer.
type Device struct {
	cfg    Config
	stream *portaudio.Stream
	buf    []int16
	active bool
}

// Open initializes portaudio and opens the default input device with the given
// capture format. The returned Device must be closed to release the host API.
func Open(cfg Config) (*Device, error) {
	if cfg.SampleRate <= 0 || cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("invalid capture config: rate %d, block %d", cfg.SampleRate, cfg.BlockSize)
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	d := &Device{
		cfg: cfg,
		buf: make([]int16, cfg.BlockSize),
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(cfg.SampleRate), cfg.BlockSize, d.buf)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("opening default input stream: %w", err)
	}
	d.stream = stream
	return d, nil
}

// Start begins capture.
func (d *Device) Start() error {
	if err := d.stream.Start(); err != nil {
		return fmt.Errorf("starting input stream: %w", err)
	}
	d.active = true
	return nil
}

// Stop halts capture.
func (d *Device) Stop() error {
	d.active = false
	if err := d.stream.Stop(); err != nil {
		return fmt.Errorf("stopping input stream: %w", err)
	}
	return nil
}

// Read blocks until one full block has been captured and copies it into block
// as float64 samples. len(block) must equal the configured block size.
func (d *Device) Read(block []float64) error {
	if len(block) != d.cfg.BlockSize {
		return fmt.Errorf("block length (%d) doesn't match configured size (%d)", len(block), d.cfg.BlockSize)
	}
	if err := d.stream.Read(); err != nil {
		return fmt.Errorf("reading input stream: %w", err)
	}
	for i, s := range d.buf {
		block[i] = float64(s)
	}
	return nil
}

// Active reports whether the device is capturing.
func (d *Device) Active() bool {
	return d.active
}

// Close releases the stream and the portaudio host API.
func (d *Device) Close() error {
	d.active = false
	err := d.stream.Close()
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
