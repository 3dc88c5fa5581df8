// Package spectral turns fixed-size audio blocks into dominant-frequency and
// noise-level readings, restricted to a guitar-relevant frequency band.
package spectral

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/tbracken/fretwise/algorithms/windowing"
	"github.com/tbracken/fretwise/pitch"
)

// Config holds the analyzer parameters. BlockSize was chosen so that adjacent
// notes on the low E string land in distinct FFT bins while a modest machine can
// still process roughly three blocks per second.
type Config struct {
	SampleRate int `json:"sample_rate"`
	BlockSize  int `json:"block_size"`

	// MinMIDI/MaxMIDI bound the candidate bins. Bins outside the band act as a
	// bandpass filter and can never be reported as the dominant frequency.
	MinMIDI int `json:"min_midi"`
	MaxMIDI int `json:"max_midi"`
}

// DefaultConfig returns the standard guitar-band analyzer configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		BlockSize:  1 << 14,
		MinMIDI:    pitch.MinMIDI,
		MaxMIDI:    pitch.MaxMIDI,
	}
}

// Reading is the result of analyzing one audio block.
type Reading struct {
	// Frequency is the center frequency of the loudest bin inside the
	// configured band.
	Frequency float64

	// Magnitude is the mean magnitude across the entire half-spectrum, band
	// restriction not applied. The wider average deliberately measures "is
	// there signal energy at all" independently of where that energy sits, and
	// feeds the noise-floor estimate.
	Magnitude float64
}

// Analyzer computes per-block spectral readings. The window function and the
// band's bin bounds are computed once at construction.
type Analyzer struct {
	cfg      Config
	window   *windowing.Hann
	binFreqs []float64
	iMin     int
	iMax     int // inclusive
	scratch  []float64
}

// NewAnalyzer validates the configuration and precomputes the window function,
// the per-bin frequencies and the band's bin range.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", cfg.SampleRate)
	}
	if cfg.BlockSize < 2 {
		return nil, fmt.Errorf("block size must be at least 2, got %d", cfg.BlockSize)
	}
	if cfg.MinMIDI > cfg.MaxMIDI {
		return nil, fmt.Errorf("MIDI band inverted: min %d > max %d", cfg.MinMIDI, cfg.MaxMIDI)
	}
	if !pitch.InBand(cfg.MinMIDI) || !pitch.InBand(cfg.MaxMIDI) {
		return nil, fmt.Errorf("MIDI band [%d, %d] outside supported range [%d, %d]",
			cfg.MinMIDI, cfg.MaxMIDI, pitch.MinMIDI, pitch.MaxMIDI)
	}

	a := &Analyzer{
		cfg:     cfg,
		window:  windowing.NewHann(cfg.BlockSize),
		scratch: make([]float64, cfg.BlockSize),
	}

	// Bin resolution is sampleRate/blockSize over the half-spectrum 0..N/2.
	step := float64(cfg.SampleRate) / float64(cfg.BlockSize)
	a.binFreqs = make([]float64, cfg.BlockSize/2+1)
	for i := range a.binFreqs {
		a.binFreqs[i] = float64(i) * step
	}

	a.iMin = a.nearestBin(pitch.MIDIToFrequency(cfg.MinMIDI))
	a.iMax = a.nearestBin(pitch.MIDIToFrequency(cfg.MaxMIDI))
	return a, nil
}

// nearestBin returns the index of the half-spectrum bin closest to freq.
func (a *Analyzer) nearestBin(freq float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, f := range a.binFreqs {
		if d := math.Abs(f - freq); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Analyze windows the block, computes its real spectrum and returns the
// dominant in-band frequency together with the whole-spectrum mean magnitude.
// The block length must equal the configured block size.
func (a *Analyzer) Analyze(block []float64) (Reading, error) {
	if len(block) != a.cfg.BlockSize {
		return Reading{}, fmt.Errorf("block length (%d) doesn't match configured size (%d)",
			len(block), a.cfg.BlockSize)
	}

	copy(a.scratch, block)
	if err := a.window.ApplyInPlace(a.scratch); err != nil {
		return Reading{}, err
	}

	spectrum := fft.FFTReal(a.scratch)

	mags := make([]float64, len(a.binFreqs))
	for i := range mags {
		mags[i] = cmplxAbs(spectrum[i])
	}

	peak := a.iMin
	for i := a.iMin + 1; i <= a.iMax; i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	return Reading{
		Frequency: a.binFreqs[peak],
		Magnitude: stat.Mean(mags, nil),
	}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// BandBins returns the inclusive half-spectrum bin range eligible for peak
// selection.
func (a *Analyzer) BandBins() (min, max int) {
	return a.iMin, a.iMax
}

// BinResolution returns the frequency width of one bin in Hz.
func (a *Analyzer) BinResolution() float64 {
	return float64(a.cfg.SampleRate) / float64(a.cfg.BlockSize)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
