package spectral

import (
	"math"
	"testing"

	"github.com/tbracken/fretwise/pitch"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BlockSize = 8192 // keep the tests quick; resolution is still ~5.4 Hz
	return cfg
}

// generateSine creates a sine wave block of the given amplitude and frequency.
func generateSine(amplitude, freq float64, cfg Config) []float64 {
	out := make([]float64, cfg.BlockSize)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(cfg.SampleRate))
	}
	return out
}

// mix sums signals of equal length.
func mix(signals ...[]float64) []float64 {
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i, v := range s {
			out[i] += v
		}
	}
	return out
}

func TestAnalyzeFindsDominantInBandFrequency(t *testing.T) {
	a, err := NewAnalyzer(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	freq := pitch.MIDIToFrequency(57) // A3, 220 Hz
	reading, err := a.Analyze(generateSine(10000, freq, a.Config()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(reading.Frequency-freq) > a.BinResolution() {
		t.Errorf("dominant frequency: got %g, want %g within one bin (%g)",
			reading.Frequency, freq, a.BinResolution())
	}
	if reading.Magnitude <= 0 {
		t.Errorf("magnitude: got %g, want > 0", reading.Magnitude)
	}
}

// Even when the loudest spectral energy lies outside the guitar band, the
// reported dominant frequency must stay inside it.
func TestAnalyzeBandRestriction(t *testing.T) {
	a, err := NewAnalyzer(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inBand := pitch.MIDIToFrequency(45) // A2, 110 Hz
	signal := mix(
		generateSine(50000, 30, a.Config()),   // subsonic rumble, below the band
		generateSine(50000, 5000, a.Config()), // hiss, above the band
		generateSine(500, inBand, a.Config()),
	)

	reading, err := a.Analyze(signal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(reading.Frequency-inBand) > a.BinResolution() {
		t.Errorf("dominant frequency: got %g, want in-band %g", reading.Frequency, inBand)
	}

	midi, err := pitch.FrequencyToMIDI(reading.Frequency)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pitch.InBand(midi) {
		t.Errorf("dominant maps to midi %d, outside the band", midi)
	}
}

// With only out-of-band energy present, whatever leakage wins the restricted
// range must still map to an in-band MIDI value.
func TestAnalyzeNeverReportsOutOfBand(t *testing.T) {
	a, err := NewAnalyzer(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, freq := range []float64{25, 40, 2000, 8000} {
		reading, err := a.Analyze(generateSine(30000, freq, a.Config()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		midi, err := pitch.FrequencyToMIDI(reading.Frequency)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pitch.InBand(midi) {
			t.Errorf("tone at %g Hz: dominant %g maps to midi %d, outside the band",
				freq, reading.Frequency, midi)
		}
	}
}

// The noise-level signal averages the entire spectrum, so energy outside the
// band still raises the magnitude reading.
func TestMagnitudeSeesOutOfBandEnergy(t *testing.T) {
	a, err := NewAnalyzer(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quiet, err := a.Analyze(make([]float64, a.Config().BlockSize))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loud, err := a.Analyze(generateSine(30000, 5000, a.Config()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loud.Magnitude <= quiet.Magnitude {
		t.Errorf("out-of-band energy should raise the magnitude reading: quiet %g, loud %g",
			quiet.Magnitude, loud.Magnitude)
	}
}

func TestAnalyzeRejectsWrongBlockLength(t *testing.T) {
	a, err := NewAnalyzer(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Analyze(make([]float64, 100)); err == nil {
		t.Error("expected error for mismatched block length")
	}
}

func TestNewAnalyzerValidation(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"tiny block", func(c *Config) { c.BlockSize = 1 }},
		{"inverted band", func(c *Config) { c.MinMIDI, c.MaxMIDI = c.MaxMIDI, c.MinMIDI }},
		{"band below supported", func(c *Config) { c.MinMIDI = pitch.MinMIDI - 1 }},
		{"band above supported", func(c *Config) { c.MaxMIDI = pitch.MaxMIDI + 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mod(&cfg)
			if _, err := NewAnalyzer(cfg); err == nil {
				t.Error("expected config to be rejected")
			}
		})
	}
}

func TestBandBinsCoverBandEdges(t *testing.T) {
	a, err := NewAnalyzer(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	min, max := a.BandBins()
	if min <= 0 || max <= min {
		t.Fatalf("implausible band bins [%d, %d]", min, max)
	}

	lowEdge := pitch.MIDIToFrequency(pitch.MinMIDI)
	highEdge := pitch.MIDIToFrequency(pitch.MaxMIDI)
	step := a.BinResolution()
	if math.Abs(float64(min)*step-lowEdge) > step/2 {
		t.Errorf("low bin %d (%g Hz) not nearest to band edge %g", min, float64(min)*step, lowEdge)
	}
	if math.Abs(float64(max)*step-highEdge) > step/2 {
		t.Errorf("high bin %d (%g Hz) not nearest to band edge %g", max, float64(max)*step, highEdge)
	}
}
