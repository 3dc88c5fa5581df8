// Package windowing provides window functions for block-based spectral analysis.
package windowing

import (
	"fmt"
	"math"
)

// Hann is a precomputed Hann window of a fixed size.
type Hann struct {
	size         int
	coefficients []float64
}

// NewHann creates a symmetric Hann window of the given size.
func NewHann(size int) *Hann {
	h := &Hann{size: size}
	h.generate()
	return h
}

func (h *Hann) generate() {
	h.coefficients = make([]float64, h.size)
	if h.size == 1 {
		h.coefficients[0] = 1
		return
	}
	denominator := float64(h.size - 1)
	for i := 0; i < h.size; i++ {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
}

// ApplyInPlace multiplies the signal by the window coefficients element-wise.
func (h *Hann) ApplyInPlace(signal []float64) error {
	if len(signal) != h.size {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), h.size)
	}
	for i := range signal {
		signal[i] *= h.coefficients[i]
	}
	return nil
}

// Coefficients returns a copy of the window coefficients.
func (h *Hann) Coefficients() []float64 {
	coeffs := make([]float64, len(h.coefficients))
	copy(coeffs, h.coefficients)
	return coeffs
}

// Size returns the window size.
func (h *Hann) Size() int {
	return h.size
}
