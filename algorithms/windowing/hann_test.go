package windowing

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestHannEndpointsAndPeak(t *testing.T) {
	h := NewHann(9)
	coeffs := h.Coefficients()

	if math.Abs(coeffs[0]) > tolerance {
		t.Errorf("first coefficient: got %g, want 0", coeffs[0])
	}
	if math.Abs(coeffs[8]) > tolerance {
		t.Errorf("last coefficient: got %g, want 0", coeffs[8])
	}
	if math.Abs(coeffs[4]-1.0) > tolerance {
		t.Errorf("center coefficient: got %g, want 1", coeffs[4])
	}
}

func TestHannSymmetry(t *testing.T) {
	h := NewHann(64)
	coeffs := h.Coefficients()
	for i := 0; i < len(coeffs)/2; i++ {
		j := len(coeffs) - 1 - i
		if math.Abs(coeffs[i]-coeffs[j]) > tolerance {
			t.Errorf("coefficients %d and %d differ: %g vs %g", i, j, coeffs[i], coeffs[j])
		}
	}
}

func TestApplyInPlace(t *testing.T) {
	h := NewHann(8)
	signal := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	if err := h.ApplyInPlace(signal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range h.Coefficients() {
		if math.Abs(signal[i]-c) > tolerance {
			t.Errorf("sample %d: got %g, want %g", i, signal[i], c)
		}
	}
}

func TestApplyInPlaceRejectsWrongLength(t *testing.T) {
	h := NewHann(8)
	if err := h.ApplyInPlace(make([]float64, 7)); err == nil {
		t.Error("expected error for mismatched signal length")
	}
}
