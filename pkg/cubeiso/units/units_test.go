package units

import (
	"math"
	"testing"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

func headerWith(comment1, comment2 string, step float64) *models.Header {
	h := &models.Header{Comment1: comment1, Comment2: comment2}
	for i := 0; i < 3; i++ {
		h.AxisVectors[i][i+1] = step
	}
	return h
}

func TestDetectAngstrom(t *testing.T) {
	tests := []struct {
		name string
		h    *models.Header
		want bool
	}{
		{"angstrom keyword", headerWith("grid in Angstrom", "", 0.1), true},
		{"bohr keyword", headerWith("", "spacing in bohr", 5.0), false},
		// Keyword beats the spacing heuristic.
		{"angstrom keyword with small spacing", headerWith("ANGSTROM", "", 0.2), true},
		{"small spacing means bohr", headerWith("no hints", "", 0.3), false},
		{"large spacing means angstrom", headerWith("no hints", "", 3.0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectAngstrom(tt.h); got != tt.want {
				t.Errorf("DetectAngstrom = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertDensity(t *testing.T) {
	factor := BohrToAngstrom * BohrToAngstrom * BohrToAngstrom
	// The native-unit flag is deliberately ignored: both calls divide.
	for _, isAng := range []bool{true, false} {
		got := ConvertDensity(1.0, isAng)
		if math.Abs(got-1.0/factor) > 1e-12 {
			t.Errorf("ConvertDensity(1.0, %v) = %g, want %g", isAng, got, 1.0/factor)
		}
	}
}

func TestConvertOrbital(t *testing.T) {
	factor := math.Pow(BohrToAngstrom, 1.5)
	if got := ConvertOrbital(1.0, false); math.Abs(got-1.0/factor) > 1e-12 {
		t.Errorf("ConvertOrbital(1.0, false) = %g, want %g", got, 1.0/factor)
	}
	if got := ConvertOrbital(1.0, true); got != 1.0 {
		t.Errorf("ConvertOrbital(1.0, true) = %g, want 1.0 (no-op for native Å)", got)
	}
}

func TestName(t *testing.T) {
	if Name(true) != "Å" || Name(false) != "bohr" {
		t.Errorf("Name: got %q/%q, want Å/bohr", Name(true), Name(false))
	}
}
