package parser

import (
	"testing"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

func TestDetectCalcType(t *testing.T) {
	tests := []struct {
		comment1 string
		comment2 string
		want     models.CalcType
	}{
		{"ORCA SCF density", "", models.CalcORCA},
		{"", "generated by orca 5.0", models.CalcORCA},
		{"Q-Chem cube export", "", models.CalcQChem},
		{"", "q-chem output", models.CalcQChem},
		{"plain cube", "no vendor here", models.CalcGeneric},
		// ORCA keyword outranks Q-Chem when both appear.
		{"ORCA via Q-Chem converter", "", models.CalcORCA},
	}

	for _, tt := range tests {
		if got := detectCalcType(tt.comment1, tt.comment2); got != tt.want {
			t.Errorf("detectCalcType(%q, %q) = %q, want %q", tt.comment1, tt.comment2, got, tt.want)
		}
	}
}

func TestDetectOrbital(t *testing.T) {
	tests := []struct {
		comment1 string
		comment2 string
		want     bool
	}{
		{"MO coefficients", "", true},
		{"", "orbital 42", true},
		{"electron density", "", false},
		{"", "SCF Density", false},
		// Orbital keywords outrank density keywords.
		{"MO density cube", "", true},
		// Unlabeled files default to orbital data.
		{"plain cube", "no hints", true},
	}

	for _, tt := range tests {
		if got := detectOrbital(tt.comment1, tt.comment2); got != tt.want {
			t.Errorf("detectOrbital(%q, %q) = %v, want %v", tt.comment1, tt.comment2, got, tt.want)
		}
	}
}
