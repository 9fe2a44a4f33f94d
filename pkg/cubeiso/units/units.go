// Package units handles bohr/Ångström detection and isovalue conversion.
package units

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

// BohrToAngstrom is the bohr radius in Ångström (CODATA 2022).
// 1 bohr = 0.529177210544 Å, so 1 bohr³ = BohrToAngstrom³ Å³.
const BohrToAngstrom = 0.529177210544

// spacingThreshold separates typical bohr-denominated axis step lengths
// (sub-unit to low single digits) from Å-denominated ones. Empirical
// convention, not a physical constant.
const spacingThreshold = 2.0

// DetectAngstrom reports whether the cube's native coordinates are in
// Ångström. Explicit unit keywords in the comments take precedence; absent
// those, the average axis step length decides.
func DetectAngstrom(h *models.Header) bool {
	if icontains(h.Comment1, "angstrom") || icontains(h.Comment2, "angstrom") {
		return true
	}
	if icontains(h.Comment1, "bohr") || icontains(h.Comment2, "bohr") {
		return false
	}
	total := 0.0
	for i := 0; i < 3; i++ {
		total += floats.Norm(h.AxisVectors[i][1:], 2)
	}
	return total/3.0 > spacingThreshold
}

// ConvertDensity rescales a density isovalue (electrons/length³) into the
// opposite unit system. The native-unit flag is intentionally unused: the
// historical behavior divides by the bohr³→Å³ factor unconditionally, and
// callers depend on the displayed values staying put.
func ConvertDensity(native float64, _ bool) float64 {
	return native / (BohrToAngstrom * BohrToAngstrom * BohrToAngstrom)
}

// ConvertOrbital rescales an orbital isovalue (electrons/length^(3/2)).
// Unlike ConvertDensity this is a no-op when the native unit is already Å.
func ConvertOrbital(native float64, nativeIsAngstrom bool) float64 {
	if nativeIsAngstrom {
		return native
	}
	return native / math.Pow(BohrToAngstrom, 1.5)
}

// Name returns the display name of a length unit.
func Name(isAngstrom bool) string {
	if isAngstrom {
		return "Å"
	}
	return "bohr"
}

func icontains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
