// Package integrate maps between isosurface thresholds and enclosed
// fractions of a cube grid's total integral.
package integrate

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrNoMatchingSign indicates no grid point has the requested sign.
var ErrNoMatchingSign = errors.New("no grid points with the requested sign")

// ErrNoPoints indicates the grid is empty.
var ErrNoPoints = errors.New("no grid points available")

// ErrZeroTotal indicates the relevant total integral is zero, so a
// percentage is undefined.
var ErrZeroTotal = errors.New("total integrated quantity is zero")

// DensityIsovalue returns the density threshold that encloses percent of the
// total sign-filtered charge. Grid points of the requested sign are visited
// from largest magnitude down, accumulating until the target fraction is
// crossed; the value at the crossing is the isovalue.
func DensityIsovalue(values []float64, percent float64, positive bool) (float64, error) {
	filtered := make([]float64, 0, len(values))
	for _, v := range values {
		if (positive && v > 0) || (!positive && v < 0) {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == 0 {
		return 0, ErrNoMatchingSign
	}

	total := floats.Sum(filtered)
	target := (percent / 100.0) * total

	if positive {
		sort.Sort(sort.Reverse(sort.Float64Slice(filtered)))
		integ := 0.0
		for _, v := range filtered {
			integ += v
			if integ >= target {
				return v, nil
			}
		}
	} else {
		sort.Float64s(filtered)
		integ := 0.0
		for _, v := range filtered {
			integ += v
			if integ <= target {
				return v, nil
			}
		}
	}
	// No crossing can only happen in numerically degenerate cases; fall back
	// to the smallest-magnitude value.
	return filtered[len(filtered)-1], nil
}

// DensityPercentage returns the share of the sign-filtered total charge
// enclosed by isovalue, in percent.
func DensityPercentage(values []float64, isovalue float64, positive bool) (float64, error) {
	total, integ := 0.0, 0.0
	for _, v := range values {
		if positive && v > 0 {
			total += v
			if v >= isovalue {
				integ += v
			}
		} else if !positive && v < 0 {
			total += v
			if v <= isovalue {
				integ += v
			}
		}
	}
	if total == 0 {
		return 0, ErrZeroTotal
	}
	return (integ / total) * 100.0, nil
}
