package integrate

import "sort"

// orbitalPoint pairs a grid amplitude with its squared value, the orbital
// density proxy the accumulation runs over.
type orbitalPoint struct {
	density float64 // v²
	value   float64 // original amplitude v
}

// OrbitalIsovalue returns the amplitude threshold that encloses percent of
// the total orbital density (Σv²). Every point participates regardless of
// sign, since density is the squared amplitude; the sign argument exists so
// the orbital and density families stay interchangeable at call sites.
//
// The returned value is the raw amplitude at the crossing point, not its
// square root.
func OrbitalIsovalue(values []float64, percent float64, _ bool) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoPoints
	}
	points := make([]orbitalPoint, len(values))
	total := 0.0
	for i, v := range values {
		d := v * v
		points[i] = orbitalPoint{density: d, value: v}
		total += d
	}
	target := (percent / 100.0) * total

	sort.Slice(points, func(i, j int) bool {
		return points[i].density > points[j].density
	})

	integ := 0.0
	for _, p := range points {
		integ += p.density
		if integ >= target {
			return p.value, nil
		}
	}
	return points[len(points)-1].value, nil
}

// OrbitalPercentage returns the share of the total orbital density enclosed
// by isovalue, in percent. The sign argument is unused, as in
// OrbitalIsovalue.
func OrbitalPercentage(values []float64, isovalue float64, _ bool) (float64, error) {
	threshold := isovalue * isovalue
	total, integ := 0.0, 0.0
	for _, v := range values {
		d := v * v
		total += d
		if d >= threshold {
			integ += d
		}
	}
	if total == 0 {
		return 0, ErrZeroTotal
	}
	return (integ / total) * 100.0, nil
}
