package cubeiso

import (
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/geometry"
	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/integrate"
	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/parser"
	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/units"
)

// Analyze parses the cube file at path and computes the requested
// threshold↔percentage mapping. Errors from any stage propagate unchanged.
func Analyze(path string, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cube, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return analyze(cube, filepath.Base(path), opts)
}

func analyze(cube *models.Cube, name string, opts Options) (*models.Report, error) {
	h := &cube.Header
	vol := geometry.VoxelVolume(h)
	isAng := units.DetectAngstrom(h)

	rep := &models.Report{
		File:          name,
		CalcType:      h.CalcType,
		DataKind:      h.Kind(),
		Dims:          h.Dims,
		NativeUnit:    units.Name(isAng),
		ConvertedUnit: units.Name(!isAng),
		VoxelVolume:   vol,
	}

	if h.IsOrbital {
		rep.TotalIntegrated = totalSquared(cube.Values) * vol
	} else {
		rep.TotalIntegrated = floats.Sum(cube.Values) * vol
	}

	positive := opts.Positive()
	if h.IsOrbital {
		positive, rep.SignResolved = resolveSign(cube.Values, positive)
	}
	rep.Positive = positive

	if opts.Percent != nil {
		rep.Mode = models.ModePercent
		rep.Input = *opts.Percent
		return reportFromPercent(rep, cube, opts, positive, isAng, vol)
	}
	rep.Mode = models.ModeIsovalue
	rep.Input = *opts.Isovalue
	return reportFromIsovalue(rep, cube, opts, positive, isAng)
}

func reportFromPercent(rep *models.Report, cube *models.Cube, opts Options, positive, isAng bool, vol float64) (*models.Report, error) {
	var iso float64
	var err error
	if cube.Header.IsOrbital {
		iso, err = integrate.OrbitalIsovalue(cube.Values, *opts.Percent, positive)
	} else {
		iso, err = integrate.DensityIsovalue(cube.Values, *opts.Percent, positive)
	}
	if err != nil {
		return nil, err
	}
	rep.Isovalue = iso
	rep.IsovalueConverted = convert(iso, cube.Header.IsOrbital, isAng)
	rep.IntegratedAbove = integratedAbove(cube, iso, positive) * vol

	pct, err := percentage(cube, iso, positive)
	if err != nil {
		return nil, err
	}
	rep.Percentage = pct
	return rep, nil
}

func reportFromIsovalue(rep *models.Report, cube *models.Cube, opts Options, positive, isAng bool) (*models.Report, error) {
	iso := *opts.Isovalue
	pct, err := percentage(cube, iso, positive)
	if err != nil {
		return nil, err
	}
	rep.Isovalue = iso
	rep.IsovalueConverted = convert(iso, cube.Header.IsOrbital, isAng)
	rep.Percentage = pct
	return rep, nil
}

func percentage(cube *models.Cube, iso float64, positive bool) (float64, error) {
	if cube.Header.IsOrbital {
		return integrate.OrbitalPercentage(cube.Values, iso, positive)
	}
	return integrate.DensityPercentage(cube.Values, iso, positive)
}

func convert(iso float64, isOrbital, isAng bool) float64 {
	if isOrbital {
		return units.ConvertOrbital(iso, isAng)
	}
	return units.ConvertDensity(iso, isAng)
}

// integratedAbove sums the quantity at or past the threshold, before voxel
// volume scaling: squared amplitudes for orbital data, signed values for
// density data.
func integratedAbove(cube *models.Cube, iso float64, positive bool) float64 {
	sum := 0.0
	if cube.Header.IsOrbital {
		threshold := iso * iso
		for _, v := range cube.Values {
			if v*v >= threshold {
				sum += v * v
			}
		}
		return sum
	}
	for _, v := range cube.Values {
		if (positive && v >= iso) || (!positive && v <= iso) {
			sum += v
		}
	}
	return sum
}

// resolveSign keeps orbital runs non-degenerate: when the requested sign
// contributes nothing, the sign with the larger total squared magnitude is
// substituted. The second result reports whether a substitution happened.
func resolveSign(values []float64, positive bool) (bool, bool) {
	posTotal, negTotal := 0.0, 0.0
	for _, v := range values {
		if v > 0 {
			posTotal += v * v
		} else if v < 0 {
			negTotal += v * v
		}
	}
	if (positive && posTotal > 0) || (!positive && negTotal > 0) {
		return positive, false
	}
	resolved := posTotal >= negTotal
	return resolved, resolved != positive
}

func totalSquared(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Dot(values, values)
}
