// Package models defines data structures for cube file analysis.
package models

// CalcType identifies the quantum chemistry package that produced a cube file,
// detected from keywords in the comment lines.
type CalcType string

const (
	// CalcORCA marks cube files written by ORCA. ORCA files carry one extra
	// header line after the atom records.
	CalcORCA CalcType = "ORCA"
	// CalcQChem marks cube files written by Q-Chem.
	CalcQChem CalcType = "Q-Chem"
	// CalcGeneric marks cube files with no recognized vendor keyword.
	CalcGeneric CalcType = "Generic"
)

// DataKind identifies what physical quantity the grid values represent.
type DataKind string

const (
	// KindOrbital marks orbital amplitude data. This is the fallback when
	// neither orbital nor density keywords appear in the comments.
	KindOrbital DataKind = "Orbital"
	// KindDensity marks electron density data.
	KindDensity DataKind = "Density"
)

// Header holds the metadata block of a cube file. It is populated once by
// the parser and never mutated afterwards.
type Header struct {
	// Comment1 is the first comment line, trimmed.
	Comment1 string `json:"comment1"`
	// Comment2 is the second comment line, trimmed.
	Comment2 string `json:"comment2"`
	// NumAtoms is the atom count as written in the file. It may be negative
	// (some packages use the sign as a format flag); only its absolute value
	// is meaningful as a count.
	NumAtoms int `json:"num_atoms"`
	// Origin is the grid origin in native coordinates.
	Origin [3]float64 `json:"origin"`
	// Dims is the number of voxels along each axis.
	Dims [3]int `json:"dims"`
	// AxisVectors holds one row per axis: [n, ax, ay, az], where n duplicates
	// the corresponding Dims entry as the format requires.
	AxisVectors [3][4]float64 `json:"axis_vectors"`
	// CalcType is the detected producing package.
	CalcType CalcType `json:"calc_type"`
	// IsOrbital reports whether the grid holds orbital amplitudes rather
	// than density values.
	IsOrbital bool `json:"is_orbital"`
}

// Kind returns the header's data kind as a DataKind value.
func (h *Header) Kind() DataKind {
	if h.IsOrbital {
		return KindOrbital
	}
	return KindDensity
}

// NumPoints returns the expected number of grid values, Dims[0]*Dims[1]*Dims[2].
func (h *Header) NumPoints() int {
	return h.Dims[0] * h.Dims[1] * h.Dims[2]
}

// Cube is a fully parsed cube file: the header plus the flat grid.
type Cube struct {
	// Header is the parsed metadata block.
	Header Header `json:"header"`
	// Values is the volumetric grid in file order: the first axis varies
	// slowest and the third fastest. Its length always equals
	// Header.NumPoints; the parser never returns a partial grid.
	Values []float64 `json:"values"`
}
