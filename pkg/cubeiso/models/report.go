package models

// RequestMode says which direction an analysis run mapped.
type RequestMode string

const (
	// ModePercent maps a percentage of the total quantity to an isovalue.
	ModePercent RequestMode = "percent"
	// ModeIsovalue maps an isovalue to the percentage it encloses.
	ModeIsovalue RequestMode = "isovalue"
)

// Report is the complete result of analyzing one cube file.
type Report struct {
	// File is the input file name (no path).
	File string `json:"file"`
	// CalcType is the detected producing package.
	CalcType CalcType `json:"calc_type"`
	// DataKind is the detected data kind (orbital or density).
	DataKind DataKind `json:"data_kind"`
	// Dims is the grid dimensions.
	Dims [3]int `json:"dims"`
	// NativeUnit is the detected native length unit, "Å" or "bohr".
	NativeUnit string `json:"native_unit"`
	// ConvertedUnit is the opposite unit, used for the converted isovalue.
	ConvertedUnit string `json:"converted_unit"`
	// VoxelVolume is the real-space volume of one grid cell, in NativeUnit³.
	VoxelVolume float64 `json:"voxel_volume"`
	// TotalIntegrated is the total integrated quantity: Σv×volume for
	// density data, Σv²×volume for orbital data.
	TotalIntegrated float64 `json:"total_integrated"`

	// Mode is the requested mapping direction.
	Mode RequestMode `json:"mode"`
	// Input is the request value: a percentage for ModePercent, an isovalue
	// in native units for ModeIsovalue.
	Input float64 `json:"input"`
	// Positive is the sign used for the integration after any automatic
	// resolution.
	Positive bool `json:"positive"`
	// SignResolved reports that the requested sign had no contribution and
	// the dominant sign was substituted.
	SignResolved bool `json:"sign_resolved,omitempty"`

	// Isovalue is the threshold in native units: the computed result for
	// ModePercent, or the input echoed back for ModeIsovalue.
	Isovalue float64 `json:"isovalue"`
	// IsovalueConverted is Isovalue rescaled to ConvertedUnit terms.
	IsovalueConverted float64 `json:"isovalue_converted"`
	// Percentage is the share of the total quantity enclosed by Isovalue.
	Percentage float64 `json:"percentage"`
	// IntegratedAbove is the integrated quantity at or above the threshold,
	// in native units (×voxel volume). Only filled for ModePercent runs.
	IntegratedAbove float64 `json:"integrated_above,omitempty"`
}
