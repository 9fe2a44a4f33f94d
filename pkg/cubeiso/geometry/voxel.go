// Package geometry computes real-space quantities from cube grid metadata.
package geometry

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
)

// VoxelVolume returns the volume of one grid cell, |a · (b × c)| over the
// three axis step vectors. A degenerate (near-coplanar) axis set yields a
// value near zero rather than an error.
func VoxelVolume(h *models.Header) float64 {
	a := axisVec(h, 0)
	b := axisVec(h, 1)
	c := axisVec(h, 2)
	vol := r3.Dot(a, r3.Cross(b, c))
	if vol < 0 {
		vol = -vol
	}
	return vol
}

// axisVec extracts the direction part of an axis row, skipping the leading
// voxel count.
func axisVec(h *models.Header, i int) r3.Vec {
	return r3.Vec{
		X: h.AxisVectors[i][1],
		Y: h.AxisVectors[i][2],
		Z: h.AxisVectors[i][3],
	}
}
