// Package normalize computes scale and translation transforms that bring
// furniture models of arbitrary source scale to real-world size, resting
// on the floor and centered on their placement point.
package normalize

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/loftlab/roomforge/pkg/geom"
)

// epsilon is the smallest bounding box extent treated as real geometry.
const epsilon = 0.001

// Dimensions are declared physical model dimensions in centimeters.
type Dimensions struct {
	Width  float32 `json:"width"`
	Depth  float32 `json:"depth"`
	Height float32 `json:"height"`
}

// Asset carries the normalization metadata for one furniture model.
// PreScaled marks geometry already authored in meters at real-world scale;
// such models are never rescaled.
type Asset struct {
	Known     *Dimensions `json:"knownDimensions,omitempty"`
	PreScaled bool        `json:"preScaled"`
}

// Transform is a uniform scale plus translation, applied before the
// placement's own position and rotation.
type Transform struct {
	Scale       float32    `json:"scale"`
	Translation mgl32.Vec3 `json:"translation"`
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Fit computes the transform that sizes a model to its declared dimensions,
// rests its base on Y=0 and centers it horizontally on the origin.
//
// Degenerate geometry (max extent below epsilon) yields the identity
// transform rather than an error.
func Fit(bounds geom.AABB, asset Asset) Transform {
	maxDim := bounds.MaxDim()
	if maxDim < epsilon {
		return Identity()
	}

	scale := float32(1)
	if !asset.PreScaled && asset.Known != nil {
		// Declared dimensions are centimeters; world space is meters.
		maxExpected := math32.Max(asset.Known.Width, math32.Max(asset.Known.Depth, asset.Known.Height)) / 100
		scale = maxExpected / maxDim
	}

	scaled := bounds.Scaled(scale)
	center := scaled.Center()

	return Transform{
		Scale:       scale,
		Translation: mgl32.Vec3{-center.X(), -scaled.Min.Y(), -center.Z()},
	}
}
