// Package floorplane estimates the floor height of externally sourced room
// models so geometry below the floor can be clipped away.
//
// Scanned or downloaded room models often carry basements, skirting or
// artifacts below the intended floor. The bounding box minimum alone clips
// too aggressively or not at all, so the floor is found statistically:
// large flat floors dominate vertex density near the bottom of a scan.
package floorplane

import (
	"github.com/loftlab/roomforge/pkg/geom"
)

const (
	// minSamples is the minimum number of vertex samples required for a
	// confident estimate.
	minSamples = 20
	// minHeight is the minimum bounding box height; flatter models have no
	// meaningful floor to detect.
	minHeight = 0.01
	// binCount is the number of histogram bins across the box height.
	binCount = 40
	// belowMassRatio is the share of samples that must sit strictly below
	// the candidate bin to justify clipping at all.
	belowMassRatio = 0.05
)

// Detect estimates the Y coordinate of a model's floor plane from a vertex
// height sample. It returns false when no confident floor is found, in
// which case the caller should not clip.
func Detect(bounds geom.AABB, vertexYs []float32) (float32, bool) {
	if len(vertexYs) < minSamples {
		return 0, false
	}

	height := bounds.Max.Y() - bounds.Min.Y()
	if height < minHeight {
		return 0, false
	}

	minY := bounds.Min.Y()
	binHeight := height / binCount

	var bins [binCount]int
	for _, y := range vertexYs {
		idx := int((y - minY) / binHeight)
		if idx < 0 {
			idx = 0
		}
		if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx]++
	}

	// The floor candidate is the densest bin in the lower half.
	best := 0
	for i := 1; i < binCount/2; i++ {
		if bins[i] > bins[best] {
			best = i
		}
	}
	if bins[best] == 0 {
		return 0, false
	}

	// Require real mass below the candidate; a peak with nothing under it
	// means there is nothing worth clipping.
	below := 0
	for i := 0; i < best; i++ {
		below += bins[i]
	}
	if float32(below) < belowMassRatio*float32(len(vertexYs)) {
		return 0, false
	}

	return minY + float32(best)*binHeight, true
}
