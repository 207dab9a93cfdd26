// Package geom provides geometry primitives shared by the scene builders.
package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

// NewAABB creates an AABB from two corners, swapping axes where needed so
// that Min <= Max holds component-wise.
func NewAABB(min, max mgl32.Vec3) AABB {
	box := AABB{Min: min, Max: max}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// FromPoints computes the bounding box of a point set.
// Returns a zero box for an empty set.
func FromPoints(points []mgl32.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < box.Min[i] {
				box.Min[i] = p[i]
			}
			if p[i] > box.Max[i] {
				box.Max[i] = p[i]
			}
		}
	}
	return box
}

// Size returns the box extent per axis.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box center point.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// MaxDim returns the largest extent across the three axes.
func (b AABB) MaxDim() float32 {
	s := b.Size()
	return math32.Max(s.X(), math32.Max(s.Y(), s.Z()))
}

// Scaled returns the box with both corners multiplied by a uniform scale.
func (b AABB) Scaled(s float32) AABB {
	return AABB{Min: b.Min.Mul(s), Max: b.Max.Mul(s)}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates each component of two vectors by t.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Smoothstep applies the cubic Hermite ease t*t*(3-2t) to t in [0,1].
func Smoothstep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}
