package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewAABBSwapsCorners(t *testing.T) {
	box := NewAABB(mgl32.Vec3{2, -1, 5}, mgl32.Vec3{-2, 3, 1})
	want := AABB{Min: mgl32.Vec3{-2, -1, 1}, Max: mgl32.Vec3{2, 3, 5}}
	if box != want {
		t.Errorf("NewAABB() = %v, want %v", box, want)
	}
}

func TestFromPoints(t *testing.T) {
	points := []mgl32.Vec3{
		{1, 2, 3},
		{-1, 5, 0},
		{4, -2, 2},
	}
	box := FromPoints(points)
	want := AABB{Min: mgl32.Vec3{-1, -2, 0}, Max: mgl32.Vec3{4, 5, 3}}
	if box != want {
		t.Errorf("FromPoints() = %v, want %v", box, want)
	}
}

func TestFromPointsEmpty(t *testing.T) {
	box := FromPoints(nil)
	if box != (AABB{}) {
		t.Errorf("FromPoints(nil) = %v, want zero box", box)
	}
}

func TestSizeCenterMaxDim(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{0, 1, 2}, Max: mgl32.Vec3{4, 3, 8}}

	if got, want := box.Size(), (mgl32.Vec3{4, 2, 6}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if got, want := box.Center(), (mgl32.Vec3{2, 2, 5}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if got, want := box.MaxDim(), float32(6); got != want {
		t.Errorf("MaxDim() = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0); got != 0 {
		t.Errorf("Smoothstep(0) = %v, want 0", got)
	}
	if got := Smoothstep(1); got != 1 {
		t.Errorf("Smoothstep(1) = %v, want 1", got)
	}
	if got := Smoothstep(0.5); got != 0.5 {
		t.Errorf("Smoothstep(0.5) = %v, want 0.5", got)
	}
	// Eased curve stays below linear in the first half.
	if got := Smoothstep(0.25); got >= 0.25 {
		t.Errorf("Smoothstep(0.25) = %v, want < 0.25", got)
	}
}

func TestLerpVec3(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{2, 4, 6}
	got := LerpVec3(a, b, 0.5)
	want := mgl32.Vec3{1, 2, 3}
	if got != want {
		t.Errorf("LerpVec3() = %v, want %v", got, want)
	}
}
