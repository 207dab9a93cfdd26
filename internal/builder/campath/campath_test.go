package campath

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func threeWaypoints() []Waypoint {
	return []Waypoint{
		{Position: mgl32.Vec3{0, 2, 5}, LookAt: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{5, 2, 0}, LookAt: mgl32.Vec3{1, 1, 0}},
		{Position: mgl32.Vec3{0, 3, -5}, LookAt: mgl32.Vec3{0, 1, 1}},
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	wps := threeWaypoints()

	start := Interpolate(0, wps)
	if start.Position != wps[0].Position || start.LookAt != wps[0].LookAt {
		t.Errorf("progress 0 = %+v, want first waypoint", start)
	}

	end := Interpolate(1, wps)
	if end.Position != wps[2].Position || end.LookAt != wps[2].LookAt {
		t.Errorf("progress 1 = %+v, want last waypoint", end)
	}
}

func TestInterpolateSegmentBoundary(t *testing.T) {
	// With 3 waypoints, progress 0.5 is exactly the middle waypoint:
	// raw = 1.0, localT = smoothstep(0) = 0.
	wps := threeWaypoints()
	mid := Interpolate(0.5, wps)
	if mid.Position != wps[1].Position || mid.LookAt != wps[1].LookAt {
		t.Errorf("progress 0.5 = %+v, want middle waypoint", mid)
	}
}

func TestInterpolateClampsProgress(t *testing.T) {
	wps := threeWaypoints()

	before := Interpolate(-0.5, wps)
	if before.Position != wps[0].Position {
		t.Errorf("progress < 0 = %+v, want first waypoint", before)
	}

	after := Interpolate(1.5, wps)
	if after.Position != wps[2].Position {
		t.Errorf("progress > 1 = %+v, want last waypoint", after)
	}
}

func TestInterpolateContinuity(t *testing.T) {
	// Stepping progress finely must never jump: each step moves the
	// position by a bounded fraction of the inter-waypoint distance.
	wps := threeWaypoints()

	maxSpan := float32(0)
	for i := 0; i+1 < len(wps); i++ {
		d := wps[i+1].Position.Sub(wps[i].Position).Len()
		if d > maxSpan {
			maxSpan = d
		}
	}

	const step = 0.01
	// Smoothstep's steepest slope is 1.5, and a step crosses at most one
	// segment boundary.
	limit := maxSpan * step * float32(len(wps)-1) * 1.5 * 1.01

	prev := Interpolate(0, wps)
	for p := float32(step); p <= 1.0001; p += step {
		cur := Interpolate(p, wps)
		if d := cur.Position.Sub(prev.Position).Len(); d > limit {
			t.Fatalf("jump of %v at progress %v exceeds limit %v", d, p, limit)
		}
		prev = cur
	}
}

func TestInterpolateDegenerateInputs(t *testing.T) {
	if got := Interpolate(0.5, nil); got != (Pose{}) {
		t.Errorf("empty path = %+v, want zero pose", got)
	}

	single := []Waypoint{{Position: mgl32.Vec3{1, 2, 3}, LookAt: mgl32.Vec3{0, 0, 1}}}
	got := Interpolate(0.7, single)
	if got.Position != single[0].Position || got.LookAt != single[0].LookAt {
		t.Errorf("single waypoint = %+v, want that waypoint", got)
	}
}

func TestInterpolateMonotonicAlongSegment(t *testing.T) {
	// Within one segment of a two-waypoint path, X must increase
	// monotonically with progress.
	wps := []Waypoint{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{10, 0, 0}},
	}

	prevX := float32(-1)
	for p := float32(0); p <= 1.0001; p += 0.05 {
		x := Interpolate(p, wps).Position.X()
		if x < prevX-1e-6 {
			t.Fatalf("X regressed from %v to %v at progress %v", prevX, x, p)
		}
		prevX = x
	}

	if math32.Abs(Interpolate(1, wps).Position.X()-10) > 1e-5 {
		t.Errorf("endpoint X = %v, want 10", Interpolate(1, wps).Position.X())
	}
}
