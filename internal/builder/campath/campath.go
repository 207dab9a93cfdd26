// Package campath interpolates camera poses along a waypoint path driven
// by a normalized progress scalar.
package campath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/loftlab/roomforge/pkg/geom"
)

// Waypoint is a camera pose anchor on the path.
type Waypoint struct {
	Position mgl32.Vec3 `json:"position"`
	LookAt   mgl32.Vec3 `json:"lookAt"`
}

// Pose is an interpolated camera position and look-at target.
type Pose struct {
	Position mgl32.Vec3 `json:"position"`
	LookAt   mgl32.Vec3 `json:"lookAt"`
}

// Interpolate computes the camera pose at progress in [0,1] along the
// waypoint path. Consecutive waypoint pairs split progress evenly, and each
// segment is eased with smoothstep so velocity stays continuous across
// waypoint boundaries. Progress 0 yields the first waypoint exactly and
// progress 1 the last.
//
// Fewer than two waypoints degrade gracefully: an empty path returns the
// zero pose, a single waypoint returns that waypoint.
func Interpolate(progress float32, waypoints []Waypoint) Pose {
	switch len(waypoints) {
	case 0:
		return Pose{}
	case 1:
		return Pose{Position: waypoints[0].Position, LookAt: waypoints[0].LookAt}
	}

	progress = geom.Clamp(progress, 0, 1)

	segments := float32(len(waypoints) - 1)
	raw := progress * segments

	index := int(math32.Floor(raw))
	if index > len(waypoints)-2 {
		index = len(waypoints) - 2
	}

	t := geom.Smoothstep(raw - float32(index))
	a, b := waypoints[index], waypoints[index+1]

	return Pose{
		Position: geom.LerpVec3(a.Position, b.Position, t),
		LookAt:   geom.LerpVec3(a.LookAt, b.LookAt, t),
	}
}
