// Package shell builds solid wall panels for a room, cutting door and
// window openings out of each wall.
package shell

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/loftlab/roomforge/pkg/geom"
)

// WallSide identifies one of the four walls of a rectangular room.
type WallSide string

// Wall sides. North sits at Z=0, south at Z=length, west at X=0 and east
// at X=width.
const (
	North WallSide = "north"
	South WallSide = "south"
	East  WallSide = "east"
	West  WallSide = "west"
)

// OpeningKind distinguishes doors from windows.
type OpeningKind string

// Opening kinds.
const (
	Door   OpeningKind = "door"
	Window OpeningKind = "window"
)

// Thickness is the wall panel depth in meters.
const Thickness = 0.1

// Opening is a door or window void in a wall. CenterOffset and Width run
// along the wall in wall-local coordinates; SillHeight and HeadHeight are
// the vertical extent (doors ignore SillHeight and start at the floor).
type Opening struct {
	Side         WallSide    `json:"wallSide"`
	Kind         OpeningKind `json:"kind"`
	CenterOffset float32     `json:"centerOffset"`
	Width        float32     `json:"width"`
	SillHeight   float32     `json:"sillHeight"`
	HeadHeight   float32     `json:"headHeight"`
}

// Room describes a rectangular room in meters.
type Room struct {
	Width    float32   `json:"width"`
	Length   float32   `json:"length"`
	Height   float32   `json:"height"`
	Openings []Opening `json:"openings,omitempty"`
}

// WallLength returns the length of the given wall in meters.
func (r Room) WallLength(side WallSide) float32 {
	if side == North || side == South {
		return r.Width
	}
	return r.Length
}

// Panel is a solid wall segment in wall-local coordinates plus its derived
// world-space placement. Rendering each panel as an opaque box reconstructs
// the room shell with openings as voids.
type Panel struct {
	Side      WallSide   `json:"wallSide"`
	SpanStart float32    `json:"spanStart"`
	SpanEnd   float32    `json:"spanEnd"`
	Bottom    float32    `json:"bottomHeight"`
	Top       float32    `json:"topHeight"`
	Center    mgl32.Vec3 `json:"center"`
	Size      mgl32.Vec3 `json:"size"`
}

// interval is an opening projected onto a wall's local axis.
type interval struct {
	left, right float32
	bottom, top float32
	order       int
}

// BuildWalls converts a room description into wall panels. Openings whose
// spans fall outside the wall are clamped at the wall boundary, never
// rejected. Overlapping openings are processed independently and are not
// merged, matching upstream floorplan behavior.
func BuildWalls(room Room) []Panel {
	var panels []Panel
	for _, side := range []WallSide{North, South, East, West} {
		panels = append(panels, buildWall(room, side)...)
	}
	return panels
}

func buildWall(room Room, side WallSide) []Panel {
	wallLength := room.WallLength(side)

	var spans []interval
	for i, o := range room.Openings {
		if o.Side != side {
			continue
		}
		iv := interval{
			left:  geom.Clamp(o.CenterOffset-o.Width/2, 0, wallLength),
			right: geom.Clamp(o.CenterOffset+o.Width/2, 0, wallLength),
			order: i,
		}
		if o.Kind == Window {
			iv.bottom = o.SillHeight
			iv.top = o.HeadHeight
		} else {
			iv.bottom = 0
			iv.top = o.HeadHeight
		}
		spans = append(spans, iv)
	}

	if len(spans) == 0 {
		return []Panel{place(room, side, 0, wallLength, 0, room.Height)}
	}

	// Stable sort by left edge; ties keep input order.
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].left < spans[j].left
	})

	var panels []Panel
	cursor := float32(0)
	for _, iv := range spans {
		if iv.left > cursor {
			panels = append(panels, place(room, side, cursor, iv.left, 0, room.Height))
		}
		if iv.top < room.Height {
			panels = append(panels, place(room, side, iv.left, iv.right, iv.top, room.Height))
		}
		if iv.bottom > 0 {
			panels = append(panels, place(room, side, iv.left, iv.right, 0, iv.bottom))
		}
		cursor = iv.right
	}
	if cursor < wallLength {
		panels = append(panels, place(room, side, cursor, wallLength, 0, room.Height))
	}
	return panels
}

// place converts a wall-local segment to a world-space panel. The along-wall
// axis maps to X for north/south walls and to Z for west/east walls.
func place(room Room, side WallSide, spanStart, spanEnd, bottom, top float32) Panel {
	p := Panel{
		Side:      side,
		SpanStart: spanStart,
		SpanEnd:   spanEnd,
		Bottom:    bottom,
		Top:       top,
	}

	along := (spanStart + spanEnd) / 2
	span := spanEnd - spanStart
	y := (bottom + top) / 2
	h := top - bottom

	switch side {
	case North:
		p.Center = mgl32.Vec3{along, y, 0}
		p.Size = mgl32.Vec3{span, h, Thickness}
	case South:
		p.Center = mgl32.Vec3{along, y, room.Length}
		p.Size = mgl32.Vec3{span, h, Thickness}
	case West:
		p.Center = mgl32.Vec3{0, y, along}
		p.Size = mgl32.Vec3{Thickness, h, span}
	case East:
		p.Center = mgl32.Vec3{room.Width, y, along}
		p.Size = mgl32.Vec3{Thickness, h, span}
	}
	return p
}
