// Package scene assembles a complete renderable scene description from a
// design session: wall panels, floor and ceiling slabs, normalized
// furniture placements, the optional environment clip plane and the
// scripted camera path.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/loftlab/roomforge/internal/assets"
	"github.com/loftlab/roomforge/internal/builder/campath"
	"github.com/loftlab/roomforge/internal/builder/floorplane"
	"github.com/loftlab/roomforge/internal/builder/normalize"
	"github.com/loftlab/roomforge/internal/builder/shell"
	"github.com/loftlab/roomforge/internal/session"
)

// DefaultPlaceholderSize is the edge length of the cube substituted for a
// model that failed to load and has no declared dimensions.
const DefaultPlaceholderSize = 0.5

// Box is an axis-aligned solid used for floor and ceiling slabs.
type Box struct {
	Center mgl32.Vec3 `json:"center"`
	Size   mgl32.Vec3 `json:"size"`
}

// Item is one furniture placement resolved against its model. Placeholder
// items stand in for models that could not be loaded; Size then carries
// the placeholder box extent.
type Item struct {
	Model            string              `json:"model"`
	Placeholder      bool                `json:"placeholder,omitempty"`
	Size             mgl32.Vec3          `json:"size,omitempty"`
	Transform        normalize.Transform `json:"transform"`
	Position         mgl32.Vec3          `json:"position"`
	RotationYDegrees float32             `json:"rotationYDegrees"`
}

// Environment describes the externally sourced room model and its floor
// clip plane. FloorClipY is nil when no confident floor was detected.
type Environment struct {
	Model      string   `json:"model"`
	FloorClipY *float32 `json:"floorClipY,omitempty"`
}

// Description is the full scene output consumed by the rendering host.
type Description struct {
	ID          string             `json:"id"`
	Room        shell.Room         `json:"room"`
	Walls       []shell.Panel      `json:"walls"`
	Floor       Box                `json:"floor"`
	Ceiling     Box                `json:"ceiling"`
	Furniture   []Item             `json:"furniture,omitempty"`
	Environment *Environment       `json:"environment,omitempty"`
	CameraPath  []campath.Waypoint `json:"cameraPath,omitempty"`
}

// Builder composes scene descriptions from session documents.
type Builder struct {
	assets *assets.Manager
	log    *zap.Logger
}

// NewBuilder creates a scene builder. A nil logger disables logging.
func NewBuilder(mgr *assets.Manager, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{assets: mgr, log: log}
}

// Build assembles the scene for a session document. Building never fails:
// unavailable models degrade to placeholder boxes and ambiguous floor
// detection degrades to no clipping.
func (b *Builder) Build(doc *session.Document) *Description {
	desc := &Description{
		ID:    uuid.NewString(),
		Room:  doc.Room,
		Walls: shell.BuildWalls(doc.Room),
	}
	desc.Floor, desc.Ceiling = slabs(doc.Room)

	for _, p := range doc.Placements {
		desc.Furniture = append(desc.Furniture, b.place(p))
	}

	if doc.Environment != "" {
		desc.Environment = b.environment(doc.Environment)
	}

	if len(doc.CameraPath) >= 2 {
		desc.CameraPath = doc.CameraPath
	} else if len(doc.CameraPath) == 1 {
		b.log.Warn("camera path needs at least 2 waypoints, dropping",
			zap.Int("waypoints", len(doc.CameraPath)))
	}

	b.log.Info("scene built",
		zap.String("id", desc.ID),
		zap.Int("walls", len(desc.Walls)),
		zap.Int("furniture", len(desc.Furniture)))

	return desc
}

// place resolves one placement, falling back to a placeholder box when the
// model is unavailable.
func (b *Builder) place(p session.Placement) Item {
	item := Item{
		Model:            p.Model,
		Position:         p.Position,
		RotationYDegrees: p.RotationYDegrees,
	}

	asset := normalize.Asset{Known: p.Known, PreScaled: p.PreScaled}

	model, err := b.assets.Load(p.Model)
	if err != nil {
		b.log.Warn("model unavailable, using placeholder",
			zap.String("model", p.Model), zap.Error(err))
		item.Placeholder = true
		item.Size = placeholderSize(p.Known)
		item.Transform = normalize.Identity()
		return item
	}

	item.Transform = normalize.Fit(model.Bounds, asset)
	item.Size = model.Bounds.Size().Mul(item.Transform.Scale)
	return item
}

// environment loads the external room model and attaches its floor clip
// plane when one is confidently detected.
func (b *Builder) environment(name string) *Environment {
	env := &Environment{Model: name}

	model, err := b.assets.Load(name)
	if err != nil {
		b.log.Warn("environment model unavailable",
			zap.String("model", name), zap.Error(err))
		return env
	}

	if y, ok := floorplane.Detect(model.Bounds, model.VertexYs); ok {
		env.FloorClipY = &y
		b.log.Debug("floor plane detected",
			zap.String("model", name), zap.Float32("y", y))
	}
	return env
}

// slabs builds the floor and ceiling boxes for a room.
func slabs(room shell.Room) (floor, ceiling Box) {
	floor = Box{
		Center: mgl32.Vec3{room.Width / 2, -shell.Thickness / 2, room.Length / 2},
		Size:   mgl32.Vec3{room.Width, shell.Thickness, room.Length},
	}
	ceiling = Box{
		Center: mgl32.Vec3{room.Width / 2, room.Height + shell.Thickness/2, room.Length / 2},
		Size:   mgl32.Vec3{room.Width, shell.Thickness, room.Length},
	}
	return floor, ceiling
}

// placeholderSize derives the placeholder box extent from declared
// dimensions, defaulting to a fixed cube.
func placeholderSize(known *normalize.Dimensions) mgl32.Vec3 {
	if known == nil {
		return mgl32.Vec3{DefaultPlaceholderSize, DefaultPlaceholderSize, DefaultPlaceholderSize}
	}
	// Declared dimensions are centimeters.
	return mgl32.Vec3{known.Width / 100, known.Height / 100, known.Depth / 100}
}
