// Package session parses the structured design-session documents produced
// by the upstream floorplan pipeline: room geometry, furniture placements
// and the scripted camera path.
package session

import (
	"encoding/json"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/loftlab/roomforge/internal/builder/campath"
	"github.com/loftlab/roomforge/internal/builder/normalize"
	"github.com/loftlab/roomforge/internal/builder/shell"
)

// Placement positions one furniture model inside the room. Position is the
// model's horizontal center on the floor; rotation is around Y in degrees.
type Placement struct {
	Model            string                `json:"model"`
	Known            *normalize.Dimensions `json:"knownDimensions,omitempty"`
	PreScaled        bool                  `json:"preScaled,omitempty"`
	Position         mgl32.Vec3            `json:"position"`
	RotationYDegrees float32               `json:"rotationYDegrees"`
}

// Document is one complete design session.
type Document struct {
	Room shell.Room `json:"room"`
	// Environment optionally references an externally sourced room model
	// whose sub-floor geometry should be clipped.
	Environment string             `json:"environmentModel,omitempty"`
	Placements  []Placement        `json:"placements,omitempty"`
	CameraPath  []campath.Waypoint `json:"cameraPath,omitempty"`
}

// Parse decodes and validates a session document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding session document")
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses a session document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading session %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing session %s", path)
	}
	return doc, nil
}

// validate rejects documents the builders cannot give meaning to. Opening
// spans outside the wall are NOT rejected here; the shell builder clamps
// them at the wall boundary.
func (d *Document) validate() error {
	if d.Room.Width <= 0 || d.Room.Length <= 0 || d.Room.Height <= 0 {
		return errors.Errorf("room dimensions must be positive, got %vx%vx%v",
			d.Room.Width, d.Room.Length, d.Room.Height)
	}

	for i, o := range d.Room.Openings {
		switch o.Side {
		case shell.North, shell.South, shell.East, shell.West:
		default:
			return errors.Errorf("opening %d: unknown wall side %q", i, o.Side)
		}
		switch o.Kind {
		case shell.Door, shell.Window:
		default:
			return errors.Errorf("opening %d: unknown kind %q", i, o.Kind)
		}
	}

	for i, p := range d.Placements {
		if p.Model == "" {
			return errors.Errorf("placement %d: missing model reference", i)
		}
	}

	return nil
}
