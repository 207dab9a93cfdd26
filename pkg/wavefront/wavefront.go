// Package wavefront reads vertex data from Wavefront OBJ files.
//
// Only vertex position records ("v x y z") are parsed; faces, normals and
// texture coordinates are skipped. That is enough to derive bounding boxes
// and vertex samples for scene construction.
package wavefront

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Model holds the vertex positions read from an OBJ stream.
type Model struct {
	Positions []mgl32.Vec3
}

// Read parses vertex positions from an OBJ stream.
func Read(r io.Reader) (*Model, error) {
	model := &Model{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "v ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, errors.Errorf("line %d: vertex record has %d fields, want at least 4", lineNo, len(fields))
		}

		var v mgl32.Vec3
		for i := 0; i < 3; i++ {
			f, err := strconv.ParseFloat(fields[i+1], 32)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: parsing vertex coordinate", lineNo)
			}
			v[i] = float32(f)
		}
		model.Positions = append(model.Positions, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading obj stream")
	}

	return model, nil
}
