// Package mesh provides the triangle mesh model and its text loader.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/wireframe/pkg/math"
)

// Mesh format errors.
var (
	ErrVertexFormat = errors.New("malformed vertex line")
	ErrFaceFormat   = errors.New("malformed face line")
	ErrFaceIndex    = errors.New("face index out of range")
)

// Face is a triangle described by three 1-based indices into a shared
// vertex slice.
type Face struct {
	A, B, C int
}

// Mesh is a set of vertices connected into triangular faces, together
// with its transform state. Vertices and Faces are fixed after
// construction; Rotation, Scale and Translation are mutated by the
// owning frame loop.
type Mesh struct {
	Vertices []math.Vec3
	Faces    []Face

	Rotation    math.Vec3
	Scale       math.Vec3
	Translation math.Vec3
}

// Cube geometry: 8 corners of a 2-unit cube centered at the origin,
// 12 faces (two triangles per side).
var cubeVertices = [8]math.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: 1},
}

var cubeFaces = [12]Face{
	// front
	{A: 1, B: 2, C: 3},
	{A: 1, B: 3, C: 4},
	// right
	{A: 4, B: 3, C: 5},
	{A: 4, B: 5, C: 6},
	// back
	{A: 6, B: 5, C: 7},
	{A: 6, B: 7, C: 8},
	// left
	{A: 8, B: 7, C: 2},
	{A: 8, B: 2, C: 1},
	// top
	{A: 7, B: 5, C: 3},
	{A: 7, B: 3, C: 2},
	// bottom
	{A: 8, B: 1, C: 4},
	{A: 8, B: 4, C: 6},
}

// NewCube returns a unit cube mesh with fresh vertex and face slices,
// zero rotation, unit scale and zero translation.
func NewCube() *Mesh {
	m := &Mesh{
		Vertices: make([]math.Vec3, len(cubeVertices)),
		Faces:    make([]Face, len(cubeFaces)),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
	copy(m.Vertices, cubeVertices[:])
	copy(m.Faces, cubeFaces[:])
	return m
}

// LoadFile reads a mesh from a line-oriented text file. Lines starting
// with "v" declare a vertex ("v x y z"), lines starting with "f" a
// face ("f i j k", where each index may carry "/"-separated extras
// that are ignored). Blank lines and any other leading token are
// skipped. Face indices are 1-based and checked against the vertex
// count; any malformed line or out-of-range index fails the whole
// load.
func LoadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh file: %w", err)
	}
	defer f.Close()

	m := &Mesh{
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}

	if err := m.validateFaces(); err != nil {
		return nil, err
	}

	return m, nil
}

func parseVertex(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("%w: want 3 coordinates, got %d", ErrVertexFormat, len(fields))
	}

	var coords [3]float32
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("%w: coordinate %q", ErrVertexFormat, fields[i])
		}
		coords[i] = float32(val)
	}
	return math.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func parseFace(fields []string) (Face, error) {
	if len(fields) < 3 {
		return Face{}, fmt.Errorf("%w: want 3 indices, got %d", ErrFaceFormat, len(fields))
	}

	var indices [3]int
	for i := 0; i < 3; i++ {
		// "i/j/k" tokens: only the vertex index before the first
		// slash matters, texture/normal references are ignored.
		tok, _, _ := strings.Cut(fields[i], "/")
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return Face{}, fmt.Errorf("%w: index %q", ErrFaceFormat, fields[i])
		}
		indices[i] = idx
	}
	return Face{A: indices[0], B: indices[1], C: indices[2]}, nil
}

// validateFaces checks every face index against [1, len(Vertices)].
// Deferring this to render time would turn a bad input file into an
// out-of-bounds slice access mid-frame.
func (m *Mesh) validateFaces() error {
	n := len(m.Vertices)
	for i, face := range m.Faces {
		for _, idx := range [3]int{face.A, face.B, face.C} {
			if idx < 1 || idx > n {
				return fmt.Errorf("%w: face %d references vertex %d, mesh has %d vertices",
					ErrFaceIndex, i+1, idx, n)
			}
		}
	}
	return nil
}
