// Package pipeline transforms mesh-space faces into screen-space
// triangles, once per frame.
package pipeline

import (
	"github.com/Faultbox/wireframe/pkg/math"
	"github.com/Faultbox/wireframe/pkg/mesh"
)

// Triangle is a projected face in screen space. Triangles live for
// one frame only: built by Transform, consumed by the rasterizer,
// then discarded.
type Triangle struct {
	Points [3]math.Vec2
}

// Pipeline holds the fixed projection parameters.
type Pipeline struct {
	fovFactor float32
	halfW     float32
	halfH     float32
}

// New creates a pipeline projecting into a width*height screen with
// the given field-of-view scale factor.
func New(width, height int, fovFactor float32) *Pipeline {
	return &Pipeline{
		fovFactor: fovFactor,
		halfW:     float32(width) / 2,
		halfH:     float32(height) / 2,
	}
}

// Project maps a camera-space point onto the screen plane with a
// perspective divide. A point at z == 0 yields Inf coordinates; they
// propagate into the rasterizer's bounds checks and draw nothing.
func (p *Pipeline) Project(v math.Vec3) math.Vec2 {
	return math.Vec2{
		X: p.fovFactor * v.X / v.Z,
		Y: p.fovFactor * v.Y / v.Z,
	}
}

// Transform runs the per-frame stage: for every face of m, rotate its
// three vertices by the mesh rotation (x, then y, then z), move them
// into camera space by subtracting the camera's z, project, and
// recenter on the screen. Results are appended to out, which is
// reused across frames to avoid per-frame allocation; pass out[:0].
func (p *Pipeline) Transform(m *mesh.Mesh, cameraPos math.Vec3, out []Triangle) []Triangle {
	for _, face := range m.Faces {
		verts := [3]math.Vec3{
			m.Vertices[face.A-1],
			m.Vertices[face.B-1],
			m.Vertices[face.C-1],
		}

		var tri Triangle
		for i, v := range verts {
			v = v.Rotate(m.Rotation)

			// Camera looks down +z; pulling the camera back along z
			// reveals more of the scene.
			v.Z -= cameraPos.Z

			s := p.Project(v)
			s.X += p.halfW
			s.Y += p.halfH
			tri.Points[i] = s
		}
		out = append(out, tri)
	}
	return out
}
