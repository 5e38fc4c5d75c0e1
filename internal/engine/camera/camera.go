// Package camera provides the view position for the render pipeline.
package camera

import (
	"github.com/Faultbox/wireframe/pkg/math"
)

// Camera is a point looking down the +z axis. Only Position.Z moves
// at runtime, driven by mouse-wheel zoom.
type Camera struct {
	Position math.Vec3

	// ZoomStep scales wheel delta into world units.
	ZoomStep float32
}

// New creates a camera at the given position.
func New(position math.Vec3, zoomStep float32) *Camera {
	return &Camera{
		Position: position,
		ZoomStep: zoomStep,
	}
}

// HandleZoom applies a mouse-wheel delta to the camera's z. Positive
// delta moves the camera forward, negative pulls it back. Unclamped;
// the camera may pass through the scene.
func (c *Camera) HandleZoom(delta float32) {
	c.Position.Z += delta * c.ZoomStep
}
