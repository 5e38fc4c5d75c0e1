package pipeline

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/wireframe/pkg/math"
	"github.com/Faultbox/wireframe/pkg/mesh"
)

func approxEq(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestProjectCenterPoint(t *testing.T) {
	// A point on the camera axis projects to the origin regardless of
	// distance or FOV factor.
	p := New(800, 600, 640)

	for _, z := range []float32{0.5, 1, 5, -3, 100} {
		got := p.Project(math.Vec3{X: 0, Y: 0, Z: z})
		if got.X != 0 || got.Y != 0 {
			t.Errorf("Project({0,0,%v}) = %v, want {0 0}", z, got)
		}
	}
}

func TestProjectScalesWithFOV(t *testing.T) {
	p := New(800, 600, 100)
	got := p.Project(math.Vec3{X: 2, Y: -1, Z: 4})
	want := math.Vec2{X: 50, Y: -25}
	if !approxEq(got.X, want.X) || !approxEq(got.Y, want.Y) {
		t.Errorf("Project() = %v, want %v", got, want)
	}
}

func TestProjectZeroZ(t *testing.T) {
	p := New(800, 600, 640)
	got := p.Project(math.Vec3{X: 1, Y: 1, Z: 0})
	if !gomath.IsInf(float64(got.X), 1) || !gomath.IsInf(float64(got.Y), 1) {
		t.Errorf("Project() at z=0 = %v, want Inf components", got)
	}
}

func TestTransformRecenters(t *testing.T) {
	// An unrotated vertex on the camera axis lands at the screen center.
	p := New(800, 600, 640)
	m := &mesh.Mesh{
		Vertices: []math.Vec3{{X: 0, Y: 0, Z: 0}},
		Faces:    []mesh.Face{{A: 1, B: 1, C: 1}},
	}
	camera := math.Vec3{Z: -5}

	tris := p.Transform(m, camera, nil)
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	for i, pt := range tris[0].Points {
		if !approxEq(pt.X, 400) || !approxEq(pt.Y, 300) {
			t.Errorf("point %d = %v, want {400 300}", i, pt)
		}
	}
}

func TestTransformOneTrianglePerFace(t *testing.T) {
	p := New(800, 600, 640)
	m := mesh.NewCube()
	camera := math.Vec3{Z: -5}

	tris := p.Transform(m, camera, nil)
	if len(tris) != len(m.Faces) {
		t.Errorf("got %d triangles, want %d", len(tris), len(m.Faces))
	}
}

func TestTransformAppliesRotation(t *testing.T) {
	p := New(800, 600, 100)
	m := &mesh.Mesh{
		Vertices: []math.Vec3{{X: 1, Y: 0, Z: 0}},
		Faces:    []mesh.Face{{A: 1, B: 1, C: 1}},
		Rotation: math.Vec3{Z: gomath.Pi / 2},
	}
	camera := math.Vec3{Z: -10}

	// (1,0,0) rotated pi/2 about z becomes (0,1,0); projected at
	// z=10 that is y = 100*1/10 = 10 above center.
	tris := p.Transform(m, camera, nil)
	pt := tris[0].Points[0]
	if !approxEq(pt.X, 400) || !approxEq(pt.Y, 310) {
		t.Errorf("rotated point = %v, want {400 310}", pt)
	}
}

func TestTransformReusesSlice(t *testing.T) {
	p := New(800, 600, 640)
	m := mesh.NewCube()
	camera := math.Vec3{Z: -5}

	tris := p.Transform(m, camera, nil)
	first := &tris[0]

	tris = p.Transform(m, camera, tris[:0])
	if len(tris) != len(m.Faces) {
		t.Fatalf("got %d triangles after reuse, want %d", len(tris), len(m.Faces))
	}
	if &tris[0] != first {
		t.Error("Transform reallocated a slice with sufficient capacity")
	}
}
