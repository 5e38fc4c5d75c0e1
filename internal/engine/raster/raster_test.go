package raster

import (
	"bytes"
	"testing"

	"github.com/Faultbox/wireframe/pkg/math"
)

// litPixels returns the coordinates of every non-black pixel.
func litPixels(c *Canvas) map[[2]int]bool {
	lit := make(map[[2]int]bool)
	buf := c.Buffer()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			i := (y*c.Width() + x) * 3
			if buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0 {
				lit[[2]int{x, y}] = true
			}
		}
	}
	return lit
}

func TestClear(t *testing.T) {
	c := New(8, 8)
	c.DrawRect(0, 0, 8, 8, White)

	c.Clear()

	for i, b := range c.Buffer() {
		if b != 0 {
			t.Fatalf("byte %d = %d after Clear, want 0", i, b)
		}
	}
}

func TestBufferLength(t *testing.T) {
	c := New(10, 7)
	if len(c.Buffer()) != 10*7*3 {
		t.Errorf("buffer length = %d, want %d", len(c.Buffer()), 10*7*3)
	}
}

func TestDrawPixel(t *testing.T) {
	c := New(4, 4)
	c.DrawPixel(2, 1, Color{10, 20, 30})

	i := (1*4 + 2) * 3
	buf := c.Buffer()
	if buf[i] != 10 || buf[i+1] != 20 || buf[i+2] != 30 {
		t.Errorf("pixel bytes = %v, want [10 20 30]", buf[i:i+3])
	}
}

func TestDrawPixelOutOfBounds(t *testing.T) {
	c := New(4, 4)
	before := bytes.Clone(c.Buffer())

	// x == width is the first out-of-range column.
	c.DrawPixel(4, 0, White)
	c.DrawPixel(-1, 0, White)
	c.DrawPixel(0, 4, White)
	c.DrawPixel(0, -1, White)

	if !bytes.Equal(c.Buffer(), before) {
		t.Error("out-of-bounds DrawPixel modified the buffer")
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := New(8, 8)
	c.DrawLine(0, 0, 3, 0, White)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 0}: true, {3, 0}: true,
	}
	got := litPixels(c)
	if len(got) != len(want) {
		t.Fatalf("lit %d pixels, want %d: %v", len(got), len(want), got)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("pixel %v not drawn", p)
		}
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	c := New(8, 8)
	c.DrawLine(3, 3, 3, 3, White)

	got := litPixels(c)
	if len(got) != 1 || !got[[2]int{3, 3}] {
		t.Errorf("lit pixels = %v, want exactly (3,3)", got)
	}
}

func TestDrawLineShallow(t *testing.T) {
	// Hand-traced Bresenham reference for (0,0)-(5,2).
	c := New(8, 8)
	c.DrawLine(0, 0, 5, 2, White)

	want := map[[2]int]bool{
		{0, 0}: true, {1, 0}: true, {2, 1}: true,
		{3, 1}: true, {4, 2}: true, {5, 2}: true,
	}
	got := litPixels(c)
	if len(got) != len(want) {
		t.Fatalf("lit pixels = %v, want %v", got, want)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("pixel %v not drawn", p)
		}
	}
}

func TestDrawLineOctants(t *testing.T) {
	// Every line must land exactly on both endpoints and stay inside
	// the bounding box of the segment.
	ends := [][4]int{
		{4, 4, 7, 5}, {4, 4, 5, 7}, {4, 4, 1, 5}, {4, 4, 1, 3},
		{4, 4, 3, 1}, {4, 4, 5, 1}, {4, 4, 7, 3}, {4, 4, 7, 4},
		{4, 4, 4, 7}, {4, 4, 0, 0},
	}

	for _, e := range ends {
		c := New(9, 9)
		c.DrawLine(e[0], e[1], e[2], e[3], White)
		got := litPixels(c)

		if !got[[2]int{e[0], e[1]}] || !got[[2]int{e[2], e[3]}] {
			t.Errorf("line %v missing an endpoint: %v", e, got)
		}
		minX, maxX := minMax(e[0], e[2])
		minY, maxY := minMax(e[1], e[3])
		for p := range got {
			if p[0] < minX || p[0] > maxX || p[1] < minY || p[1] > maxY {
				t.Errorf("line %v drew %v outside its bounding box", e, p)
			}
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	// Endpoints far outside the canvas must not panic or wrap.
	c := New(4, 4)
	c.DrawLine(-10, -10, 20, 20, White)

	got := litPixels(c)
	for p := range got {
		if p[0] < 0 || p[0] >= 4 || p[1] < 0 || p[1] >= 4 {
			t.Errorf("clipped line lit out-of-range pixel %v", p)
		}
	}
	if !got[[2]int{0, 0}] || !got[[2]int{3, 3}] {
		t.Errorf("diagonal through canvas missing corners: %v", got)
	}
}

func TestDrawTriangleIsThreeLines(t *testing.T) {
	points := [3]math.Vec2{
		{X: 1, Y: 1},
		{X: 10, Y: 3},
		{X: 4, Y: 12},
	}

	tri := New(16, 16)
	tri.DrawTriangle(points, White)

	lines := New(16, 16)
	lines.DrawLine(1, 1, 10, 3, White)
	lines.DrawLine(10, 3, 4, 12, White)
	lines.DrawLine(4, 12, 1, 1, White)

	if !bytes.Equal(tri.Buffer(), lines.Buffer()) {
		t.Error("DrawTriangle differs from the union of its three edges")
	}
}

func TestDrawTriangleTruncatesCoordinates(t *testing.T) {
	points := [3]math.Vec2{
		{X: 1.9, Y: 1.9},
		{X: 5.7, Y: 1.2},
		{X: 3.4, Y: 6.8},
	}

	tri := New(16, 16)
	tri.DrawTriangle(points, White)

	lines := New(16, 16)
	lines.DrawLine(1, 1, 5, 1, White)
	lines.DrawLine(5, 1, 3, 6, White)
	lines.DrawLine(3, 6, 1, 1, White)

	if !bytes.Equal(tri.Buffer(), lines.Buffer()) {
		t.Error("DrawTriangle did not truncate float coordinates")
	}
}

func TestDrawRect(t *testing.T) {
	c := New(8, 8)
	c.DrawRect(2, 3, 3, 2, White)

	got := litPixels(c)
	if len(got) != 6 {
		t.Fatalf("lit %d pixels, want 6: %v", len(got), got)
	}
	for y := 3; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if !got[[2]int{x, y}] {
				t.Errorf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestDrawRectOriginOutOfBounds(t *testing.T) {
	c := New(8, 8)
	before := bytes.Clone(c.Buffer())

	c.DrawRect(8, 0, 4, 4, White)
	c.DrawRect(0, 8, 4, 4, White)
	c.DrawRect(-1, 0, 4, 4, White)

	if !bytes.Equal(c.Buffer(), before) {
		t.Error("rect with out-of-bounds origin modified the buffer")
	}
}

func TestDrawRectOverhangClipped(t *testing.T) {
	c := New(8, 8)
	c.DrawRect(6, 6, 4, 4, White)

	got := litPixels(c)
	if len(got) != 4 {
		t.Fatalf("lit %d pixels, want 4 (clipped 2x2 corner): %v", len(got), got)
	}
	for y := 6; y < 8; y++ {
		for x := 6; x < 8; x++ {
			if !got[[2]int{x, y}] {
				t.Errorf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestDrawGrid(t *testing.T) {
	c := New(10, 10)
	c.DrawGrid(5, Gray)

	got := litPixels(c)
	want := map[[2]int]bool{
		{0, 0}: true, {5, 0}: true,
		{0, 5}: true, {5, 5}: true,
	}
	if len(got) != len(want) {
		t.Fatalf("lit pixels = %v, want %v", got, want)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("grid point %v not drawn", p)
		}
	}
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
