// Package raster implements the software rasterizer: a row-major RGB
// pixel buffer and the Bresenham primitives that draw into it.
package raster

import (
	"github.com/Faultbox/wireframe/pkg/math"
)

// Color is a 24-bit RGB color, 3 bytes per pixel in the buffer.
type Color struct {
	R, G, B uint8
}

// Common draw colors.
var (
	Black  = Color{0, 0, 0}
	White  = Color{255, 255, 255}
	Green  = Color{0, 255, 0}
	Yellow = Color{255, 255, 0}
	Gray   = Color{64, 64, 64}
)

// Canvas owns the frame's pixel buffer. Coordinates grow right and
// down from the top-left corner; each pixel is 3 bytes (R, G, B).
type Canvas struct {
	width  int
	height int
	buffer []byte
}

// New creates a canvas with a zeroed width*height*3 byte buffer.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		buffer: make([]byte, width*height*3),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Buffer returns the underlying pixel bytes for presentation. The
// slice is valid until the next Clear.
func (c *Canvas) Buffer() []byte { return c.buffer }

// Pitch returns the byte length of one pixel row.
func (c *Canvas) Pitch() int { return c.width * 3 }

// Clear resets every pixel to black. Runs before each frame's draws.
func (c *Canvas) Clear() {
	clear(c.buffer)
}

// DrawPixel writes one pixel. Out-of-bounds coordinates are silently
// dropped; the row bound is derived from the buffer length so a
// short buffer can never be overrun.
func (c *Canvas) DrawPixel(x, y int, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= len(c.buffer)/c.Pitch() {
		return
	}
	i := (y*c.width + x) * 3
	c.buffer[i] = color.R
	c.buffer[i+1] = color.G
	c.buffer[i+2] = color.B
}

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) with the integer
// Bresenham algorithm. Produces the classic pixel set in all octants;
// both endpoints are drawn.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx + dy
	for {
		c.DrawPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}

		// Both branches may fire in one iteration (diagonal step).
		e2 := 2 * err
		if e2 > dy {
			err += dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawTriangle draws the three edges of a screen-space triangle.
// Floating-point coordinates are truncated, not rounded.
func (c *Canvas) DrawTriangle(points [3]math.Vec2, color Color) {
	for i := 0; i < 3; i++ {
		p0 := points[i]
		p1 := points[(i+1)%3]
		c.DrawLine(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), color)
	}
}

// DrawRect fills a width*height rectangle with origin (x, y). A
// rectangle whose origin lies outside the canvas is dropped entirely;
// one that merely overhangs an edge is clipped pixel by pixel.
func (c *Canvas) DrawRect(x, y, width, height int, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			c.DrawPixel(col, row, color)
		}
	}
}

// DrawGrid marks every cellSize-th row/column intersection with a
// single pixel. Debug aid for judging projected positions.
func (c *Canvas) DrawGrid(cellSize int, color Color) {
	if cellSize <= 0 {
		return
	}
	for y := 0; y < c.height; y += cellSize {
		for x := 0; x < c.width; x += cellSize {
			c.DrawPixel(x, y, color)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
