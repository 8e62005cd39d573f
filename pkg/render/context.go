package render

import (
	"image/color"

	"github.com/llgcode/draw2d"

	"github.com/akeil/cssmatrix"
)

var (
	gray     = color.RGBA{160, 160, 160, 255}
	darkBlue = color.RGBA{0, 20, 120, 255}
)

// Context holds the parameters for rendering a transform.
//
// The scene is a square reference box centered on the canvas. It is drawn
// once untransformed and once with the matrix applied about its center.
type Context struct {
	// Canvas size, pixels for PNG and points for PDF.
	Width  int
	Height int
	// Edge length of the reference box.
	BoxSize    float64
	LineWidth  float64
	Background color.Color
	Before     color.Color
	After      color.Color
}

// DefaultContext returns a context for a 400x400 canvas.
func DefaultContext() *Context {
	return &Context{
		Width:      400,
		Height:     400,
		BoxSize:    100,
		LineWidth:  2,
		Background: color.White,
		Before:     gray,
		After:      darkBlue,
	}
}

func (c *Context) center() (float64, float64) {
	return float64(c.Width) / 2, float64(c.Height) / 2
}

// placed moves the transform origin to the canvas center;
// m is applied first, then the translation.
func (c *Context) placed(m cssmatrix.Matrix) cssmatrix.Matrix {
	cx, cy := c.center()
	return cssmatrix.Translate(cx, cy, 0).Multiply(m)
}

// corners returns the reference box corners relative to its center.
func (c *Context) corners() [4]cssmatrix.Point {
	h := c.BoxSize / 2
	return [4]cssmatrix.Point{
		cssmatrix.Pt(-h, -h, 0, 1),
		cssmatrix.Pt(h, -h, 0, 1),
		cssmatrix.Pt(h, h, 0, 1),
		cssmatrix.Pt(-h, h, 0, 1),
	}
}

// project maps the box corners through m onto the canvas,
// with perspective division.
// Returns false if any corner ends up behind the viewer.
func (c *Context) project(m cssmatrix.Matrix) ([4][2]float64, bool) {
	var out [4][2]float64
	p := c.placed(m)
	for i, pt := range c.corners() {
		q := p.TransformPoint(pt)
		if q.W <= 0 {
			return out, false
		}
		out[i] = [2]float64{q.X / q.W, q.Y / q.W}
	}
	return out, true
}

// Draw2D converts the 2D part of m to a draw2d matrix.
func Draw2D(m cssmatrix.Matrix) draw2d.Matrix {
	return draw2d.Matrix{m.A(), m.B(), m.C(), m.D(), m.E(), m.F()}
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
