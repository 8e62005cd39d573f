package render

import (
	"image"
	"image/png"
	"io"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/akeil/cssmatrix"
	"github.com/akeil/cssmatrix/internal/imaging"
	"github.com/akeil/cssmatrix/internal/logging"
)

// PNG draws the reference box before and after applying m
// and writes the result as PNG to the given writer.
func (c *Context) PNG(m cssmatrix.Matrix, w io.Writer) error {
	return png.Encode(w, c.Image(m))
}

// Image draws the reference box before and after applying m.
//
// 2D matrices are handed to draw2d as they are.
// For 3D matrices, the box corners are projected with perspective division;
// nothing is drawn for a box that ends up behind the viewer.
func (c *Context) Image(m cssmatrix.Matrix) *image.RGBA {
	logging.Debug("Render %v on %dx%d canvas", m, c.Width, c.Height)
	dst := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	gc := draw2dimg.NewGraphicContext(dst)

	gc.SetFillColor(c.Background)
	draw2dkit.Rectangle(gc, 0, 0, float64(c.Width), float64(c.Height))
	gc.Fill()

	gc.SetLineWidth(c.LineWidth)

	cx, cy := c.center()
	h := c.BoxSize / 2
	gc.SetStrokeColor(c.Before)
	draw2dkit.Rectangle(gc, cx-h, cy-h, cx+h, cy+h)
	gc.Stroke()

	gc.Save()
	defer gc.Restore()
	gc.SetStrokeColor(c.After)

	if m.Is2D() {
		gc.SetMatrixTransform(Draw2D(c.placed(m)))
		draw2dkit.Rectangle(gc, -h, -h, h, h)
		gc.Stroke()
		return dst
	}

	pts, ok := c.project(m)
	if !ok {
		logging.Info("Transformed box for %v is behind the viewer", m)
		return dst
	}
	gc.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		gc.LineTo(p[0], p[1])
	}
	gc.Close()
	gc.Stroke()

	return dst
}

// TransformPNG reads a PNG image, transforms it with m about its center
// and writes the result as PNG.
func TransformPNG(m cssmatrix.Matrix, r io.Reader, w io.Writer) error {
	src, err := png.Decode(r)
	if err != nil {
		return cssmatrix.Wrap(err, "decode source image")
	}

	dst, err := imaging.Transform(src, m)
	if err != nil {
		return err
	}

	return png.Encode(w, dst)
}
