package render

import (
	"bytes"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/cssmatrix"
	"github.com/akeil/cssmatrix/internal/logging"
)

// PDF renders the transform to a two-page PDF document.
//
// The first page shows the reference box as vector graphics, the second page
// holds the raster image from PNG. The document is written to the given
// writer.
func (c *Context) PDF(m cssmatrix.Matrix, w io.Writer) error {
	logging.Debug("Render PDF for %v", m)
	pdf := c.setupPDF(m)

	c.vectorPage(pdf, m)

	err := c.rasterPage(pdf, m)
	if err != nil {
		return err
	}

	return pdf.Output(w)
}

func (c *Context) setupPDF(m cssmatrix.Matrix) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P", // [P]ortrait or [L]andscape
		UnitStr:        "pt",
		Size: gofpdf.SizeType{
			Wd: float64(c.Width),
			Ht: float64(c.Height),
		},
	})

	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("cssmatrix", true)
	pdf.SetTitle(m.String(), true)

	return pdf
}

func (c *Context) vectorPage(pdf *gofpdf.Fpdf, m cssmatrix.Matrix) {
	pdf.AddPage()

	cx, cy := c.center()
	h := c.BoxSize / 2
	pdf.SetLineWidth(c.LineWidth)

	pdf.SetDrawColor(rgb(c.Before))
	pdf.Rect(cx-h, cy-h, c.BoxSize, c.BoxSize, "D")

	pdf.SetDrawColor(rgb(c.After))
	if m.Is2D() {
		pdf.TransformBegin()
		pdf.Transform(c.pdfTransform(m))
		pdf.Rect(cx-h, cy-h, c.BoxSize, c.BoxSize, "D")
		pdf.TransformEnd()
	} else if pts, ok := c.project(m); ok {
		poly := make([]gofpdf.PointType, len(pts))
		for i, p := range pts {
			poly[i] = gofpdf.PointType{X: p[0], Y: p[1]}
		}
		pdf.Polygon(poly, "D")
	} else {
		logging.Info("Transformed box for %v is behind the viewer", m)
	}

	pdf.Text(8, float64(c.Height)-8, m.String())
}

// pdfTransform maps m to a PDF transformation matrix about the canvas center.
//
// PDF user space has its y-axis pointing up, so the matrix is mirrored
// along the x-axis before it is applied.
func (c *Context) pdfTransform(m cssmatrix.Matrix) gofpdf.TransformMatrix {
	cx, cy := c.center()
	// center in PDF coordinates
	px := cx
	py := float64(c.Height) - cy

	a, b, cc, d := m.A(), -m.B(), -m.C(), m.D()
	e, f := m.E(), -m.F()

	return gofpdf.TransformMatrix{
		A: a,
		B: b,
		C: cc,
		D: d,
		E: px - a*px - cc*py + e,
		F: py - b*px - d*py + f,
	}
}

func (c *Context) rasterPage(pdf *gofpdf.Fpdf, m cssmatrix.Matrix) error {
	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}

	// render to PNG
	var buf bytes.Buffer
	err := c.PNG(m, &buf)
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	pdf.AddPage()

	// The image will be scaled to the page width
	wPage, _ := pdf.GetPageSize()

	x := 0.0
	y := 0.0
	h := 0.0
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, wPage, h, flow, opts, link, linkStr)

	return pdf.Error()
}
