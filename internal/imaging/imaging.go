package imaging

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/akeil/cssmatrix"
	"github.com/akeil/cssmatrix/internal/logging"
)

// MaxSize is the largest width or height Transform will allocate.
const MaxSize = 1 << 14

// tolerance for rounding the destination bounds
const snap = 1e-9

// Transform resamples the given image through the 2D part of m.
//
// Like CSS with the default transform-origin, the transform is applied
// about the center of the source image. The result is just large enough
// to hold the transformed bounds; uncovered pixels are transparent.
//
// Returns an error if m collapses the image (zero determinant) or the
// result would exceed MaxSize.
func Transform(i image.Image, m cssmatrix.Matrix) (image.Image, error) {
	box := i.Bounds()
	if box.Empty() {
		return nil, fmt.Errorf("cannot transform an empty image")
	}

	// Transform around the center instead of the origin
	// means: Translate - Transform - Translate
	cx := float64(box.Min.X) + float64(box.Dx())/2
	cy := float64(box.Min.Y) + float64(box.Dy())/2
	t0 := translation(-cx, -cy)
	t1 := translation(cx, cy)
	s2d := multiply(t1, multiply(m.Aff3(), t0))

	if determinant(s2d) == 0 || math.IsNaN(determinant(s2d)) {
		return nil, fmt.Errorf("transform %v is not invertible", m)
	}

	// Bounding box of the transformed corners
	corners := [][2]float64{
		{float64(box.Min.X), float64(box.Min.Y)},
		{float64(box.Max.X), float64(box.Min.Y)},
		{float64(box.Min.X), float64(box.Max.Y)},
		{float64(box.Max.X), float64(box.Max.Y)},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := transform(s2d, c[0], c[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	minX = math.Floor(minX + snap)
	minY = math.Floor(minY + snap)
	maxX = math.Ceil(maxX - snap)
	maxY = math.Ceil(maxY - snap)

	w := maxX - minX
	h := maxY - minY
	if w > MaxSize || h > MaxSize {
		return nil, fmt.Errorf("transformed image would be %vx%v pixels, max is %v", w, h, MaxSize)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	// Shift the result into the destination rectangle
	s2d = multiply(translation(-minX, -minY), s2d)

	logging.Debug("Transform %vx%v image to %vx%v with %v", box.Dx(), box.Dy(), w, h, m)
	dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	draw.BiLinear.Transform(dst, s2d, i, box, draw.Over, nil)

	return dst, nil
}
