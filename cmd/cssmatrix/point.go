package main

import (
	"fmt"

	"github.com/akeil/cssmatrix"
)

func doPoint(s settings, source string, coords []float64) error {
	p, err := pointFromCoords(coords)
	if err != nil {
		return err
	}

	m, err := cssmatrix.FromString(source)
	if err != nil {
		return err
	}

	q := m.TransformPoint(p)
	fmt.Printf("%v %v\n", checkmark, formatPoint(q))
	return nil
}

// pointFromCoords takes 2 to 4 coordinates; z defaults to 0 and w to 1.
func pointFromCoords(coords []float64) (cssmatrix.Point, error) {
	p := cssmatrix.Pt(0, 0, 0, 1)
	switch len(coords) {
	case 4:
		p.W = coords[3]
		fallthrough
	case 3:
		p.Z = coords[2]
		fallthrough
	case 2:
		p.X = coords[0]
		p.Y = coords[1]
	default:
		return p, fmt.Errorf("need 2 to 4 coordinates, got %d", len(coords))
	}
	return p, nil
}

func formatPoint(p cssmatrix.Point) string {
	return fmt.Sprintf("x=%v y=%v z=%v w=%v", p.X, p.Y, p.Z, p.W)
}
