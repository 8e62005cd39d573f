// Package cssmatrix implements the CSS/DOM 4x4 transformation matrix and a
// parser for CSS transform lists such as "translate(10px, 20px) rotate(45deg)".
//
// Matrices are values. Every composition method (Translate, Scale, Rotate,
// ...) post-multiplies the receiver by the new transform and returns the
// result, in the same order in which CSS applies transform functions:
//
//	m, err := cssmatrix.FromString("translate(10, 20) scale(2)")
//	same := cssmatrix.Identity().Translate(10, 20).Scale(2)
//
// Lengths are plain numbers; units other than deg and rad are not resolved.
package cssmatrix

import (
	"github.com/akeil/cssmatrix/internal/logging"
)

// SetLogLevel sets the log level by name: one of debug, info, warning or
// error. Any other value disables logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}
