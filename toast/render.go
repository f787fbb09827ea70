package toast

import (
	"fmt"
	"image/color"
	"strings"
)

// Point is a screen position in pixels.
type Point struct {
	X, Y float64
}

// Matrix is a 2D affine transform:
// x' = A*x + B*y + Tx, y' = C*x + D*y + Ty.
type Matrix struct {
	A, B, Tx float64
	C, D, Ty float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Apply transforms p.
func (mx Matrix) Apply(p Point) Point {
	return Point{
		X: mx.A*p.X + mx.B*p.Y + mx.Tx,
		Y: mx.C*p.X + mx.D*p.Y + mx.Ty,
	}
}

// Justify is the horizontal alignment of a line relative to the anchor.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

func (j Justify) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	}
	return "left"
}

// ParseJustify accepts "left", "center"/"centre" and "right".
func ParseJustify(s string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return JustifyLeft, nil
	case "center", "centre":
		return JustifyCenter, nil
	case "right":
		return JustifyRight, nil
	}
	return JustifyLeft, fmt.Errorf("toast: unknown justification %q", s)
}

// DrawCommand is one line of text handed to a Renderer.
type DrawCommand struct {
	Text     string
	Position Point
	Justify  Justify
	Scale    float64
	Color    color.RGBA
	Shadow   *color.RGBA // nil disables the drop shadow
}

// Renderer is the host's text capability.
// Begin and End bracket one frame's batch of Draw calls.
type Renderer interface {
	Measure(text string) (width, height float64)
	Begin(transform Matrix)
	Draw(cmd DrawCommand)
	End()
}

// AnchorFunc supplies the point the stack grows from.
type AnchorFunc func() Point

// TransformFunc supplies the transform applied to the draw batch.
type TransformFunc func() Matrix
