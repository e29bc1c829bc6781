// Package geometry implements the primitive cross-section shapes of the
// moment-curvature core: rectangles, trapezoids and point-mass circles.
//
// z grows downward from the top of the section (Section 4.1). Every shape
// exposes its edges, a width function b(z), its gross area and a split
// operation that yields the sub-shape between two depths.
package geometry

import (
	"fmt"
	"math"
)

// Shape is a cross-section primitive. Rectangle and Trapezoid integrate
// over z; Circle is treated as a point mass (Section 4.1).
type Shape interface {
	// Top returns the shallowest depth of the shape.
	Top() float64
	// Bottom returns the deepest depth of the shape.
	Bottom() float64
	// Width returns b(z), the shape's width at depth z. Zero outside
	// [Top(), Bottom()].
	Width(z float64) float64
	// Area returns the gross cross-sectional area.
	Area() float64
	// Split returns the sub-shape lying between zTop and zBottom.
	// zTop and zBottom are clamped to the shape's own bounds.
	Split(zTop, zBottom float64) (Shape, error)
	// IsPoint reports whether the shape is a point mass (Circle): such
	// shapes are not split or integrated across their own depth.
	IsPoint() bool
}

// Rectangle is a constant-width shape: b(z) = Width for z in [Top, Bottom].
type Rectangle struct {
	top, bottom float64
	width       float64
}

// NewRectangle builds a Rectangle. top must not exceed bottom (equal edges
// give a zero-height rectangle) and width must be non-negative (Section 3
// invariants).
func NewRectangle(top, bottom, width float64) (Rectangle, error) {
	if top > bottom {
		return Rectangle{}, fmt.Errorf("geometry: inverted edges top=%.6g bottom=%.6g", top, bottom)
	}
	if width < 0 {
		return Rectangle{}, fmt.Errorf("geometry: negative width %.6g", width)
	}
	return Rectangle{top: top, bottom: bottom, width: width}, nil
}

func (r Rectangle) Top() float64    { return r.top }
func (r Rectangle) Bottom() float64 { return r.bottom }
func (r Rectangle) IsPoint() bool   { return false }

func (r Rectangle) Width(z float64) float64 {
	if z < r.top || z > r.bottom {
		return 0
	}
	return r.width
}

func (r Rectangle) Area() float64 {
	return r.width * (r.bottom - r.top)
}

func (r Rectangle) Split(zTop, zBottom float64) (Shape, error) {
	zTop, zBottom = clamp(zTop, zBottom, r.top, r.bottom)
	return NewRectangle(zTop, zBottom, r.width)
}

// Trapezoid has a width linear in z: b(z) = slope*z + intercept, determined
// by the top and bottom widths (Section 4.1).
type Trapezoid struct {
	top, bottom         float64
	topWidth, botWidth  float64
	slope, intercept    float64
}

// NewTrapezoid builds a Trapezoid from its top/bottom depths and the
// corresponding widths.
func NewTrapezoid(top, bottom, topWidth, botWidth float64) (Trapezoid, error) {
	if top > bottom {
		return Trapezoid{}, fmt.Errorf("geometry: inverted edges top=%.6g bottom=%.6g", top, bottom)
	}
	if topWidth < 0 || botWidth < 0 {
		return Trapezoid{}, fmt.Errorf("geometry: negative width top=%.6g bottom=%.6g", topWidth, botWidth)
	}
	t := Trapezoid{top: top, bottom: bottom, topWidth: topWidth, botWidth: botWidth}
	if bottom == top {
		// Degenerate (zero height): width taken as constant at topWidth.
		t.slope = 0
		t.intercept = topWidth
		return t, nil
	}
	t.slope = (botWidth - topWidth) / (bottom - top)
	t.intercept = topWidth - t.slope*top
	return t, nil
}

func (t Trapezoid) Top() float64    { return t.top }
func (t Trapezoid) Bottom() float64 { return t.bottom }
func (t Trapezoid) IsPoint() bool   { return false }

func (t Trapezoid) Width(z float64) float64 {
	if z < t.top || z > t.bottom {
		return 0
	}
	return t.slope*z + t.intercept
}

func (t Trapezoid) Area() float64 {
	return 0.5 * (t.topWidth + t.botWidth) * (t.bottom - t.top)
}

func (t Trapezoid) Split(zTop, zBottom float64) (Shape, error) {
	zTop, zBottom = clamp(zTop, zBottom, t.top, t.bottom)
	wTop := t.Width(zTop)
	wBottom := t.Width(zBottom)
	return NewTrapezoid(zTop, zBottom, wTop, wBottom)
}

// Circle is a point mass located at its centroid depth, with area A =
// pi*d^2/4 (Section 4.1). It is never split; integration treats it as a
// single concentrated force.
type Circle struct {
	diameter float64
	centroidY, centroidZ float64
}

// NewCircle builds a Circle of the given diameter centred at (y, z).
func NewCircle(diameter, centroidY, centroidZ float64) (Circle, error) {
	if diameter < 0 {
		return Circle{}, fmt.Errorf("geometry: negative diameter %.6g", diameter)
	}
	return Circle{diameter: diameter, centroidY: centroidY, centroidZ: centroidZ}, nil
}

func (c Circle) Top() float64    { return c.centroidZ }
func (c Circle) Bottom() float64 { return c.centroidZ }
func (c Circle) IsPoint() bool   { return true }
func (c Circle) CentroidY() float64 { return c.centroidY }
func (c Circle) CentroidZ() float64 { return c.centroidZ }

// Width is undefined (zero) for a point mass; integration uses Area and
// CentroidZ directly rather than a width function.
func (c Circle) Width(z float64) float64 { return 0 }

func (c Circle) Area() float64 {
	return math.Pi * c.diameter * c.diameter / 4
}

func (c Circle) Split(zTop, zBottom float64) (Shape, error) {
	// A point either lies within [zTop, zBottom] or it doesn't; splitting
	// a point mass is not meaningful, so the circle is returned unchanged
	// when it lies in range and a zero-area circle otherwise.
	if c.centroidZ < zTop || c.centroidZ > zBottom {
		return Circle{diameter: 0, centroidY: c.centroidY, centroidZ: c.centroidZ}, nil
	}
	return c, nil
}

func clamp(zTop, zBottom, lo, hi float64) (float64, float64) {
	if zTop < lo {
		zTop = lo
	}
	if zBottom > hi {
		zBottom = hi
	}
	if zTop > zBottom {
		zTop = zBottom
	}
	return zTop, zBottom
}
