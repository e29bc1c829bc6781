// Package beam discretises a single-span beam into nodes, each carrying
// its own moment-curvature curve scaled to the effective width at that
// position, and recovers deflection via the principle of virtual forces
// (Section 4.7).
package beam

import (
	"fmt"
	"math"

	"github.com/openstructure/mkappa/internal/curve"
	"github.com/openstructure/mkappa/internal/loading"
	"github.com/openstructure/mkappa/internal/section"
	"github.com/openstructure/mkappa/internal/solver"
)

// Beam is a single-span beam: a full-width cross-section, its length,
// the number of discretisation elements, and the applied loading.
type Beam struct {
	Crosssection section.Crosssection
	Length       float64
	Elements     int
	Loading      loading.Loading
	Solver       solver.Config
}

// Node is one station along a beam's length, carrying the M-kappa curve of
// the cross-section narrowed to its effective width at that position.
type Node struct {
	Position     float64
	BendingWidth float64
	Curve        curve.MKappaCurvePoints
}

// EffectiveWidth approximates a flange's effective width at position x
// along a simply-supported span of the given length: full width is reached
// a quarter-span in from each support (taken proportional to the effective
// span, Le = length for a single simple span, following the beff = Le/4
// shear-lag taper used for composite beams) and tapers linearly to zero at
// the supports.
func EffectiveWidth(x, length, fullWidth float64) float64 {
	taper := length / 4
	d := math.Min(x, length-x)
	if d >= taper || taper <= 0 {
		return fullWidth
	}
	return fullWidth * d / taper
}

// Discretize builds b.Elements+1 equally spaced nodes, scaling the beam's
// cross-section to its effective bending width at each node and computing
// that node's M-kappa curve (Section 4.7). Section 4.7 also names a
// membrane (axial) effective width w_m(x) alongside the bending one, but
// every consumer of a node's curve in this package — Deflect's curvature
// lookup and SolveSlip's resisting-moment lookup — only ever needs the
// bending-scaled M-kappa/M-N-kappa-epsDelta surface that BendingWidth
// already produced; there is no separate axial-stiffness computation in
// this package for a distinct w_m to feed, so it is not tracked on Node.
func (b Beam) Discretize(opts curve.MKappaOptions) ([]Node, error) {
	if b.Elements <= 0 {
		return nil, fmt.Errorf("beam: elements must be positive, got %d", b.Elements)
	}
	if b.Length <= 0 {
		return nil, fmt.Errorf("beam: length must be positive, got %g", b.Length)
	}

	top, _ := b.Crosssection.Extent()
	fullWidth := b.Crosssection.Sections[0].Shape.Width(top)

	nodes := make([]Node, b.Elements+1)
	for i := range nodes {
		x := b.Length * float64(i) / float64(b.Elements)
		bending := EffectiveWidth(x, b.Length, fullWidth)

		factor := 1.0
		if fullWidth > 0 {
			factor = bending / fullWidth
		}
		scaled, err := section.ScaleWidth(b.Crosssection, factor)
		if err != nil {
			return nil, fmt.Errorf("beam: scaling node %d: %w", i, err)
		}

		nodes[i] = Node{
			Position:     x,
			BendingWidth: bending,
			Curve:        curve.MKappaCurve(scaled, opts),
		}
	}
	return nodes, nil
}
