package beam

import (
	"fmt"
	"sort"

	"github.com/openstructure/mkappa/internal/curve"
	"github.com/openstructure/mkappa/internal/loading"
)

// curvatureMomentPair is one point of a node's merged M-kappa branch, used
// to invert moment -> curvature by interpolation.
type curvatureMomentPair struct {
	Kappa  float64
	Moment float64
}

// mergedBranch concatenates the negative branch (ascending kappa), the
// origin, and the positive branch into one curve monotone in both kappa
// and moment, suitable for linear interpolation in either direction.
func mergedBranch(c curve.MKappaCurvePoints) []curvatureMomentPair {
	merged := make([]curvatureMomentPair, 0, len(c.Positive)+len(c.Negative)+1)
	for _, p := range c.Negative {
		merged = append(merged, curvatureMomentPair{Kappa: p.Kappa, Moment: p.Moment})
	}
	merged = append(merged, curvatureMomentPair{})
	for _, p := range c.Positive {
		merged = append(merged, curvatureMomentPair{Kappa: p.Kappa, Moment: p.Moment})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Moment < merged[j].Moment })
	return merged
}

// KappaAtMoment inverts a node's M-kappa curve by linear interpolation,
// returning the curvature whose moment matches m. Returns an error if m
// lies outside the curve's covered moment range (Section 4.7: "read the
// curvature kappa_i from its M-kappa curve at M = M_ext(...)").
func KappaAtMoment(c curve.MKappaCurvePoints, m float64) (float64, error) {
	merged := mergedBranch(c)
	if len(merged) < 2 {
		return 0, fmt.Errorf("beam: curve has too few points to interpolate")
	}
	if m < merged[0].Moment || m > merged[len(merged)-1].Moment {
		return 0, fmt.Errorf("beam: moment %.6g outside curve range [%.6g, %.6g]", m, merged[0].Moment, merged[len(merged)-1].Moment)
	}
	for i := 1; i < len(merged); i++ {
		lo, hi := merged[i-1], merged[i]
		if m < lo.Moment || m > hi.Moment {
			continue
		}
		if hi.Moment == lo.Moment {
			return lo.Kappa, nil
		}
		t := (m - lo.Moment) / (hi.Moment - lo.Moment)
		return lo.Kappa + t*(hi.Kappa-lo.Kappa), nil
	}
	return 0, fmt.Errorf("beam: moment %.6g not bracketed", m)
}

// Deflect computes the deflection at position at by the principle of
// virtual forces: a unit load is applied at at to generate the virtual
// moment field, and kappa(x)*Mvirt(x) is integrated over the beam length
// by trapezoidal quadrature on the node grid (Section 4.7).
func Deflect(nodes []Node, ext loading.Loading, length, at float64) (float64, error) {
	virtual := loading.SingleSpanSingleLoads{Length: length, Loads: []loading.PointLoad{{Position: at, Value: 1}}}

	integrand := make([]float64, len(nodes))
	for i, n := range nodes {
		m := ext.Moment(n.Position)
		kappa, err := KappaAtMoment(n.Curve, m)
		if err != nil {
			return 0, fmt.Errorf("beam: node %d (x=%.4g): %w", i, n.Position, err)
		}
		integrand[i] = kappa * virtual.Moment(n.Position)
	}

	var deflection float64
	for i := 1; i < len(nodes); i++ {
		dx := nodes[i].Position - nodes[i-1].Position
		deflection += 0.5 * dx * (integrand[i] + integrand[i-1])
	}
	return deflection, nil
}
