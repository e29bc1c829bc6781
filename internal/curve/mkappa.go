// Package curve implements the curve generators of Section 4.6: the full
// M-kappa curve, the M-N curve of a composite joint, and their combination
// into the M-N-kappa-epsDelta interior surface.
package curve

import (
	"math"
	"sort"

	"github.com/openstructure/mkappa/internal/boundary"
	"github.com/openstructure/mkappa/internal/section"
	"github.com/openstructure/mkappa/internal/solver"
)

// FailedAnchor records an anchor whose equilibrium solve did not converge,
// retained alongside the successful points of a curve (Section 4.6,
// Section 7: "the curve generator continues with remaining anchors").
type FailedAnchor struct {
	Anchor boundary.StrainPosition
	Reason solver.FailureReason
}

// MKappaCurvePoints is the ordered M-kappa curve of Section 3: a positive
// and a negative branch, each strictly monotone in kappa, plus any failed
// anchors reported separately.
type MKappaCurvePoints struct {
	Positive []solver.Point // ascending kappa > 0
	Negative []solver.Point // ascending kappa < 0
	Failed   []FailedAnchor
}

// MKappaOptions controls which branches are generated (Section 4.6:
// "Two branches: positive and negative curvature, enabled independently")
// and the dedup tolerance on kappa.
type MKappaOptions struct {
	Positive bool
	Negative bool
	// KappaDedupTolerance merges points whose kappa differ by less than
	// this (relative) fraction; 0 selects a sane default.
	KappaDedupTolerance float64
	Solver              solver.Config
}

func (o MKappaOptions) resolve() MKappaOptions {
	if !o.Positive && !o.Negative {
		o.Positive = true
		o.Negative = true
	}
	if o.KappaDedupTolerance <= 0 {
		o.KappaDedupTolerance = 1e-9
	}
	return o
}

// anchorCandidates enumerates every (depth, breakpoint-strain, material)
// anchor across a cross-section's sections (Section 4.6: "iterate over all
// material breakpoints").
func anchorCandidates(cs section.Crosssection) []boundary.StrainPosition {
	var out []boundary.StrainPosition
	for _, s := range cs.Sections {
		depths := []float64{s.Shape.Top(), s.Shape.Bottom()}
		if s.Shape.IsPoint() {
			depths = []float64{s.Shape.Top()}
		}
		breaks := s.Material.StrainsBetween(s.Material.MinStrain(), s.Material.MaxStrain())
		for _, d := range depths {
			for _, e := range breaks {
				if e == 0 {
					continue // strain=0 anchors produce kappa=0 or are degenerate
				}
				out = append(out, boundary.StrainPosition{Strain: e, Depth: d, Material: s.Material})
			}
		}
	}
	return out
}

// MKappaCurve computes the failure curvature kappa_fail (Section 4.6: "the
// maximum admissible curvature such that at least one section is at its
// strain limit") anchored at the cross-section's top edge with zero strain,
// via boundary.MaxCurvature, then enumerates every material breakpoint as
// an anchor, solves MKappaByStrainPosition for each anchor whose own
// implied curvature (about that same reference fibre) falls within the
// kappa_fail envelope, deduplicates coincident kappa values, and sorts each
// branch ascending (Section 4.6).
func MKappaCurve(cs section.Crosssection, opts MKappaOptions) MKappaCurvePoints {
	opts = opts.resolve()

	top, _ := cs.Extent()
	kappaFailPos, kappaFailNeg, haveFailBound := math.Inf(1), math.Inf(-1), false
	if pos, neg, err := boundary.MaxCurvature(cs, top, 0); err == nil {
		kappaFailPos, kappaFailNeg, haveFailBound = pos, neg, true
	}

	var result MKappaCurvePoints
	for _, anchor := range anchorCandidates(cs) {
		if haveFailBound {
			if dz := anchor.Depth - top; dz != 0 {
				kappaAnchor := anchor.Strain / dz
				if kappaAnchor > 0 && kappaAnchor > kappaFailPos {
					continue
				}
				if kappaAnchor < 0 && kappaAnchor < kappaFailNeg {
					continue
				}
			}
		}
		pt := solver.MKappaByStrainPosition(cs, anchor, 0, opts.Solver)
		if pt.Status != solver.Converged {
			result.Failed = append(result.Failed, FailedAnchor{Anchor: anchor, Reason: pt.Reason})
			continue
		}
		switch {
		case pt.Kappa > 0 && opts.Positive:
			result.Positive = append(result.Positive, pt)
		case pt.Kappa < 0 && opts.Negative:
			result.Negative = append(result.Negative, pt)
		}
	}

	result.Positive = dedupSortPoints(result.Positive, opts.KappaDedupTolerance)
	result.Negative = dedupSortPoints(result.Negative, opts.KappaDedupTolerance)
	return result
}

func dedupSortPoints(pts []solver.Point, tol float64) []solver.Point {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Kappa < pts[j].Kappa })
	out := pts[:0:0]
	for _, p := range pts {
		if len(out) > 0 {
			last := out[len(out)-1]
			denom := math.Max(math.Abs(last.Kappa), 1e-12)
			if math.Abs(p.Kappa-last.Kappa)/denom < tol {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
