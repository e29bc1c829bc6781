package curve

import (
	"math"

	"github.com/openstructure/mkappa/internal/boundary"
	"github.com/openstructure/mkappa/internal/section"
	"github.com/openstructure/mkappa/internal/solver"
)

// MNKappaPoint is one (M, N, kappa, epsDelta) point of the interior
// surface, carrying the strain-position anchor that produced each
// sub-cross-section's contribution (Section 3: "MNKappaCurvePoint").
type MNKappaPoint struct {
	Moment      float64
	AxialForce  float64
	Kappa       float64
	StrainDelta float64
	PositionA   boundary.StrainPosition
	PositionB   boundary.StrainPosition
}

// MNKappaResult is the interior M-N-kappa-epsDelta surface of Section 4.6.
type MNKappaResult struct {
	Points []MNKappaPoint
	Failed []FailedAnchor
}

// jointDepth returns the shared interface depth between two
// sub-cross-sections: the boundary at which one's bottom coincides (or
// nearly so) with the other's top. Falls back to the midpoint between the
// two extents when the sub-cross-sections do not abut directly.
func jointDepth(csA, csB section.Crosssection) float64 {
	topA, bottomA := csA.Extent()
	topB, bottomB := csB.Extent()
	switch {
	case math.Abs(bottomA-topB) < 1e-6:
		return bottomA
	case math.Abs(bottomB-topA) < 1e-6:
		return bottomB
	default:
		return (math.Min(bottomA, bottomB) + math.Max(topA, topB)) / 2
	}
}

// mkappaUnderAxialForce repeats the MKappaByStrainPosition procedure for
// every material breakpoint anchor on cs, holding the applied axial force
// fixed at n (Section 4.6 MNKappaCurve: "repeat the MKappa procedure on
// each sub-cross-section under that N").
func mkappaUnderAxialForce(cs section.Crosssection, n float64, cfg solver.Config) ([]solver.Point, []FailedAnchor) {
	var ok []solver.Point
	var failed []FailedAnchor
	for _, anchor := range anchorCandidates(cs) {
		pt := solver.MKappaByStrainPosition(cs, anchor, n, cfg)
		if pt.Status != solver.Converged {
			failed = append(failed, FailedAnchor{Anchor: anchor, Reason: pt.Reason})
			continue
		}
		ok = append(ok, pt)
	}
	ok = dedupSortPoints(ok, 1e-9)
	return ok, failed
}

// MNKappaCurve fills the interior between the M-N and M-kappa edges: for
// every axial-force level produced by MNCurve, it repeats the MKappa
// procedure on each sub-cross-section at that force level and pairs the
// resulting points index-wise (both lists are sorted ascending by
// curvature by construction), recording the strain difference at the
// joint interface as epsDelta (Glossary: "the jump in axial strain across
// a composite joint") (Section 4.6).
func MNKappaCurve(csA, csB section.Crosssection, cfg solver.Config) MNKappaResult {
	mn := MNCurve(csA, csB, cfg)
	zJoint := jointDepth(csA, csB)

	var result MNKappaResult
	for _, mnPt := range mn.Points {
		ptsA, failedA := mkappaUnderAxialForce(csA, mnPt.AxialForce, cfg)
		ptsB, failedB := mkappaUnderAxialForce(csB, -mnPt.AxialForce, cfg)
		result.Failed = append(result.Failed, failedA...)
		result.Failed = append(result.Failed, failedB...)

		n := len(ptsA)
		if len(ptsB) < n {
			n = len(ptsB)
		}
		for i := 0; i < n; i++ {
			a, b := ptsA[i], ptsB[i]
			strainAtJointA := a.Kappa * (zJoint - a.NeutralAxis)
			strainAtJointB := b.Kappa * (zJoint - b.NeutralAxis)
			result.Points = append(result.Points, MNKappaPoint{
				Moment:      a.Moment + b.Moment,
				AxialForce:  mnPt.AxialForce,
				Kappa:       a.Kappa,
				StrainDelta: strainAtJointA - strainAtJointB,
				PositionA:   a.Anchor,
				PositionB:   b.Anchor,
			})
		}
	}
	return result
}
