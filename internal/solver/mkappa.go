package solver

import (
	"math"

	"github.com/openstructure/mkappa/internal/boundary"
	"github.com/openstructure/mkappa/internal/material"
	"github.com/openstructure/mkappa/internal/section"
)

// Point is one converged (or failed) M-kappa solve: the moment, curvature,
// the anchor that produced it, the resulting axial force (which should sit
// within tolerance of the target) and neutral-axis depth (Section 3:
// "MKappaCurvePoint").
type Point struct {
	Moment      float64
	Kappa       float64
	Anchor      boundary.StrainPosition
	AxialForce  float64
	NeutralAxis float64
	Status      Status
	Reason      FailureReason
	Iterations  int
}

// MKappaByStrainPosition finds the neutral axis zn such that
// sum(N_i(kappa(zn), zn)) == nApplied, where kappa(zn) = anchor.Strain /
// (anchor.Depth - zn) (Section 4.5). nApplied is typically 0 (pure
// bending).
func MKappaByStrainPosition(cs section.Crosssection, anchor boundary.StrainPosition, nApplied float64, cfg Config) Point {
	top, bottom := cs.Extent()
	mid := (top + bottom) / 2

	zn0 := mid
	if zn0 == anchor.Depth {
		zn0 += (bottom - top) * 1e-3
		if zn0 == anchor.Depth {
			zn0 += 1e-6
		}
	}

	// Seed and clamp the Newton iteration with the admissible neutral-axis
	// range for the curvature implied by the initial guess (Section 4.4:
	// "these bounds seed the Newton iteration and clamp its excursions").
	// The bound is computed once, from zn0's curvature, since the true
	// curvature isn't known until zn converges.
	lowZn, highZn := math.Inf(-1), math.Inf(1)
	haveBounds := false
	if kappaGuess := anchor.Strain / (anchor.Depth - zn0); kappaGuess != 0 && !math.IsNaN(kappaGuess) && !math.IsInf(kappaGuess, 0) {
		if lo, hi, err := boundary.NeutralAxisBounds(cs, kappaGuess); err == nil {
			lowZn, highZn = lo, hi
			haveBounds = true
			switch {
			case zn0 < lowZn:
				zn0 = lowZn
			case zn0 > highZn:
				zn0 = highZn
			}
		}
	}

	residual := func(zn float64) float64 {
		if haveBounds {
			switch {
			case zn < lowZn:
				zn = lowZn
			case zn > highZn:
				zn = highZn
			}
		}
		if zn == anchor.Depth {
			zn += 1e-9
		}
		kappa := anchor.Strain / (anchor.Depth - zn)
		if kappa == 0 || math.IsNaN(kappa) || math.IsInf(kappa, 0) {
			return math.NaN()
		}
		totals, err := section.IntegrateCrosssection(cs, kappa, zn)
		if err != nil {
			return math.NaN()
		}
		return totals.AxialForce - nApplied
	}

	result := SolveScalar(zn0, residual, cfg)
	zn := result.X
	if haveBounds {
		switch {
		case zn < lowZn:
			zn = lowZn
		case zn > highZn:
			zn = highZn
		}
	}
	kappa := anchor.Strain / (anchor.Depth - zn)

	point := Point{
		Anchor:      anchor,
		NeutralAxis: zn,
		Kappa:       kappa,
		AxialForce:  result.Residual + nApplied,
		Status:      result.Status,
		Reason:      result.Reason,
		Iterations:  result.Iterations,
	}
	if result.Status == Converged {
		totals, err := section.IntegrateCrosssection(cs, kappa, zn)
		if err != nil {
			point.Status = Failed
			point.Reason = ReasonStrainOutOfRange
			return point
		}
		point.Moment = totals.Moment
		point.AxialForce = totals.AxialForce
	}
	return point
}

// MKappaByConstantCurvature finds the strain eps0 at anchorDepth such that
// sum(N_i) == nApplied for the given fixed curvature kappa (Section 4.5).
// kappa must be non-zero.
func MKappaByConstantCurvature(cs section.Crosssection, kappa, anchorDepth, nApplied float64, mat material.Material, cfg Config) Point {
	residual := func(eps0 float64) float64 {
		zn := anchorDepth - eps0/kappa
		totals, err := section.IntegrateCrosssection(cs, kappa, zn)
		if err != nil {
			return math.NaN()
		}
		return totals.AxialForce - nApplied
	}

	result := SolveScalar(0, residual, cfg)
	eps0 := result.X
	zn := anchorDepth - eps0/kappa

	point := Point{
		Anchor:      boundary.StrainPosition{Strain: eps0, Depth: anchorDepth, Material: mat},
		NeutralAxis: zn,
		Kappa:       kappa,
		AxialForce:  result.Residual + nApplied,
		Status:      result.Status,
		Reason:      result.Reason,
		Iterations:  result.Iterations,
	}
	if result.Status == Converged {
		totals, err := section.IntegrateCrosssection(cs, kappa, zn)
		if err != nil {
			point.Status = Failed
			point.Reason = ReasonStrainOutOfRange
			return point
		}
		point.Moment = totals.Moment
		point.AxialForce = totals.AxialForce
	}
	return point
}
