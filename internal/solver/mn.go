package solver

import "github.com/openstructure/mkappa/internal/section"

// MNPoint is one (M, N, 0, epsDelta) point produced for the axial-force
// sub-problem of composite sections (Section 4.5 MomentAxialForce,
// Section 4.6 MNCurve): zero curvature, a uniform strain on each
// sub-cross-section.
type MNPoint struct {
	Moment     float64
	AxialForce float64
	StrainA    float64
	StrainB    float64
	Status     Status
	Reason     FailureReason
	Iterations int
}

// MomentAxialForce finds the uniform strain on csA producing axial force
// n, and the uniform strain on csB producing axial force -n, then sums
// their moments (Section 4.5).
func MomentAxialForce(csA, csB section.Crosssection, n float64, cfg Config) MNPoint {
	residualA := func(eps float64) float64 {
		return section.IntegrateCrosssectionConstantStrain(csA, eps).AxialForce - n
	}
	residualB := func(eps float64) float64 {
		return section.IntegrateCrosssectionConstantStrain(csB, eps).AxialForce + n
	}

	resA := SolveScalar(0, residualA, cfg)
	if resA.Status != Converged {
		return MNPoint{AxialForce: n, Status: resA.Status, Reason: resA.Reason, Iterations: resA.Iterations}
	}
	resB := SolveScalar(0, residualB, cfg)
	if resB.Status != Converged {
		return MNPoint{AxialForce: n, Status: resB.Status, Reason: resB.Reason, Iterations: resA.Iterations + resB.Iterations}
	}

	totalsA := section.IntegrateCrosssectionConstantStrain(csA, resA.X)
	totalsB := section.IntegrateCrosssectionConstantStrain(csB, resB.X)

	return MNPoint{
		Moment:     totalsA.Moment + totalsB.Moment,
		AxialForce: n,
		StrainA:    resA.X,
		StrainB:    resB.X,
		Status:     Converged,
		Iterations: resA.Iterations + resB.Iterations,
	}
}
