package curve

import (
	"math"
	"sort"

	"github.com/openstructure/mkappa/internal/section"
	"github.com/openstructure/mkappa/internal/solver"
)

// MNPoint is one (M, N, kappa=0, epsDelta) point of the M-N curve
// (Section 4.6).
type MNPoint struct {
	Moment     float64
	AxialForce float64
	StrainA    float64
	StrainB    float64
}

// MNFailedAnchor records a breakpoint-driven M-N attempt whose balancing
// solve on the other sub-cross-section failed to converge.
type MNFailedAnchor struct {
	DrivingStrain float64
	DrivenByA     bool
	Reason        solver.FailureReason
}

// MNResult is the output of MNCurve: the converged points (sorted by axial
// force for stability) and any breakpoints whose balancing solve failed.
type MNResult struct {
	Points []MNPoint
	Failed []MNFailedAnchor
}

func sectionBreakpoints(cs section.Crosssection) []float64 {
	seen := map[float64]bool{}
	var out []float64
	for _, s := range cs.Sections {
		for _, e := range s.Material.StrainsBetween(s.Material.MinStrain(), s.Material.MaxStrain()) {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	sort.Float64s(out)
	return out
}

// MNCurve walks every material breakpoint on csA, computes the constant
// strain N it produces, solves for the balancing constant strain on csB
// that produces -N, and emits an (M, N, 0, epsDelta) point; it then
// repeats with the roles of csA and csB reversed (Section 4.6).
func MNCurve(csA, csB section.Crosssection, cfg solver.Config) MNResult {
	var result MNResult

	drive := func(driving, driven section.Crosssection, drivenByA bool) {
		for _, eps := range sectionBreakpoints(driving) {
			totalsDriving := section.IntegrateCrosssectionConstantStrain(driving, eps)
			n := totalsDriving.AxialForce

			residual := func(epsOther float64) float64 {
				return section.IntegrateCrosssectionConstantStrain(driven, epsOther).AxialForce + n
			}
			res := solver.SolveScalar(0, residual, cfg)
			if res.Status != solver.Converged {
				result.Failed = append(result.Failed, MNFailedAnchor{DrivingStrain: eps, DrivenByA: drivenByA, Reason: res.Reason})
				continue
			}
			totalsDriven := section.IntegrateCrosssectionConstantStrain(driven, res.X)

			var pt MNPoint
			pt.AxialForce = n
			pt.Moment = totalsDriving.Moment + totalsDriven.Moment
			if drivenByA {
				// driving == B, driven == A: A carries the balancing -n
				pt.AxialForce = -n
				pt.StrainA = res.X
				pt.StrainB = eps
			} else {
				pt.StrainA = eps
				pt.StrainB = res.X
			}
			result.Points = append(result.Points, pt)
		}
	}

	drive(csA, csB, false)
	drive(csB, csA, true)

	sort.Slice(result.Points, func(i, j int) bool {
		if result.Points[i].AxialForce != result.Points[j].AxialForce {
			return result.Points[i].AxialForce < result.Points[j].AxialForce
		}
		return math.Abs(result.Points[i].StrainA) < math.Abs(result.Points[j].StrainA)
	})
	return result
}
