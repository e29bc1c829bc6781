package curve

import (
	"math"
	"testing"

	"github.com/openstructure/mkappa/internal/geometry"
	"github.com/openstructure/mkappa/internal/material"
	"github.com/openstructure/mkappa/internal/section"
	"github.com/openstructure/mkappa/internal/solver"
)

func closeTo(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.8g, want %.8g (tol %.2g)", name, got, want, tol)
	}
}

func symmetricIBeam(t *testing.T) section.Crosssection {
	t.Helper()
	topFlange, err := geometry.NewRectangle(0, 15, 200)
	if err != nil {
		t.Fatalf("top flange: %v", err)
	}
	web, err := geometry.NewRectangle(15, 185, 9.5)
	if err != nil {
		t.Fatalf("web: %v", err)
	}
	botFlange, err := geometry.NewRectangle(185, 200, 200)
	if err != nil {
		t.Fatalf("bottom flange: %v", err)
	}
	steel, err := material.NewSteel("S355", material.SteelConfig{Fy: 355, Fu: 400, FailureStrain: 0.15})
	if err != nil {
		t.Fatalf("NewSteel: %v", err)
	}
	cs, err := section.NewCrosssection(
		section.New(topFlange, steel),
		section.New(web, steel),
		section.New(botFlange, steel),
	)
	if err != nil {
		t.Fatalf("NewCrosssection: %v", err)
	}
	return cs
}

func TestMKappaCurveProducesBothBranchesMonotone(t *testing.T) {
	cs := symmetricIBeam(t)
	result := MKappaCurve(cs, MKappaOptions{})

	if len(result.Positive) == 0 || len(result.Negative) == 0 {
		t.Fatalf("expected both branches non-empty, got %d positive, %d negative", len(result.Positive), len(result.Negative))
	}
	for i := 1; i < len(result.Positive); i++ {
		if result.Positive[i].Kappa <= result.Positive[i-1].Kappa {
			t.Fatalf("positive branch not strictly increasing at %d: %v <= %v", i, result.Positive[i].Kappa, result.Positive[i-1].Kappa)
		}
	}
	for i := 1; i < len(result.Negative); i++ {
		if result.Negative[i].Kappa <= result.Negative[i-1].Kappa {
			t.Fatalf("negative branch not strictly increasing at %d: %v <= %v", i, result.Negative[i].Kappa, result.Negative[i-1].Kappa)
		}
	}
	// A symmetric I-section under pure bending should have a near-symmetric
	// moment capacity between the two branches.
	closeTo(t, "|M+| vs |M-|", math.Abs(result.Positive[len(result.Positive)-1].Moment), math.Abs(result.Negative[0].Moment), 1e4)
}

func TestMKappaCurveOptionsRestrictBranch(t *testing.T) {
	cs := symmetricIBeam(t)
	result := MKappaCurve(cs, MKappaOptions{Positive: true})
	if len(result.Positive) == 0 {
		t.Fatalf("expected positive branch")
	}
	if len(result.Negative) != 0 {
		t.Fatalf("expected negative branch suppressed, got %d points", len(result.Negative))
	}
}

func TestMNCurveBalancesAxialForceAcrossSubSections(t *testing.T) {
	rectA, _ := geometry.NewRectangle(0, 100, 300)
	rectB, _ := geometry.NewRectangle(0, 100, 300)
	steel, err := material.NewSteel("S355", material.SteelConfig{Fy: 355, Fu: 400, FailureStrain: 0.15})
	if err != nil {
		t.Fatalf("NewSteel: %v", err)
	}
	csA, _ := section.NewCrosssection(section.New(rectA, steel))
	csB, _ := section.NewCrosssection(section.New(rectB, steel))

	result := MNCurve(csA, csB, solver.Config{})
	if len(result.Points) == 0 {
		t.Fatalf("expected at least one converged M-N point, failed=%d", len(result.Failed))
	}
	for _, pt := range result.Points {
		totalsA := section.IntegrateCrosssectionConstantStrain(csA, pt.StrainA)
		totalsB := section.IntegrateCrosssectionConstantStrain(csB, pt.StrainB)
		closeTo(t, "N balance", totalsA.AxialForce+totalsB.AxialForce, 0, 10)
		closeTo(t, "reported N", pt.AxialForce, totalsA.AxialForce, 10)
	}
}

func TestMNKappaCurveFillsInteriorBetweenEdges(t *testing.T) {
	rectA, _ := geometry.NewRectangle(0, 100, 300)
	rectB, _ := geometry.NewRectangle(100, 200, 300)
	steel, err := material.NewSteel("S355", material.SteelConfig{Fy: 355, Fu: 400, FailureStrain: 0.15})
	if err != nil {
		t.Fatalf("NewSteel: %v", err)
	}
	csA, _ := section.NewCrosssection(section.New(rectA, steel))
	csB, _ := section.NewCrosssection(section.New(rectB, steel))

	result := MNKappaCurve(csA, csB, solver.Config{})
	if len(result.Points) == 0 {
		t.Fatalf("expected at least one interior point, failed=%d", len(result.Failed))
	}
	for _, pt := range result.Points {
		if math.IsNaN(pt.Moment) || math.IsInf(pt.Moment, 0) {
			t.Fatalf("non-finite moment in interior point: %+v", pt)
		}
		if pt.Kappa == 0 {
			t.Fatalf("expected non-zero curvature in interior point: %+v", pt)
		}
	}
}

func TestJointDepthFindsSharedBoundary(t *testing.T) {
	rectA, _ := geometry.NewRectangle(0, 100, 300)
	rectB, _ := geometry.NewRectangle(100, 200, 300)
	steel, _ := material.NewSteel("S355", material.SteelConfig{Fy: 355, Fu: 400, FailureStrain: 0.15})
	csA, _ := section.NewCrosssection(section.New(rectA, steel))
	csB, _ := section.NewCrosssection(section.New(rectB, steel))

	closeTo(t, "jointDepth", jointDepth(csA, csB), 100, 1e-9)
}
