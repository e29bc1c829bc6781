package beam

import (
	"math"
	"testing"

	"github.com/openstructure/mkappa/internal/connector"
	"github.com/openstructure/mkappa/internal/curve"
	"github.com/openstructure/mkappa/internal/geometry"
	"github.com/openstructure/mkappa/internal/loading"
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

func rectangularSteelBeam(t *testing.T) section.Crosssection {
	t.Helper()
	rect, err := geometry.NewRectangle(0, 300, 200)
	if err != nil {
		t.Fatalf("NewRectangle: %v", err)
	}
	steel, err := material.NewSteel("S355", material.SteelConfig{Fy: 355, Fu: 400, FailureStrain: 0.15})
	if err != nil {
		t.Fatalf("NewSteel: %v", err)
	}
	cs, err := section.NewCrosssection(section.New(rect, steel))
	if err != nil {
		t.Fatalf("NewCrosssection: %v", err)
	}
	return cs
}

func TestEffectiveWidthRampsUpFromSupports(t *testing.T) {
	closeTo(t, "at support", EffectiveWidth(0, 10, 1000), 0, 1e-9)
	closeTo(t, "at quarter span", EffectiveWidth(2.5, 10, 1000), 1000, 1e-9)
	closeTo(t, "at midspan", EffectiveWidth(5, 10, 1000), 1000, 1e-9)
	closeTo(t, "halfway to taper", EffectiveWidth(1.25, 10, 1000), 500, 1e-6)
}

func TestDiscretizeProducesExpectedNodeCount(t *testing.T) {
	b := Beam{Crosssection: rectangularSteelBeam(t), Length: 6, Elements: 4}
	nodes, err := b.Discretize(curve.MKappaOptions{})
	if err != nil {
		t.Fatalf("Discretize: %v", err)
	}
	if len(nodes) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(nodes))
	}
	closeTo(t, "first position", nodes[0].Position, 0, 1e-9)
	closeTo(t, "last position", nodes[len(nodes)-1].Position, 6, 1e-9)
	if nodes[0].BendingWidth != 0 {
		t.Fatalf("expected zero effective width at the support, got %v", nodes[0].BendingWidth)
	}
	if len(nodes[2].Curve.Positive) == 0 {
		t.Fatalf("expected a non-empty M-kappa curve at midspan")
	}
}

func TestKappaAtMomentInterpolatesMergedBranch(t *testing.T) {
	c := curve.MKappaCurvePoints{
		Negative: []solver.Point{{Kappa: -2, Moment: -200}, {Kappa: -1, Moment: -100}},
		Positive: []solver.Point{{Kappa: 1, Moment: 100}, {Kappa: 2, Moment: 200}},
	}
	k, err := KappaAtMoment(c, 50)
	if err != nil {
		t.Fatalf("KappaAtMoment: %v", err)
	}
	closeTo(t, "kappa", k, 0.5, 1e-9)
}

func TestKappaAtMomentRejectsOutOfRange(t *testing.T) {
	c := curve.MKappaCurvePoints{Positive: []solver.Point{{Kappa: 1, Moment: 100}}}
	if _, err := KappaAtMoment(c, 500); err == nil {
		t.Fatalf("expected an out-of-range error")
	}
}

func TestDeflectMidspanPositiveUnderSaggingMoment(t *testing.T) {
	cs := rectangularSteelBeam(t)
	b := Beam{Crosssection: cs, Length: 6, Elements: 8}
	nodes, err := b.Discretize(curve.MKappaOptions{})
	if err != nil {
		t.Fatalf("Discretize: %v", err)
	}

	ext := loading.SingleSpanUniformLoad{Length: 6, Load: 0.05}
	d, err := Deflect(nodes, ext, 6, 3)
	if err != nil {
		t.Fatalf("Deflect: %v", err)
	}
	if d <= 0 {
		t.Fatalf("expected positive midspan deflection under sagging load, got %v", d)
	}
}

func TestSolveSlipTerminatesWithOneSlipPerNode(t *testing.T) {
	csA := rectangularSteelBeam(t)
	rectB, _ := geometry.NewRectangle(0, 150, 400)
	concrete, err := material.NewConcrete("C30", material.RoleSlab, material.ConcreteConfig{Fcm: 38})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	csB, err := section.NewCrosssection(section.New(rectB, concrete))
	if err != nil {
		t.Fatalf("NewCrosssection: %v", err)
	}

	mn := curve.MNKappaCurve(csA, csB, solver.Config{})
	if len(mn.Points) == 0 {
		t.Skip("no converged M-N-kappa points for this fixture; nothing to interpolate against")
	}

	b := Beam{Crosssection: csA, Length: 6, Elements: 4}
	nodes, err := b.Discretize(curve.MKappaOptions{})
	if err != nil {
		t.Fatalf("Discretize: %v", err)
	}

	surfaces := make([]curve.MNKappaResult, len(nodes))
	connectors := make([]connector.HeadedStud, len(nodes))
	for i := range nodes {
		surfaces[i] = mn
		connectors[i] = connector.HeadedStud{D: 19, HSC: 100, Fu: 450, Fc: 30, Ecm: 33000}
	}

	ext := func(x float64) float64 {
		return loading.SingleSpanUniformLoad{Length: 6, Load: 0.02}.Moment(x)
	}

	res := SolveSlip(nodes, surfaces, connectors, ext, SlipConfig{X0: 3, MaxIterations: 30})
	if res.Status != solver.Converged && res.Status != solver.Failed {
		t.Fatalf("unexpected status %v", res.Status)
	}
	if len(res.Slip) != len(nodes) {
		t.Fatalf("expected one slip value per node, got %d", len(res.Slip))
	}
}
