package material

import (
	"math"
	"testing"
)

func closeTo(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if got < want-tol || got > want+tol {
		t.Errorf("%s = %.8g, want %.8g (tol %.2g)", name, got, want, tol)
	}
}

func TestCurveRequiresOrigin(t *testing.T) {
	_, err := NewCurve([]Point{{Strain: -1, Stress: -10}, {Strain: 1, Stress: 10}})
	if err == nil {
		t.Fatal("expected error for curve missing origin")
	}
}

func TestCurveStressAtInterpolates(t *testing.T) {
	c, err := NewCurve([]Point{
		{Strain: -0.002, Stress: -400},
		{Strain: 0, Stress: 0},
		{Strain: 0.002, Stress: 400},
	})
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	closeTo(t, "StressAt(0.001)", c.StressAt(0.001), 200, 1e-6)
	closeTo(t, "StressAt(-0.001)", c.StressAt(-0.001), -200, 1e-6)
	closeTo(t, "StressAt(beyond max)", c.StressAt(1), 0, 1e-9)
	closeTo(t, "StressAt(beyond min)", c.StressAt(-1), 0, 1e-9)
}

func TestCurveStrainsBetweenIncludesEndpoints(t *testing.T) {
	c, _ := NewCurve([]Point{
		{Strain: -0.002, Stress: -400},
		{Strain: 0, Stress: 0},
		{Strain: 0.001, Stress: 200},
		{Strain: 0.002, Stress: 400},
	})
	got := c.StrainsBetween(-0.0015, 0.0015)
	want := []float64{-0.0015, 0, 0.001, 0.0015}
	if len(got) != len(want) {
		t.Fatalf("StrainsBetween returned %v, want %v", got, want)
	}
	for i := range want {
		closeTo(t, "breakpoint", got[i], want[i], 1e-12)
	}
}

func TestNewSteelElasticPlastic(t *testing.T) {
	m, err := NewSteel("S355", SteelConfig{Fy: 355, Fu: 400, FailureStrain: 0.15})
	if err != nil {
		t.Fatalf("NewSteel: %v", err)
	}
	epsY := 355.0 / defaultSteelE
	closeTo(t, "StressAt(epsY)", m.StressAt(epsY), 355, 1e-6)
	closeTo(t, "StressAt(epsY/2)", m.StressAt(epsY/2), 177.5, 1e-6)
	closeTo(t, "StressAt(failureStrain)", m.StressAt(0.15), 400, 1e-6)
	closeTo(t, "oddSymmetry", m.StressAt(-epsY/2), -177.5, 1e-6)
}

func TestNewSteelRejectsNonPositiveFy(t *testing.T) {
	if _, err := NewSteel("bad", SteelConfig{Fy: 0}); err == nil {
		t.Fatal("expected error for fy <= 0")
	}
}

func TestNewConcreteNonlinearMonotoneCompression(t *testing.T) {
	m, err := NewConcrete("C30/35", RoleGirder, ConcreteConfig{
		Fcm:                          38,
		CompressionStressStrainType:  CompressionNonlinear,
		UseTension:                   false,
	})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	// Sign convention: compression strains/stresses are negative.
	if m.StressAt(-0.001) >= 0 {
		t.Fatalf("compression stress must be negative, got %v", m.StressAt(-0.001))
	}
	// Stress magnitude should rise monotonically on the way to the peak.
	if math.Abs(m.StressAt(-0.001)) <= math.Abs(m.StressAt(-0.0005)) {
		t.Fatalf("expected increasing compressive stress magnitude with strain")
	}
}

func TestNewConcreteNoTensionIsSentinel(t *testing.T) {
	m, err := NewConcrete("C30/35", RoleGirder, ConcreteConfig{
		Fcm:                         38,
		CompressionStressStrainType: CompressionParabolaRectangle,
		UseTension:                  false,
	})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	closeTo(t, "tension stress", m.StressAt(0.0005), 0, 1e-9)
}

func TestNewConcreteFractureEnergyTensionSoftens(t *testing.T) {
	m, err := NewConcrete("C30/35", RoleSlab, ConcreteConfig{
		Fcm:                         38,
		CompressionStressStrainType: CompressionBilinear,
		UseTension:                  true,
		TensionStressStrainType:     TensionFractureEnergy,
	})
	if err != nil {
		t.Fatalf("NewConcrete: %v", err)
	}
	if m.MaxStrain() <= 0 {
		t.Fatalf("expected a positive tension failure strain, got %v", m.MaxStrain())
	}
	if m.StressAt(m.MaxStrain()) != 0 {
		t.Fatalf("stress at the crack-opening limit should be zero, got %v", m.StressAt(m.MaxStrain()))
	}
}
