package material

import "math"

// CompressionModel selects the concrete compression stress-strain family
// (Section 6, "compression_stress_strain_type").
type CompressionModel int

const (
	CompressionNonlinear CompressionModel = iota
	CompressionParabolaRectangle
	CompressionBilinear
)

// TensionModel selects the post-cracking tension behaviour (Section 6,
// "tension_stress_strain_type").
type TensionModel int

const (
	TensionDefault TensionModel = iota // drop to zero at the tensile strength
	TensionFractureEnergy             // crack-opening softening (Glossary)
)

// ConcreteConfig is the recognised construction configuration for concrete
// materials (Section 6).
type ConcreteConfig struct {
	Fcm                         float64          // mean compressive strength, MPa (required)
	Fctm                        float64          // mean tensile strength, MPa (0 => auto from Fcm)
	CompressionStressStrainType CompressionModel
	UseTension                  bool
	TensionStressStrainType     TensionModel

	// NonlinearSamplePoints, when non-zero, overrides the adaptive
	// sampling density of the Nonlinear compression model (Section 4.2).
	// Zero selects the default chord-error-bounded refinement.
	NonlinearSamplePoints int
}

// defaultFctm follows the EN1992-1-1 formula f_ctm = 0.3*(f_ck)^(2/3) for
// f_ck <= 50, approximated here directly from f_cm via f_ck = f_cm - 8, as
// used throughout the Glossary's fcm-parameterised formulas.
func defaultFctm(fcm float64) float64 {
	fck := fcm - 8
	if fck < 0 {
		fck = 0
	}
	return 0.3 * math.Pow(fck, 2.0/3.0)
}

// ecmOf returns the concrete modulus of elasticity, E_cm = 22000*(fcm/10)^0.3
// (Glossary).
func ecmOf(fcm float64) float64 {
	return 22000 * math.Pow(fcm/10, 0.3)
}

// NewConcrete builds a Concrete material (role girder or slab, chosen by
// the caller) from a ConcreteConfig, per Section 6 and the Glossary
// formulas.
func NewConcrete(name string, role Role, cfg ConcreteConfig) (Material, error) {
	if cfg.Fcm <= 0 {
		return Material{}, errInvalid("material: concrete f_cm must be positive")
	}
	fctm := cfg.Fctm
	if fctm == 0 {
		fctm = defaultFctm(cfg.Fcm)
	}

	var points []Point
	points = append(points, Point{Strain: 0, Stress: 0})

	comp, err := compressionPoints(cfg)
	if err != nil {
		return Material{}, err
	}
	points = append(points, comp...)

	if cfg.UseTension {
		tens, err := tensionPoints(cfg.Fcm, fctm, cfg.TensionStressStrainType)
		if err != nil {
			return Material{}, err
		}
		points = append(points, tens...)
	} else {
		// Section 6: a single (0, 1e-10) sentinel stands in for "no
		// tension resistance" while keeping the curve strain-monotone
		// and giving strains_between something to iterate over.
		points = append(points, Point{Strain: 1e-10, Stress: 0})
	}

	curve, err := NewCurve(points)
	if err != nil {
		return Material{}, err
	}
	return New(name, role, curve), nil
}

func errInvalid(msg string) error { return &invalidError{msg} }

type invalidError struct{ msg string }

func (e *invalidError) Error() string { return e.msg }

// compressionPoints builds the compression half of the curve (strain <= 0,
// compression negative per the sign convention of Section 4.3), for the
// selected CompressionModel.
func compressionPoints(cfg ConcreteConfig) ([]Point, error) {
	switch cfg.CompressionStressStrainType {
	case CompressionParabolaRectangle:
		return parabolaRectanglePoints(cfg.Fcm), nil
	case CompressionBilinear:
		return bilinearPoints(cfg.Fcm), nil
	case CompressionNonlinear:
		return nonlinearPoints(cfg.Fcm, cfg.NonlinearSamplePoints), nil
	default:
		return nil, errInvalid("material: unrecognised compression_stress_strain_type")
	}
}

// epsC1 is the strain at peak stress, epsilon_c1 = 0.7*fcm^0.31 (per mille),
// capped at 2.8 per mille (Glossary).
func epsC1(fcm float64) float64 {
	e := 0.7 * math.Pow(fcm, 0.31) // per mille
	if e > 2.8 {
		e = 2.8
	}
	return e / 1000
}

// epsCu1 is the ultimate compression strain, per the Glossary's closed
// form (per mille, converted to strain).
func epsCu1(fcm float64) float64 {
	e := 2.8 + 27*math.Pow((98-fcm)/100, 4) // per mille
	return e / 1000
}

// nonlinearPoints samples sigma_c = fcm*(k*eta - eta^2)/(1 + (k-2)*eta)
// (Glossary) over [0, epsilon_cu1] at negative strain (compression). The
// sampling policy refines monotonically until the chord-to-curve error is
// below 1% of fcm (Section 4.2), unless the caller pins a fixed point
// count via ConcreteConfig.NonlinearSamplePoints.
func nonlinearPoints(fcm float64, fixedPoints int) []Point {
	ec1 := epsC1(fcm)
	ecu1 := epsCu1(fcm)
	ecm := ecmOf(fcm)
	k := 1.05 * ecm * ec1 / fcm

	sigma := func(epsCompressionMagnitude float64) float64 {
		eta := epsCompressionMagnitude / ec1
		return fcm * (k*eta - eta*eta) / (1 + (k-2)*eta)
	}

	tol := 0.01 * fcm
	var strains []float64
	if fixedPoints > 1 {
		n := fixedPoints - 1
		for i := 0; i <= n; i++ {
			strains = append(strains, ecu1*float64(i)/float64(n))
		}
	} else {
		strains = refineChord(0, ecu1, sigma, tol)
	}

	pts := make([]Point, 0, len(strains))
	for _, eMag := range strains {
		pts = append(pts, Point{Strain: -eMag, Stress: -sigma(eMag)})
	}
	return pts
}

// refineChord adaptively bisects [lo, hi] until every chord's midpoint
// error against f is within tol, returning the resulting breakpoints in
// ascending order, excluding the starting lo (caller already has the
// origin at strain 0 and lo here is 0).
func refineChord(lo, hi float64, f func(float64) float64, tol float64) []float64 {
	const maxDepth = 12

	var refine func(a, b float64, depth int) []float64
	refine = func(a, b float64, depth int) []float64 {
		mid := (a + b) / 2
		chordMid := (f(a) + f(b)) / 2
		err := math.Abs(f(mid) - chordMid)
		if err <= tol || depth >= maxDepth {
			return []float64{b}
		}
		left := refine(a, mid, depth+1)
		right := refine(mid, b, depth+1)
		return append(left, right...)
	}

	return refine(lo, hi, 0)
}

// parabolaRectanglePoints builds the EN1992-style parabola-rectangle law:
// a parabola from 0 to epsilon_c2 (taken here as epsilon_c1, the model's
// peak strain) then a constant-stress plateau to epsilon_cu1.
func parabolaRectanglePoints(fcm float64) []Point {
	ec1 := epsC1(fcm)
	ecu1 := epsCu1(fcm)

	const nParabola = 10
	pts := make([]Point, 0, nParabola+1)
	for i := 1; i <= nParabola; i++ {
		eMag := ec1 * float64(i) / float64(nParabola)
		eta := eMag / ec1
		sigma := fcm * (2*eta - eta*eta)
		pts = append(pts, Point{Strain: -eMag, Stress: -sigma})
	}
	if ecu1 > ec1 {
		pts = append(pts, Point{Strain: -ecu1, Stress: -fcm})
	}
	return pts
}

// bilinearPoints builds a two-segment idealisation: linear to (epsilon_c3,
// fcm) then constant to epsilon_cu3, using the same strain bounds as the
// nonlinear model for consistency across compression families.
func bilinearPoints(fcm float64) []Point {
	ec1 := epsC1(fcm)
	ecu1 := epsCu1(fcm)
	ec3 := 0.6 * ec1 // bilinear transition strain, a fraction of epsilon_c1

	pts := []Point{
		{Strain: -ec3, Stress: -fcm},
	}
	if ecu1 > ec3 {
		pts = append(pts, Point{Strain: -ecu1, Stress: -fcm})
	}
	return pts
}

// tensionPoints builds the tension half of the curve: linear to (epsilon at
// fctm, fctm), then either a vertical drop to zero stress (TensionDefault)
// or fracture-energy softening to w_c (TensionFractureEnergy, Glossary).
func tensionPoints(fcm, fctm float64, model TensionModel) ([]Point, error) {
	ecm := ecmOf(fcm)
	ePeak := fctm / ecm

	switch model {
	case TensionDefault:
		return []Point{
			{Strain: ePeak, Stress: fctm},
			{Strain: ePeak * (1 + 1e-9), Stress: 0},
		}, nil
	case TensionFractureEnergy:
		// G_F = 73*fcm^0.18 (N/mm, Glossary); crack-opening widths are
		// converted to strain beyond ePeak so the curve stays strain-based
		// like the rest of the model.
		gF := 73 * math.Pow(fcm, 0.18)
		w1 := gF / fctm
		wc := 5 * gF / fctm

		// crack band width taken as 1 (mm) so w (mm) maps 1:1 onto an
		// additional strain beyond ePeak; this keeps the softening branch
		// strain-monotone without requiring a mesh-size parameter the
		// core does not otherwise track.
		e1 := ePeak + w1
		eC := ePeak + wc
		return []Point{
			{Strain: ePeak, Stress: fctm},
			{Strain: e1, Stress: 0.2 * fctm},
			{Strain: eC, Stress: 0},
		}, nil
	default:
		return nil, errInvalid("material: unrecognised tension_stress_strain_type")
	}
}
