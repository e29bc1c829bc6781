package section

import (
	"math"

	"github.com/openstructure/mkappa/internal/geometry"
)

// Result is the outcome of integrating one Section's stress over its
// depth: axial force, the first moment of stress about z=0 (which divided
// by N gives the lever arm of Section 4.3 step 5), and the strain range
// the section actually saw.
type Result struct {
	AxialForce float64 // N, positive tension (Section 4.3 sign convention)
	Moment     float64 // integral of sigma*b*z dz, i.e. N * leverArm
	StrainTop  float64
	StrainBottom float64
}

// LeverArm returns N_i's depth of application, r_i = Moment/AxialForce
// (Section 4.3 step 5). Zero when AxialForce is zero (degenerate slice).
func (r Result) LeverArm() float64 {
	if r.AxialForce == 0 {
		return 0
	}
	return r.Moment / r.AxialForce
}

// IntegrateCurvature integrates a Section's stress under curvature kappa
// and neutral axis zn: strain(z) = kappa*(z - zn) (Section 4.3). Pass
// kappa == 0 to IntegrateConstantStrain instead; this function requires
// kappa != 0.
func IntegrateCurvature(s Section, kappa, zn float64) (Result, error) {
	if kappa == 0 {
		return Result{}, errZeroCurvature
	}
	strainAt := func(z float64) float64 { return kappa * (z - zn) }

	if s.Shape.IsPoint() {
		return integratePoint(s, strainAt(s.Shape.Top())), nil
	}

	top, bottom := s.Shape.Top(), s.Shape.Bottom()
	epsTop, epsBottom := strainAt(top), strainAt(bottom)

	lo, hi := epsTop, epsBottom
	if lo > hi {
		lo, hi = hi, lo
	}
	breakStrains := s.Material.StrainsBetween(lo, hi)

	depths := make([]float64, len(breakStrains))
	for i, e := range breakStrains {
		z := e/kappa + zn
		if z < top {
			z = top
		}
		if z > bottom {
			z = bottom
		}
		depths[i] = z
	}
	sortAscending(depths)

	var result Result
	result.StrainTop = math.Min(epsTop, epsBottom)
	result.StrainBottom = math.Max(epsTop, epsBottom)

	for i := 0; i+1 < len(depths); i++ {
		z1, z2 := depths[i], depths[i+1]
		length := z2 - z1
		if length <= 0 {
			continue
		}
		e1, e2 := strainAt(z1), strainAt(z2)
		sigma1, sigma2 := s.Material.StressAt(e1), s.Material.StressAt(e2)
		b1, b2 := s.Shape.Width(z1), s.Shape.Width(z2)

		n, m := integrateLinearProduct(z1, length, sigma1, sigma2, b1, b2)
		result.AxialForce += n
		result.Moment += m
	}
	return result, nil
}

// IntegrateConstantStrain integrates a Section's stress under a uniform
// strain eps across the whole section (Section 4.3: "the constant-strain
// case, used in M-N sub-problems"). Also the kappa == 0 path.
func IntegrateConstantStrain(s Section, eps float64) Result {
	if s.Shape.IsPoint() {
		return integratePoint(s, eps)
	}
	sigma := s.Material.StressAt(eps)
	area := s.Shape.Area()
	top, bottom := s.Shape.Top(), s.Shape.Bottom()
	centroid := widthWeightedCentroid(s.Shape, top, bottom)
	n := sigma * area
	return Result{AxialForce: n, Moment: n * centroid, StrainTop: eps, StrainBottom: eps}
}

func integratePoint(s Section, eps float64) Result {
	shape := s.Shape
	c, ok := shape.(geometry.Circle)
	z := shape.Top()
	if ok {
		z = c.CentroidZ()
	}
	sigma := s.Material.StressAt(eps)
	n := sigma * shape.Area()
	return Result{AxialForce: n, Moment: n * z, StrainTop: eps, StrainBottom: eps}
}

// integrateLinearProduct returns the axial force and first moment (about
// z=0) of the product of two affine functions sigma(z) and b(z) over
// [z1, z1+length], given their values at the two endpoints (Section 4.3
// step 4: "closed-form cubic antiderivative").
func integrateLinearProduct(z1, length, sigma1, sigma2, b1, b2 float64) (n, m float64) {
	if length == 0 {
		return 0, 0
	}
	mSigma := (sigma2 - sigma1) / length
	mB := (b2 - b1) / length

	// N = integral_0^L (sigma1 + mSigma*u)(b1 + mB*u) du
	n = sigma1*b1*length +
		(sigma1*mB+b1*mSigma)*length*length/2 +
		mSigma*mB*length*length*length/3

	// integral_0^L (sigma1+mSigma u)(b1+mB u) u du
	innerMoment := sigma1*b1*length*length/2 +
		(sigma1*mB+b1*mSigma)*length*length*length/3 +
		mSigma*mB*length*length*length*length/4

	m = z1*n + innerMoment
	return n, m
}

// widthWeightedCentroid returns the depth of the centroid of a linear
// width function over [top, bottom]: for a rectangle this is the
// mid-depth; for a trapezoid it is weighted toward the wider edge.
func widthWeightedCentroid(shape geometry.Shape, top, bottom float64) float64 {
	b1 := shape.Width(top)
	b2 := shape.Width(bottom)
	if b1+b2 == 0 {
		return (top + bottom) / 2
	}
	// For b(z) = b1 + (b2-b1)*(z-top)/(bottom-top), the area centroid is
	// at top + h*(b1 + 2*b2)/(3*(b1+b2)).
	h := bottom - top
	return top + h*(b1+2*b2)/(3*(b1+b2))
}

func sortAscending(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

type integrationError string

func (e integrationError) Error() string { return string(e) }

const errZeroCurvature = integrationError("section: IntegrateCurvature requires kappa != 0; use IntegrateConstantStrain")
