package beam

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/openstructure/mkappa/internal/connector"
	"github.com/openstructure/mkappa/internal/curve"
	"github.com/openstructure/mkappa/internal/solver"
)

// SlipConfig controls the damped Gauss-Newton (Levenberg-Marquardt)
// iteration of Section 4.7.
type SlipConfig struct {
	// X0 is the position of the slip-zero crossing: cumulative axial force
	// is built up from this point outward in both directions.
	X0 float64
	// MaxIterations caps the outer LM iterations.
	MaxIterations int
	// Tolerance bounds both the infinity-norm residual and the step norm.
	Tolerance float64
	// Lambda0 is the initial Levenberg damping factor.
	Lambda0 float64
}

func (c SlipConfig) resolve() SlipConfig {
	if c.MaxIterations <= 0 {
		c.MaxIterations = 50
	}
	if c.Tolerance <= 0 {
		c.Tolerance = 1e-3
	}
	if c.Lambda0 <= 0 {
		c.Lambda0 = 1e-2
	}
	return c
}

// SlipResult is the converged (or failed) nodal slip distribution.
type SlipResult struct {
	Slip       []float64
	Status     solver.Status
	Reason     solver.FailureReason
	Iterations int
}

// lookupMoment evaluates the resisting moment surface of Section 4.7 ("look
// up M_R,i = surface_i(N_i, epsDelta_i)") at (n, epsDelta) by inverse-
// distance weighting over the surface's point cloud. The surface generated
// by MNKappaCurve is an unstructured set of points rather than a regular
// grid, so plain bilinear interpolation does not apply directly; weighting
// by normalized distance is the closest equivalent that degrades gracefully
// as points thin out near the edges of the surface.
func lookupMoment(surface curve.MNKappaResult, n, epsDelta float64) float64 {
	if len(surface.Points) == 0 {
		return 0
	}
	var nMin, nMax, eMin, eMax float64
	nMin, nMax = surface.Points[0].AxialForce, surface.Points[0].AxialForce
	eMin, eMax = surface.Points[0].StrainDelta, surface.Points[0].StrainDelta
	for _, p := range surface.Points {
		nMin, nMax = math.Min(nMin, p.AxialForce), math.Max(nMax, p.AxialForce)
		eMin, eMax = math.Min(eMin, p.StrainDelta), math.Max(eMax, p.StrainDelta)
	}
	nScale := math.Max(nMax-nMin, 1e-9)
	eScale := math.Max(eMax-eMin, 1e-9)

	var weightSum, momentSum float64
	for _, p := range surface.Points {
		dn := (p.AxialForce - n) / nScale
		de := (p.StrainDelta - epsDelta) / eScale
		dist2 := dn*dn + de*de
		if dist2 < 1e-12 {
			return p.Moment
		}
		w := 1 / dist2
		weightSum += w
		momentSum += w * p.Moment
	}
	return momentSum / weightSum
}

// SolveSlip iterates the nodal slip distribution s until the resisting
// moment surface matches the externally applied moment at every node
// (Section 4.7). nodes, surfaces, and connectors are index-aligned: one
// M-N-kappa-epsDelta surface and one representative shear connector per
// node.
func SolveSlip(nodes []Node, surfaces []curve.MNKappaResult, connectors []connector.HeadedStud, extMoment func(x float64) float64, cfg SlipConfig) SlipResult {
	cfg = cfg.resolve()
	n := len(nodes)

	x0Index := 0
	for i, nd := range nodes {
		if math.Abs(nd.Position-cfg.X0) < math.Abs(nodes[x0Index].Position-cfg.X0) {
			x0Index = i
		}
	}

	axialForces := func(s []float64) []float64 {
		N := make([]float64, n)
		var cum float64
		for i := x0Index + 1; i < n; i++ {
			cum += connectors[i].Load(s[i])
			N[i] = cum
		}
		cum = 0
		for i := x0Index - 1; i >= 0; i-- {
			cum -= connectors[i].Load(s[i])
			N[i] = cum
		}
		return N
	}

	residual := func(f, s []float64) {
		N := axialForces(s)
		for i, nd := range nodes {
			var epsDelta float64
			if dx := nd.Position - cfg.X0; dx != 0 {
				epsDelta = s[i] / dx
			}
			mr := lookupMoment(surfaces[i], N[i], epsDelta)
			f[i] = mr - extMoment(nd.Position)
		}
	}

	s := make([]float64, n)
	f := make([]float64, n)
	residual(f, s)
	lambda := cfg.Lambda0

	jac := mat.NewDense(n, n, nil)
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		fd.Jacobian(jac, residual, s, nil)

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		jtf := mat.NewVecDense(n, nil)
		jtf.MulVec(jac.T(), mat.NewVecDense(n, f))

		var damped mat.Dense
		damped.CloneFrom(&jtj)
		for i := 0; i < n; i++ {
			damped.Set(i, i, damped.At(i, i)*(1+lambda))
		}

		var qr mat.QR
		qr.Factorize(&damped)
		delta := mat.NewVecDense(n, nil)
		if err := qr.SolveVecTo(delta, false, jtf); err != nil {
			return SlipResult{Slip: s, Status: solver.Failed, Reason: solver.ReasonDegenerateDerivative, Iterations: iter}
		}

		trial := make([]float64, n)
		for i := range trial {
			trial[i] = s[i] - delta.AtVec(i)
		}
		fTrial := make([]float64, n)
		residual(fTrial, trial)

		if floats.Norm(fTrial, 2) < floats.Norm(f, 2) {
			s = trial
			f = fTrial
			lambda = math.Max(lambda*0.5, 1e-8)
		} else {
			lambda *= 2
			continue
		}

		if floats.Norm(f, math.Inf(1)) < cfg.Tolerance && floats.Norm(delta.RawVector().Data, 2) < cfg.Tolerance {
			return SlipResult{Slip: s, Status: solver.Converged, Iterations: iter + 1}
		}
	}
	return SlipResult{Slip: s, Status: solver.Failed, Reason: solver.ReasonMaxIterations, Iterations: cfg.MaxIterations}
}
