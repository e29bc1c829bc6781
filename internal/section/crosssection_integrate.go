package section

// Totals aggregates the axial force and moment of every Section in a
// Crosssection for one strain state.
type Totals struct {
	AxialForce float64
	Moment     float64
}

// IntegrateCrosssection sums IntegrateCurvature over every section of cs
// for curvature kappa and neutral axis zn. kappa must be non-zero; callers
// evaluating kappa == 0 should call IntegrateCrosssectionConstantStrain
// with the strain at the anchor instead (Section 4.3 edge case).
func IntegrateCrosssection(cs Crosssection, kappa, zn float64) (Totals, error) {
	var t Totals
	for _, s := range cs.Sections {
		r, err := IntegrateCurvature(s, kappa, zn)
		if err != nil {
			return Totals{}, err
		}
		t.AxialForce += r.AxialForce
		t.Moment += r.Moment
	}
	return t, nil
}

// IntegrateCrosssectionConstantStrain sums IntegrateConstantStrain over
// every section of cs for a single uniform strain eps, used by the M-N
// sub-problems (Section 4.6 MNCurve) and the kappa == 0 path.
func IntegrateCrosssectionConstantStrain(cs Crosssection, eps float64) Totals {
	var t Totals
	for _, s := range cs.Sections {
		r := IntegrateConstantStrain(s, eps)
		t.AxialForce += r.AxialForce
		t.Moment += r.Moment
	}
	return t
}
