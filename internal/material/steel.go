package material

// SteelConfig is the recognised construction configuration for structural
// steel and reinforcement materials (Section 6).
type SteelConfig struct {
	Fy            float64 // yield strength, MPa (required)
	Fu            float64 // ultimate strength, MPa (0 => no hardening branch)
	FailureStrain float64 // 0 => purely elastic-plastic, no failure cutoff
	E             float64 // modulus of elasticity, MPa (0 => default below)
}

const (
	defaultSteelE         = 210000.0
	defaultReinforcementE = 200000.0
)

// NewSteel builds a bilinear (or trilinear, with hardening) structural
// steel material, odd-symmetric about the origin (Section 6).
func NewSteel(name string, cfg SteelConfig) (Material, error) {
	return newSteelLike(name, RoleGirder, cfg, defaultSteelE)
}

// NewReinforcement builds a reinforcement bar material with the same
// shape rules as structural steel but a different default modulus
// (Section 6).
func NewReinforcement(name string, role Role, cfg SteelConfig) (Material, error) {
	return newSteelLike(name, role, cfg, defaultReinforcementE)
}

func newSteelLike(name string, role Role, cfg SteelConfig, defaultE float64) (Material, error) {
	if cfg.Fy <= 0 {
		return Material{}, errInvalid("material: fy must be positive")
	}
	e := cfg.E
	if e == 0 {
		e = defaultE
	}
	epsY := cfg.Fy / e

	points := []Point{
		{Strain: 0, Stress: 0},
		{Strain: -epsY, Stress: -cfg.Fy},
		{Strain: epsY, Stress: cfg.Fy},
	}

	switch {
	case cfg.FailureStrain > 0 && cfg.Fu > cfg.Fy:
		// Hardening branch from (epsY, fy) to (failureStrain, fu).
		points = append(points,
			Point{Strain: -cfg.FailureStrain, Stress: -cfg.Fu},
			Point{Strain: cfg.FailureStrain, Stress: cfg.Fu},
		)
	case cfg.FailureStrain > 0:
		// Perfectly plastic to the failure strain, then the material
		// fails (StressAt returns 0 beyond MaxStrain/MinStrain).
		points = append(points,
			Point{Strain: -cfg.FailureStrain, Stress: -cfg.Fy},
			Point{Strain: cfg.FailureStrain, Stress: cfg.Fy},
		)
	default:
		// Omitting failure_strain selects purely elastic-plastic
		// behaviour with no failure cutoff (Section 6): extend the
		// plateau far enough that no realistic beam analysis exceeds it.
		plateauReach := 1.0 // 100% strain is effectively "never fails"
		if plateauReach <= epsY {
			plateauReach = 2 * epsY
		}
		points = append(points,
			Point{Strain: -plateauReach, Stress: -cfg.Fy},
			Point{Strain: plateauReach, Stress: cfg.Fy},
		)
	}

	curve, err := NewCurve(points)
	if err != nil {
		return Material{}, err
	}
	return New(name, role, curve), nil
}
