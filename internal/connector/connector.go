// Package connector implements the headed-stud shear connector load-slip
// model of Section 4.7 and its Glossary resistance formula.
package connector

import "math"

// transitionSlip is the slip at which the load-slip curve breaks from its
// initial (steeper) branch to its plateau branch, per Section 4.7.
const transitionSlip = 0.5 // mm

// plateauSlip is the slip beyond which load is held at resistance.
const plateauSlip = 6.0 // mm

// HeadedStud is a single headed-stud shear connector at Position along the
// beam, sized by diameter D, stud height HSC, and the steel/concrete
// properties entering the Glossary resistance formula.
type HeadedStud struct {
	Position float64
	D        float64 // stud shank diameter, mm
	HSC      float64 // stud height, mm
	Fu       float64 // stud ultimate tensile strength
	Fc       float64 // concrete cylinder strength entering the resistance formula
	Ecm      float64 // concrete modulus entering the resistance formula
}

// alpha is the height-reduction factor of the Glossary resistance formula:
// full strength once h_sc/d >= 4, linearly reduced below that.
func (s HeadedStud) alpha() float64 {
	ratio := s.HSC / s.D
	if ratio >= 4 {
		return 1
	}
	return 0.2 * (ratio + 1)
}

// resistance evaluates P_R = min(P_steel, P_concrete) (Glossary: "Headed
// stud resistance").
func (s HeadedStud) resistance() float64 {
	pConcrete := 0.374 * s.D * s.D * s.alpha() * math.Sqrt(s.Fc*s.Ecm)
	pSteel := s.Fu * math.Pi * s.D * s.D / 4
	return math.Min(pSteel, pConcrete)
}

// Load evaluates the bilinear load-slip curve at the given slip (may be
// negative; the curve is odd-symmetric about the origin). Below the
// transition slip the connector follows a straight line from the origin to
// (transitionSlip, 0.7*P_R) — the secant stiffness commonly assumed for
// headed studs at working load — then a second, shallower line up to
// (plateauSlip, P_R), after which load is held constant.
func (s HeadedStud) Load(slip float64) float64 {
	sign := 1.0
	if slip < 0 {
		sign, slip = -1, -slip
	}

	pR := s.resistance()
	const kneeFraction = 0.7

	var load float64
	switch {
	case slip <= 0:
		load = 0
	case slip <= transitionSlip:
		load = kneeFraction * pR * slip / transitionSlip
	case slip <= plateauSlip:
		slope := (pR - kneeFraction*pR) / (plateauSlip - transitionSlip)
		load = kneeFraction*pR + slope*(slip-transitionSlip)
	default:
		load = pR
	}
	return sign * load
}
