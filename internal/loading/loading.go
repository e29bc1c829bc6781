// Package loading implements the simply-supported span loadings of
// Section 6: uniform load, discrete point loads, and their linear
// combination.
package loading

import "sort"

// Loading is the external-interfaces contract of Section 6: every loading
// reports its maximum moment, the moment and shear at any position along
// the span, and the total applied force.
type Loading interface {
	MaximumMoment() float64
	Moment(at float64) float64
	TransversalShear(at float64) float64
	Loading() float64
}

// SingleSpanUniformLoad is a simply-supported beam of Length carrying a
// uniformly distributed Load (force per unit length).
type SingleSpanUniformLoad struct {
	Length float64
	Load   float64
}

func (l SingleSpanUniformLoad) MaximumMoment() float64 {
	return l.Load * l.Length * l.Length / 8
}

func (l SingleSpanUniformLoad) Moment(at float64) float64 {
	return l.Load * at * (l.Length - at) / 2
}

func (l SingleSpanUniformLoad) TransversalShear(at float64) float64 {
	return l.Load * (l.Length/2 - at)
}

func (l SingleSpanUniformLoad) Loading() float64 {
	return l.Load * l.Length
}

// PointLoad is a single concentrated force applied at Position along the
// span, measured from the left support.
type PointLoad struct {
	Position float64
	Value    float64
}

// SingleSpanSingleLoads is a simply-supported beam of Length carrying an
// arbitrary set of concentrated loads.
type SingleSpanSingleLoads struct {
	Length float64
	Loads  []PointLoad
}

func (l SingleSpanSingleLoads) reactions() (r1, r2 float64) {
	for _, p := range l.Loads {
		r1 += p.Value * (l.Length - p.Position) / l.Length
		r2 += p.Value * p.Position / l.Length
	}
	return r1, r2
}

func (l SingleSpanSingleLoads) Moment(at float64) float64 {
	r1, _ := l.reactions()
	m := r1 * at
	for _, p := range l.Loads {
		if p.Position < at {
			m -= p.Value * (at - p.Position)
		}
	}
	return m
}

func (l SingleSpanSingleLoads) TransversalShear(at float64) float64 {
	r1, _ := l.reactions()
	v := r1
	for _, p := range l.Loads {
		if p.Position < at {
			v -= p.Value
		}
	}
	return v
}

// MaximumMoment evaluates the moment at every load position (the bending
// moment diagram of a simply-supported beam under point loads is
// piecewise-linear, so its maximum always sits under a load) and reports
// the largest in magnitude.
func (l SingleSpanSingleLoads) MaximumMoment() float64 {
	positions := make([]float64, len(l.Loads))
	for i, p := range l.Loads {
		positions[i] = p.Position
	}
	sort.Float64s(positions)

	var maxM float64
	for _, x := range positions {
		if m := l.Moment(x); abs(m) > abs(maxM) {
			maxM = m
		}
	}
	return maxM
}

func (l SingleSpanSingleLoads) Loading() float64 {
	var total float64
	for _, p := range l.Loads {
		total += p.Value
	}
	return total
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
