package loading

// LoadCase pairs a Loading with a scale Factor, the same shape as a single
// term of an NSCP-style load combination (dead/live/wind factors applied
// to unfactored actions) generalised from discrete load types to arbitrary
// Loading values.
type LoadCase struct {
	Loading Loading
	Factor  float64
}

// CombinedLoading superposes a set of factored LoadCases into a single
// Loading by linear combination; simply-supported beam actions are linear
// in the applied load, so factored superposition is exact.
type CombinedLoading struct {
	Cases []LoadCase
}

func (c CombinedLoading) Moment(at float64) float64 {
	var m float64
	for _, lc := range c.Cases {
		m += lc.Factor * lc.Loading.Moment(at)
	}
	return m
}

func (c CombinedLoading) TransversalShear(at float64) float64 {
	var v float64
	for _, lc := range c.Cases {
		v += lc.Factor * lc.Loading.TransversalShear(at)
	}
	return v
}

func (c CombinedLoading) Loading() float64 {
	var total float64
	for _, lc := range c.Cases {
		total += lc.Factor * lc.Loading.Loading()
	}
	return total
}

// MaximumMoment samples every constituent loading's governing position in
// addition to midspan, since the sum of piecewise-linear diagrams peaks at
// one of the individual diagrams' breakpoints.
func (c CombinedLoading) MaximumMoment() float64 {
	var maxM float64
	for _, lc := range c.Cases {
		if sampler, ok := lc.Loading.(interface{ samplePositions() []float64 }); ok {
			for _, x := range sampler.samplePositions() {
				if m := c.Moment(x); abs(m) > abs(maxM) {
					maxM = m
				}
			}
			continue
		}
		if m := c.Moment(0); abs(m) > abs(maxM) {
			maxM = m
		}
	}
	return maxM
}

func (l SingleSpanUniformLoad) samplePositions() []float64 {
	return []float64{l.Length / 2}
}

func (l SingleSpanSingleLoads) samplePositions() []float64 {
	out := make([]float64, len(l.Loads))
	for i, p := range l.Loads {
		out[i] = p.Position
	}
	return out
}

// Governing evaluates every CombinedLoading at position at and returns the
// largest moment in magnitude together with its index, mirroring the
// governing-combination search over a table of factored load cases.
func Governing(combinations []CombinedLoading, at float64) (moment float64, index int) {
	for i, c := range combinations {
		if m := c.Moment(at); i == 0 || abs(m) > abs(moment) {
			moment = m
			index = i
		}
	}
	return moment, index
}
