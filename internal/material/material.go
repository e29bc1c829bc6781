// Package material implements piecewise-linear stress-strain curves
// (Section 3, Section 4.2) and the concrete/steel/reinforcement
// constructors that build them from engineering parameters (Section 6).
package material

import (
	"fmt"
	"sort"
)

// Role tags a material with the structural part it belongs to, used by
// Crosssection when composite (slab+girder) sections are analysed.
type Role int

const (
	RoleGirder Role = iota
	RoleSlab
)

func (r Role) String() string {
	if r == RoleSlab {
		return "slab"
	}
	return "girder"
}

// Point is a single (strain, stress) pair of a material curve (Section 3).
type Point struct {
	Strain float64
	Stress float64
}

// Curve is an ordered, strain-monotone sequence of Points, split into a
// compression half (strain <= 0) and a tension half (strain >= 0), both
// sharing the origin (Section 3). Stress need not be monotone (concrete's
// post-peak softening).
type Curve struct {
	points []Point // ascending by strain, origin included exactly once
}

// NewCurve builds a Curve from unordered points. It sorts by strain,
// de-duplicates exact repeats, and validates the Section-3 invariants:
// strain-monotone, origin present.
func NewCurve(points []Point) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, fmt.Errorf("material: curve has no points")
	}
	pts := append([]Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Strain < pts[j].Strain })

	dedup := pts[:1]
	for _, p := range pts[1:] {
		last := dedup[len(dedup)-1]
		if p.Strain == last.Strain {
			// Same strain repeated: keep the later definition (callers
			// build from lo..hi; later usually reflects intent, e.g. a
			// softening branch restating its own endpoint).
			dedup[len(dedup)-1] = p
			continue
		}
		dedup = append(dedup, p)
	}

	hasOrigin := false
	for _, p := range dedup {
		if p.Strain == 0 {
			hasOrigin = true
			break
		}
	}
	if !hasOrigin {
		return Curve{}, fmt.Errorf("material: curve missing origin (0, 0) point")
	}
	return Curve{points: dedup}, nil
}

// MinStrain is the largest-magnitude compression strain the material
// sustains before failing.
func (c Curve) MinStrain() float64 { return c.points[0].Strain }

// MaxStrain is the largest-magnitude tension strain the material sustains
// before failing.
func (c Curve) MaxStrain() float64 { return c.points[len(c.points)-1].Strain }

// StressAt linearly interpolates stress between adjacent breakpoints.
// Outside [MinStrain, MaxStrain] the material has failed and StressAt
// returns 0.
func (c Curve) StressAt(strain float64) float64 {
	if strain < c.MinStrain() || strain > c.MaxStrain() {
		return 0
	}
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].Strain >= strain })
	if i == 0 {
		return c.points[0].Stress
	}
	if i == len(c.points) {
		return c.points[len(c.points)-1].Stress
	}
	if c.points[i].Strain == strain {
		return c.points[i].Stress
	}
	lo, hi := c.points[i-1], c.points[i]
	t := (strain - lo.Strain) / (hi.Strain - lo.Strain)
	return lo.Stress + t*(hi.Stress-lo.Stress)
}

// StrainsBetween lazily (via the returned slice) produces every breakpoint
// strain in [lo, hi], inclusive of lo and hi themselves even when they do
// not coincide with a breakpoint (Section 4.2).
func (c Curve) StrainsBetween(lo, hi float64) []float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	out := []float64{lo}
	for _, p := range c.points {
		if p.Strain > lo && p.Strain < hi {
			out = append(out, p.Strain)
		}
	}
	if hi != lo {
		out = append(out, hi)
	}
	return out
}

// Points returns the curve's breakpoints in ascending strain order.
func (c Curve) Points() []Point {
	return append([]Point(nil), c.points...)
}

// Material is a stress-strain Curve tagged with the structural role it
// plays (Section 3). Its failure strains are the curve's own bounds,
// MinStrain and MaxStrain.
type Material struct {
	Name  string
	Role  Role
	Curve Curve
}

// New builds a Material from an already-validated Curve.
func New(name string, role Role, curve Curve) Material {
	return Material{Name: name, Role: role, Curve: curve}
}

func (m Material) StressAt(strain float64) float64 { return m.Curve.StressAt(strain) }
func (m Material) MinStrain() float64              { return m.Curve.MinStrain() }
func (m Material) MaxStrain() float64              { return m.Curve.MaxStrain() }
func (m Material) StrainsBetween(lo, hi float64) []float64 {
	return m.Curve.StrainsBetween(lo, hi)
}
