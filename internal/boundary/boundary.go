// Package boundary implements the admissible-curvature and neutral-axis
// bound computations of Section 4.4, which seed and clamp the equilibrium
// solvers in internal/solver.
package boundary

import (
	"math"
	"sort"

	"github.com/openstructure/mkappa/internal/geometry"
	"github.com/openstructure/mkappa/internal/material"
	"github.com/openstructure/mkappa/internal/section"
)

// StrainPosition anchors a solver run or a curve breakpoint at a given
// strain, depth and originating material (Section 3).
type StrainPosition struct {
	Strain   float64
	Depth    float64
	Material material.Material
}

// strainLimit is one (depth, strain-limit) pair contributed by a section:
// either its shallow or deep edge (or a circle's single point), at its
// material's min or max strain.
type strainLimit struct {
	depth  float64
	strain float64
}

// edgeLimits collects every (depth, strain-limit) pair across a
// cross-section's sections: each section contributes its top and bottom
// edge depths (or its single point, for circles) at both the material's
// MinStrain (compression limit) and MaxStrain (tension limit).
func edgeLimits(cs section.Crosssection) []strainLimit {
	var out []strainLimit
	for _, s := range cs.Sections {
		depths := []float64{s.Shape.Top(), s.Shape.Bottom()}
		if s.Shape.IsPoint() {
			if c, ok := s.Shape.(geometry.Circle); ok {
				depths = []float64{c.CentroidZ()}
			}
		}
		for _, d := range depths {
			out = append(out, strainLimit{depth: d, strain: s.Material.MinStrain()})
			out = append(out, strainLimit{depth: d, strain: s.Material.MaxStrain()})
		}
	}
	return out
}

// MaxCurvature computes the maximum positive and maximum negative
// admissible curvature about anchor (z0, eps0), per Section 4.4: for every
// other (zj, epsj_limit), kappa_j = (epsj_limit - eps0)/(zj - z0); the
// maximum positive curvature is the smallest strictly positive kappa_j,
// the maximum negative is the largest strictly negative one. Ties prefer
// the shallower opposing strain limit (smallest |z - z0|), after ordering
// candidates by |kappa| (Section 4.4).
func MaxCurvature(cs section.Crosssection, z0, eps0 float64) (positive, negative float64, err error) {
	limits := edgeLimits(cs)

	type candidate struct {
		kappa float64
		dz    float64
	}
	var positives, negatives []candidate

	for _, lim := range limits {
		dz := lim.depth - z0
		if dz == 0 {
			continue
		}
		k := (lim.strain - eps0) / dz
		c := candidate{kappa: k, dz: math.Abs(dz)}
		switch {
		case k > 0:
			positives = append(positives, c)
		case k < 0:
			negatives = append(negatives, c)
		}
	}

	sortCandidates := func(cands []candidate) {
		sort.Slice(cands, func(i, j int) bool {
			ai, aj := math.Abs(cands[i].kappa), math.Abs(cands[j].kappa)
			if ai != aj {
				return ai < aj
			}
			return cands[i].dz < cands[j].dz
		})
	}
	sortCandidates(positives)
	sortCandidates(negatives)

	if len(positives) > 0 {
		positive = positives[0].kappa
	}
	if len(negatives) > 0 {
		negative = negatives[0].kappa
	}
	if len(positives) == 0 && len(negatives) == 0 {
		return 0, 0, errNoOpposingLimit
	}
	return positive, negative, nil
}

// NeutralAxisBounds computes the admissible range of neutral-axis depth zn
// for a given curvature kappa: the induced strain at every section edge
// must not exceed that edge's material strain limits (Section 4.4). kappa
// must be non-zero.
//
// strain(z) = kappa*(z - zn); a positive strain limit (tension, the
// material's MaxStrain) at depth d requires strain(d) <= limit, and a
// negative strain limit (compression, MinStrain) requires strain(d) >=
// limit. Dividing through by kappa to isolate zn = d - limit/kappa flips
// each inequality's direction when kappa < 0:
//
//   - kappa > 0: zn >= d - posLimit/kappa (every positive-limit pair bounds
//     zn from below) and zn <= d - negLimit/kappa (every negative-limit
//     pair bounds zn from above), so lowZn = max over positive-limit
//     znAtLimit, highZn = min over negative-limit znAtLimit.
//   - kappa < 0: both inequalities flip, so lowZn = max over negative-limit
//     znAtLimit, highZn = min over positive-limit znAtLimit.
//
// Mixing both limit signs into a single global min/max (as opposed to this
// per-sign intersection) would produce a too-wide, sign-confused bracket.
func NeutralAxisBounds(cs section.Crosssection, kappa float64) (lowZn, highZn float64, err error) {
	if kappa == 0 {
		return 0, 0, errZeroCurvature
	}
	limits := edgeLimits(cs)
	if len(limits) == 0 {
		return 0, 0, errNoOpposingLimit
	}

	var havePos, haveNeg bool
	var posZnMax, posZnMin, negZnMax, negZnMin float64
	for _, lim := range limits {
		znAtLimit := lim.depth - lim.strain/kappa
		if lim.strain >= 0 {
			if !havePos || znAtLimit > posZnMax {
				posZnMax = znAtLimit
			}
			if !havePos || znAtLimit < posZnMin {
				posZnMin = znAtLimit
			}
			havePos = true
		} else {
			if !haveNeg || znAtLimit > negZnMax {
				negZnMax = znAtLimit
			}
			if !haveNeg || znAtLimit < negZnMin {
				negZnMin = znAtLimit
			}
			haveNeg = true
		}
	}
	if !havePos || !haveNeg {
		return 0, 0, errNoOpposingLimit
	}

	if kappa > 0 {
		lowZn, highZn = posZnMax, negZnMin
	} else {
		lowZn, highZn = negZnMax, posZnMin
	}
	if lowZn > highZn {
		lowZn, highZn = highZn, lowZn
	}
	return lowZn, highZn, nil
}

type boundaryError string

func (e boundaryError) Error() string { return string(e) }

const (
	errNoOpposingLimit = boundaryError("boundary: no opposing strain limit found for anchor")
	errZeroCurvature   = boundaryError("boundary: NeutralAxisBounds requires kappa != 0")
)
