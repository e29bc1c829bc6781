// Package diagram renders moment-curvature curves and section strain
// profiles, as plots (via gonum/plot) or as quick terminal ASCII output.
package diagram

import (
	"fmt"
	"strings"

	"github.com/openstructure/mkappa/internal/section"
	"github.com/openstructure/mkappa/internal/solver"
)

// ASCIIStrainProfile renders the linear strain distribution implied by
// curvature kappa and neutral-axis depth zn across a cross-section's full
// depth, one row per sample, annotated with the neutral axis and the
// strain limits of every section's material.
func ASCIIStrainProfile(cs section.Crosssection, kappa, zn float64) string {
	top, bottom := cs.Extent()
	const rows = 20

	var sb strings.Builder
	sb.WriteString("\n  STRAIN PROFILE\n  ──────────────\n\n")

	maxAbs := 1e-9
	for i := 0; i <= rows; i++ {
		z := top + (bottom-top)*float64(i)/rows
		eps := kappa * (z - zn)
		if a := absFloat(eps); a > maxAbs {
			maxAbs = a
		}
	}
	const barWidth = 30
	scale := float64(barWidth) / maxAbs

	for i := 0; i <= rows; i++ {
		z := top + (bottom-top)*float64(i)/rows
		eps := kappa * (z - zn)
		bar := strings.Repeat("█", int(absFloat(eps)*scale))
		pad := strings.Repeat(" ", barWidth-len(bar))
		marker := ""
		if (z-zn)*(z-zn+(bottom-top)/rows) <= 0 {
			marker = " ◄─ N.A."
		}
		if eps < 0 {
			sb.WriteString(fmt.Sprintf("  %7.1f │%s%s│ %-9.5f%s\n", z, pad, bar, eps, marker))
		} else {
			sb.WriteString(fmt.Sprintf("  %7.1f │%s%s│ %-9.5f%s\n", z, bar, pad, eps, marker))
		}
	}

	sb.WriteString("\n  Material limits:\n")
	seen := map[string]bool{}
	for _, s := range cs.Sections {
		name := s.Material.Name
		if seen[name] {
			continue
		}
		seen[name] = true
		sb.WriteString(fmt.Sprintf("    %-16s ε ∈ [%.5f, %.5f]\n", name, s.Material.MinStrain(), s.Material.MaxStrain()))
	}

	return sb.String()
}

// ASCIIMKappaSummary renders a compact table of an M-kappa branch.
func ASCIIMKappaSummary(points []solver.Point) string {
	var sb strings.Builder
	sb.WriteString("\n  MOMENT-CURVATURE CURVE\n  ───────────────────────\n")
	sb.WriteString(fmt.Sprintf("  %12s  %14s  %10s\n", "kappa", "moment", "N"))
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("  %12.6g  %14.4f  %10.2f\n", p.Kappa, p.Moment, p.AxialForce))
	}
	return sb.String()
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
