// Package section composes geometry and material into sections and
// cross-sections, and implements the strain-based stress integration of
// Section 4.3.
package section

import (
	"fmt"

	"github.com/openstructure/mkappa/internal/geometry"
	"github.com/openstructure/mkappa/internal/material"
)

// Section pairs one geometry primitive with one material (Section 3).
type Section struct {
	Shape    geometry.Shape
	Material material.Material
}

// New builds a Section by value.
func New(shape geometry.Shape, mat material.Material) Section {
	return Section{Shape: shape, Material: mat}
}

func (s Section) top() float64    { return s.Shape.Top() }
func (s Section) bottom() float64 { return s.Shape.Bottom() }

// Crosssection is an unordered collection of Sections (Section 3).
// Sections must not overlap in (y, z); this implementation does not check
// for overlap, which is left to the caller composing the set.
type Crosssection struct {
	Sections []Section
}

// NewCrosssection composes sections into a cross-section, validating that
// none have inverted shape bounds (top > bottom).
func NewCrosssection(sections ...Section) (Crosssection, error) {
	for i, s := range sections {
		if s.top() > s.bottom() {
			return Crosssection{}, fmt.Errorf("section: section %d has inverted edges (top=%.6g > bottom=%.6g)", i, s.top(), s.bottom())
		}
	}
	return Crosssection{Sections: append([]Section(nil), sections...)}, nil
}

// Extent returns the shallowest top and deepest bottom depth spanned by
// the cross-section.
func (c Crosssection) Extent() (top, bottom float64) {
	if len(c.Sections) == 0 {
		return 0, 0
	}
	top, bottom = c.Sections[0].top(), c.Sections[0].bottom()
	for _, s := range c.Sections[1:] {
		if s.top() < top {
			top = s.top()
		}
		if s.bottom() > bottom {
			bottom = s.bottom()
		}
	}
	return top, bottom
}

// FilterByRole returns the subset of sections tagged with the given role,
// used to split a composite cross-section into its girder and slab
// sub-cross-sections for MNKappaCurve (Section 4.6).
func (c Crosssection) FilterByRole(role material.Role) Crosssection {
	var out []Section
	for _, s := range c.Sections {
		if s.Material.Role == role {
			out = append(out, s)
		}
	}
	return Crosssection{Sections: out}
}
