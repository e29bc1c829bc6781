package section

import "github.com/openstructure/mkappa/internal/geometry"

// ScaleWidth rebuilds cs with every Rectangle/Trapezoid shape's width
// scaled by factor, leaving point masses (reinforcement) unchanged. It is
// used by beam nodes to narrow a full cross-section down to its effective
// bending or membrane width at a given position (Section 4.7).
func ScaleWidth(cs Crosssection, factor float64) (Crosssection, error) {
	scaled := make([]Section, len(cs.Sections))
	for i, s := range cs.Sections {
		shape, err := scaleShape(s.Shape, factor)
		if err != nil {
			return Crosssection{}, err
		}
		scaled[i] = Section{Shape: shape, Material: s.Material}
	}
	return NewCrosssection(scaled...)
}

func scaleShape(s geometry.Shape, factor float64) (geometry.Shape, error) {
	switch v := s.(type) {
	case geometry.Rectangle:
		return geometry.NewRectangle(v.Top(), v.Bottom(), v.Width(v.Top())*factor)
	case geometry.Trapezoid:
		return geometry.NewTrapezoid(v.Top(), v.Bottom(), v.Width(v.Top())*factor, v.Width(v.Bottom())*factor)
	default:
		// Point masses (reinforcement) are not part of the effective
		// concrete width and are carried through unscaled.
		return s, nil
	}
}
