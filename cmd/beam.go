package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstructure/mkappa/internal/beam"
	"github.com/openstructure/mkappa/internal/curve"
	"github.com/openstructure/mkappa/internal/geometry"
	"github.com/openstructure/mkappa/internal/loading"
	"github.com/openstructure/mkappa/internal/material"
	"github.com/openstructure/mkappa/internal/section"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Compute single-span beam deflection under a uniform load",
	RunE:  runBeam,
}

var (
	beamLength   float64
	beamWidth    float64
	beamDepth    float64
	beamFy       float64
	beamLoad     float64
	beamElements int
	beamAt       float64
)

func init() {
	beamCmd.Flags().Float64Var(&beamLength, "length", 6000, "span length (mm)")
	beamCmd.Flags().Float64Var(&beamWidth, "width", 200, "section width (mm)")
	beamCmd.Flags().Float64Var(&beamDepth, "depth", 300, "section depth (mm)")
	beamCmd.Flags().Float64Var(&beamFy, "fy", 355, "steel yield strength (MPa)")
	beamCmd.Flags().Float64Var(&beamLoad, "load", 0.01, "uniform load (force per unit length)")
	beamCmd.Flags().IntVar(&beamElements, "elements", 10, "number of beam elements")
	beamCmd.Flags().Float64Var(&beamAt, "at", -1, "position to report deflection at (default: midspan)")
	rootCmd.AddCommand(beamCmd)
}

func runBeam(cmd *cobra.Command, args []string) error {
	rect, err := geometry.NewRectangle(0, beamDepth, beamWidth)
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	steel, err := material.NewSteel("steel", material.SteelConfig{Fy: beamFy, Fu: beamFy * 1.12, FailureStrain: 0.15})
	if err != nil {
		return fmt.Errorf("material: %w", err)
	}
	cs, err := section.NewCrosssection(section.New(rect, steel))
	if err != nil {
		return fmt.Errorf("section: %w", err)
	}

	b := beam.Beam{Crosssection: cs, Length: beamLength, Elements: beamElements}
	nodes, err := b.Discretize(curve.MKappaOptions{})
	if err != nil {
		return fmt.Errorf("discretize: %w", err)
	}

	at := beamAt
	if at < 0 {
		at = beamLength / 2
	}

	load := loading.SingleSpanUniformLoad{Length: beamLength, Load: beamLoad}
	d, err := beam.Deflect(nodes, load, beamLength, at)
	if err != nil {
		return fmt.Errorf("deflect: %w", err)
	}

	fmt.Printf("\n  Maximum moment: %.4f\n", load.MaximumMoment())
	fmt.Printf("  Deflection at x=%.1f: %.6f\n\n", at, d)
	return nil
}
