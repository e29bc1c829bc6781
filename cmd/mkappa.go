package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstructure/mkappa/internal/curve"
	"github.com/openstructure/mkappa/internal/diagram"
	"github.com/openstructure/mkappa/internal/geometry"
	"github.com/openstructure/mkappa/internal/material"
	"github.com/openstructure/mkappa/internal/section"
)

var mkappaCmd = &cobra.Command{
	Use:   "mkappa",
	Short: "Generate the moment-curvature curve of a rectangular steel section",
	RunE:  runMKappa,
}

var (
	mkappaWidth  float64
	mkappaDepth  float64
	mkappaFy     float64
	mkappaFu     float64
	mkappaExport string
)

func init() {
	mkappaCmd.Flags().Float64Var(&mkappaWidth, "width", 200, "section width (mm)")
	mkappaCmd.Flags().Float64Var(&mkappaDepth, "depth", 300, "section depth (mm)")
	mkappaCmd.Flags().Float64Var(&mkappaFy, "fy", 355, "steel yield strength (MPa)")
	mkappaCmd.Flags().Float64Var(&mkappaFu, "fu", 400, "steel ultimate strength (MPa)")
	mkappaCmd.Flags().StringVar(&mkappaExport, "export", "", "optional path to save an M-kappa plot (png/svg/pdf)")
	rootCmd.AddCommand(mkappaCmd)
}

func runMKappa(cmd *cobra.Command, args []string) error {
	rect, err := geometry.NewRectangle(0, mkappaDepth, mkappaWidth)
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	steel, err := material.NewSteel("steel", material.SteelConfig{Fy: mkappaFy, Fu: mkappaFu, FailureStrain: 0.15})
	if err != nil {
		return fmt.Errorf("material: %w", err)
	}
	cs, err := section.NewCrosssection(section.New(rect, steel))
	if err != nil {
		return fmt.Errorf("section: %w", err)
	}

	result := curve.MKappaCurve(cs, curve.MKappaOptions{})
	fmt.Print(diagram.ASCIIMKappaSummary(result.Positive))
	fmt.Print(diagram.ASCIIMKappaSummary(result.Negative))
	if len(result.Failed) > 0 {
		fmt.Printf("\n  %d anchor(s) failed to converge\n", len(result.Failed))
	}

	if mkappaExport != "" {
		if err := diagram.ExportMKappaCurve(result.Positive, result.Negative, mkappaExport); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("\n  wrote %s\n", mkappaExport)
	}
	return nil
}
