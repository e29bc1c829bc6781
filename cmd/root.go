package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openstructure/mkappa/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "mkappa",
	Short: "Moment-curvature and beam deflection toolkit",
	Long: `mkappa - moment-curvature and beam deflection toolkit

A CLI tool for exploring the strain-based moment-curvature response of
beam cross-sections built from arbitrary piecewise-linear stress-strain
materials, and the deflection of single-span beams computed from it.

This tool helps engineers:
  - Generate moment-curvature (M-kappa) curves of rectangular steel sections
  - Compute single-span beam deflection by the principle of virtual forces`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   mkappa v%-48s║\n", version.Version)
		fmt.Println("  ║   Moment-curvature and beam deflection toolkit            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Computes the strain-based moment-curvature response of")
		fmt.Println("  arbitrary cross-sections and the deflection it implies.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Moment-curvature (M-kappa) curve generation")
		fmt.Println("    • Single-span beam deflection via virtual forces")
		fmt.Println()
		fmt.Println("  Use 'mkappa --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s. All rights reserved.\n", version.Year)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
