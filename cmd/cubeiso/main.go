// Package main provides the CLI entry point for cubeiso-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qcgrid/cubeiso-go/pkg/cubeiso"
	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/models"
	"github.com/qcgrid/cubeiso-go/pkg/cubeiso/output"
)

var (
	percent    float64
	isovalue   float64
	sign       string
	outputPath string
	asJSON     bool
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cubeiso [cube_file]",
		Short: "Map cube file isosurface thresholds to enclosed charge fractions",
		Long: `cubeiso-go reads a Gaussian cube file (electron density or orbital
amplitude on a regular 3-D grid) and computes either the isovalue that
encloses a given percentage of the total integrated quantity, or the
percentage enclosed by a given isovalue.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().Float64VarP(&percent, "percent", "p", 0, "Compute the isovalue enclosing this percentage of charge")
	rootCmd.Flags().Float64VarP(&isovalue, "isovalue", "i", 0, "Compute the percentage of charge enclosed by this isovalue")
	rootCmd.Flags().StringVarP(&sign, "sign", "s", "pos", "Sign of values to integrate for density data: pos or neg")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := cubeiso.DefaultOptions()
	switch sign {
	case "pos":
		opts.Sign = cubeiso.SignPositive
	case "neg":
		opts.Sign = cubeiso.SignNegative
	default:
		return fmt.Errorf("invalid sign: %s (must be pos or neg)", sign)
	}

	hasPercent := cmd.Flags().Changed("percent")
	hasIsovalue := cmd.Flags().Changed("isovalue")
	if hasPercent == hasIsovalue {
		return fmt.Errorf("exactly one of --percent or --isovalue must be given")
	}
	if hasPercent {
		opts.Percent = &percent
	} else {
		opts.Isovalue = &isovalue
	}

	rep, err := cubeiso.Analyze(inputPath, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var data []byte
	if asJSON {
		data, err = output.ToJSON(rep, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = append(data, '\n')
	} else {
		data = []byte(formatReport(rep))
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// formatReport renders the classic multi-line text report.
func formatReport(rep *models.Report) string {
	var b strings.Builder

	kind := strings.ToLower(string(rep.DataKind))
	quantity := "electron density"
	unitExp := "^3"
	if rep.DataKind == models.KindOrbital {
		quantity = "orbital density"
		unitExp = "^(3/2)"
	}

	fmt.Fprintf(&b, "Processing file: %s\n", rep.File)
	fmt.Fprintf(&b, "Calculation type detected: %s\n", rep.CalcType)
	fmt.Fprintf(&b, "Data type detected: %s\n", rep.DataKind)
	fmt.Fprintf(&b, "Grid dimensions: %d x %d x %d\n", rep.Dims[0], rep.Dims[1], rep.Dims[2])
	fmt.Fprintf(&b, "Voxel volume: %g %s^3\n", rep.VoxelVolume, rep.NativeUnit)
	fmt.Fprintf(&b, "Total integrated %s: %g\n", quantity, rep.TotalIntegrated)
	if rep.SignResolved {
		fmt.Fprintf(&b, "Requested sign has no contribution; using %s values\n", signWord(rep.Positive))
	}

	if rep.Mode == models.ModePercent {
		fmt.Fprintf(&b, "Integrating (in %s mode) to reach %g%% of the total quantity...\n", kind, rep.Input)
		fmt.Fprintf(&b, "Isovalue (%s) corresponding to %g%%:\n", kind, rep.Input)
		fmt.Fprintf(&b, "  %g (native, electrons/%s%s)\n", rep.Isovalue, rep.NativeUnit, unitExp)
		fmt.Fprintf(&b, "  %g (converted, electrons/%s%s)\n", rep.IsovalueConverted, rep.ConvertedUnit, unitExp)
		fmt.Fprintf(&b, "Integrated %s above threshold (native): %g\n", quantity, rep.IntegratedAbove)
		fmt.Fprintf(&b, "Computed percentage of total %s above threshold: %g%%\n", quantity, rep.Percentage)
	} else {
		fmt.Fprintf(&b, "For %s data, the percentage of total charge enclosed by isovalue %g (electrons/%s%s) is: %g%%\n",
			kind, rep.Input, rep.NativeUnit, unitExp, rep.Percentage)
		fmt.Fprintf(&b, "Converted isovalue: %g electrons/%s%s\n", rep.IsovalueConverted, rep.ConvertedUnit, unitExp)
	}

	return b.String()
}

func signWord(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}
