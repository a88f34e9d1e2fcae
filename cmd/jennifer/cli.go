package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/jennifer/internal/envconfig"
	"github.com/born-ml/jennifer/internal/tensor"
)

const version = "v0.1.0-dev"

func newCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "jennifer",
		Short:         "Dense tensor engine for inference runtimes",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.Debug("jennifer config", "command", cmd.Name(), "env", envconfig.Values())
		},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jennifer version %s\n", version)
		},
	}

	inspectCmd := newInspectCmd()
	randomCmd := newRandomCmd()

	envVars := envconfig.AsMap()
	appendEnvDocs(inspectCmd, []envconfig.EnvVar{envVars["JENNIFER_DEBUG"], envVars["JENNIFER_SHOW_PRECISION"]})
	appendEnvDocs(randomCmd, []envconfig.EnvVar{envVars["JENNIFER_DEBUG"], envVars["JENNIFER_SEED"], envVars["JENNIFER_SHOW_PRECISION"]})

	rootCmd.AddCommand(inspectCmd, randomCmd, versionCmd)
	return rootCmd
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Load a raw little-endian weight buffer and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  InspectHandler,
	}

	cmd.Flags().String("dtype", "f32", "Element type of the buffer (f32, f64, f16, bf16, i32, i64, i16, i8, u8)")
	cmd.Flags().String("shape", "", "Comma-separated dimensions of the buffer (e.g. 2,3,3)")
	cmd.Flags().String("reshape", "", "Reshape to these dimensions before printing")
	cmd.Flags().Bool("row-major", false, "Keep row-major element order when reshaping or flattening")
	cmd.Flags().String("pad", "", "Pad or truncate to these dimensions before printing")
	cmd.Flags().Float32("pad-value", 0, "Value for padded elements")
	cmd.Flags().Bool("flatten", false, "Flatten to a single axis before printing")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

func newRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Fill a tensor with random values and print it",
		Args:  cobra.NoArgs,
		RunE:  RandomHandler,
	}

	cmd.Flags().String("shape", "", "Comma-separated dimensions (e.g. 2,3,3)")
	cmd.Flags().String("normal", "", "Draw from a normal distribution: mean,stddev")
	cmd.Flags().String("uniform", "", "Draw from a uniform distribution: low,high (default 0,1)")
	cmd.MarkFlagsMutuallyExclusive("normal", "uniform")
	_ = cmd.MarkFlagRequired("shape")
	return cmd
}

// InspectHandler binds the file contents to a float32 tensor and applies
// the requested operations in order: reshape, padding, flatten.
func InspectHandler(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	dtypeName, _ := flags.GetString("dtype")
	dtype, err := tensor.ParseDataType(dtypeName)
	if err != nil {
		return err
	}
	dims, err := shapeFlag(cmd, "shape")
	if err != nil {
		return err
	}
	reshape, err := shapeFlag(cmd, "reshape")
	if err != nil {
		return err
	}
	pad, err := shapeFlag(cmd, "pad")
	if err != nil {
		return err
	}
	rowMajor, _ := flags.GetBool("row-major")
	flatten, _ := flags.GetBool("flatten")
	padValue, _ := flags.GetFloat32("pad-value")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	t, err := tensor.FromBytes[float32](data, dtype, dims...)
	if err != nil {
		return err
	}
	slog.Debug("loaded buffer", "file", args[0], "dtype", dtype, "tensor", t)

	if t.Ownership() == tensor.Viewing && (pad != nil || rowMajor) {
		t = t.Clone()
	}

	if reshape != nil {
		if err := t.Reshape(reshape, rowMajor); err != nil {
			return err
		}
	}
	if pad != nil {
		if err := t.Padding(pad, padValue); err != nil {
			return err
		}
	}
	if flatten {
		if err := t.Flatten(rowMajor); err != nil {
			return err
		}
	}

	return printTensor(cmd.OutOrStdout(), t)
}

// RandomHandler fills a float32 tensor from the requested distribution
// using the source configured by JENNIFER_SEED.
func RandomHandler(cmd *cobra.Command, _ []string) error {
	dims, err := shapeFlag(cmd, "shape")
	if err != nil {
		return err
	}
	normal, err := pairFlag(cmd, "normal")
	if err != nil {
		return err
	}
	uniform, err := pairFlag(cmd, "uniform")
	if err != nil {
		return err
	}

	t, err := tensor.New[float32](dims...)
	if err != nil {
		return err
	}

	src := envconfig.RandSource()
	switch {
	case normal != nil:
		err = t.RandomNormal(normal[0], normal[1], src)
	case uniform != nil:
		err = t.RandomUniform(uniform[0], uniform[1], src)
	default:
		err = t.RandomUniform(0, 1, src)
	}
	if err != nil {
		return err
	}
	slog.Debug("sampled tensor", "tensor", t, "seed", envconfig.Seed())

	return printTensor(cmd.OutOrStdout(), t)
}

func printTensor(w io.Writer, t *tensor.Tensor[float32]) error {
	raw, err := t.RawShape()
	if err != nil {
		return err
	}
	ext, err := t.Shape()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "shape %v extent %v %s\n", []int(raw), ext, t.Ownership())
	//nolint:gosec // G115: precision is a small decimal count.
	return t.ShowPrecision(w, int(envconfig.ShowPrecision()))
}

// shapeFlag parses a comma-separated list of dimensions. An unset flag
// returns nil.
func shapeFlag(cmd *cobra.Command, name string) ([]int, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil || s == "" {
		return nil, err
	}

	parts := strings.Split(s, ",")
	dims := make([]int, len(parts))
	for i, p := range parts {
		dims[i], err = strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
		}
	}
	return dims, nil
}

// pairFlag parses "a,b" into two floats. An unset flag returns nil.
func pairFlag(cmd *cobra.Command, name string) ([]float32, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil || s == "" {
		return nil, err
	}

	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("invalid --%s %q: expected two comma-separated numbers", name, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 32)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 32)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return []float32{float32(x), float32(y)}, nil
}
