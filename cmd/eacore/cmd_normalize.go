package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vic/eacore/pkg/diag"
	"github.com/vic/eacore/pkg/reduce"
)

var (
	normalizeDefsPath string
	normalizeWeak     bool
	normalizeErased   bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <term-file>",
	Short: "reduce a term to normal form",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeDefsPath, "defs", "", "definitions file consulted for References")
	normalizeCmd.Flags().BoolVar(&normalizeWeak, "weak", false, "stop at weak head normal form instead of full normal form")
	normalizeCmd.Flags().BoolVar(&normalizeErased, "erased", false, "treat boxes (Put/Duplicate) as identity throughout")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	runID := newRunID()
	logger := diag.L().With(zap.String("run", runID), zap.String("cmd", "normalize"))

	d, err := loadDefs(normalizeDefsPath)
	if err != nil {
		return err
	}
	t, err := parseArgTerm(args[0])
	if err != nil {
		return err
	}

	logger.Debug("normalizing", zap.Stringer("term", t), zap.Bool("weak", normalizeWeak), zap.Bool("erased", normalizeErased))

	var result interface {
		String() string
	}
	switch {
	case normalizeWeak && normalizeErased:
		result, err = reduce.WeakNormalizeErased(t, d)
	case normalizeWeak:
		result, err = reduce.WeakNormalize(t, d)
	case normalizeErased:
		result, err = reduce.NormalizeErased(t, d)
	default:
		result, err = reduce.Normalize(t, d)
	}
	if err != nil {
		return err
	}

	fmt.Println(result.String())
	return nil
}
