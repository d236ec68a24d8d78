package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vic/eacore/internal/surface"
	"github.com/vic/eacore/pkg/check"
	"github.com/vic/eacore/pkg/defs"
	"github.com/vic/eacore/pkg/diag"
	"github.com/vic/eacore/pkg/term"
)

var checkDefsPath string

var checkCmd = &cobra.Command{
	Use:   "check <term-file> <type-file>",
	Short: "bidirectionally check a term against an expected type",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkDefsPath, "defs", "", "definitions file consulted for References")
}

func runCheck(cmd *cobra.Command, args []string) error {
	runID := newRunID()
	logger := diag.L().With(zap.String("run", runID), zap.String("cmd", "check"))

	d, err := loadDefs(checkDefsPath)
	if err != nil {
		return err
	}

	t, err := parseArgTerm(args[0])
	if err != nil {
		return err
	}
	ty, err := parseArgTerm(args[1])
	if err != nil {
		return err
	}

	logger.Debug("checking", zap.Stringer("term", t), zap.Stringer("type", ty))

	checker := check.NewChecker(d)
	if err := checker.Check(t, ty); err != nil {
		color.Red("rejected: %s", err)
		return err
	}

	color.Green("accepted")
	return nil
}

// loadDefs reads path as a definitions file when set, and otherwise
// returns an empty table that resolves no References.
func loadDefs(path string) (defs.TypedDefinitions, error) {
	if path == "" {
		return defs.NewMapDefinitions(), nil
	}
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return surface.LoadDefinitions(src)
}

func parseArgTerm(path string) (term.Term, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	t, err := surface.ParseTerm(src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}
