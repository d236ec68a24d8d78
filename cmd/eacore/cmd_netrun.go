package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vic/eacore/pkg/compile"
	"github.com/vic/eacore/pkg/diag"
	"github.com/vic/eacore/pkg/stratify"
)

var (
	netRunDefsPath string
	netRunMax      int
)

var netRunCmd = &cobra.Command{
	Use:   "net-run <term-file>",
	Short: "stratify a term, compile it to an interaction net, reduce it, and read the result back",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetRun,
}

func init() {
	netRunCmd.Flags().StringVar(&netRunDefsPath, "defs", "", "definitions file consulted for References")
	netRunCmd.Flags().IntVar(&netRunMax, "max-rewrites", -1, "stop after this many rewrites (-1 drains to completion)")
}

func runNetRun(cmd *cobra.Command, args []string) error {
	runID := newRunID()
	logger := diag.L().With(zap.String("run", runID), zap.String("cmd", "net-run"))

	d, err := loadDefs(netRunDefsPath)
	if err != nil {
		return err
	}
	t, err := parseArgTerm(args[0])
	if err != nil {
		return err
	}

	proof, err := stratify.Prove(t, d)
	if err != nil {
		return fmt.Errorf("not stratified: %w", err)
	}

	n, err := compile.BuildNet[uint32](proof)
	if err != nil {
		return err
	}

	rewrites := n.Reduce(netRunMax)
	logger.Debug("reduced", zap.Int("rewrites", rewrites), zap.Int("agents", len(n.Agents)))

	result, err := compile.ReadTerm[uint32](n)
	if err != nil {
		return err
	}

	fmt.Println(result.String())
	return nil
}
