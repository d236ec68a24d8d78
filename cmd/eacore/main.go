// Package main implements the eacore CLI, a thin driver around the
// evaluator packages: nothing in pkg/ depends on this binary, so every
// subcommand below is just parsing flags, loading source text through
// internal/surface, and calling straight into pkg/check, pkg/reduce,
// pkg/stratify, pkg/compile.
//
// Structure (command registration split by file, the way codenerd's
// cmd/nerd spreads cmd_*.go across the package) and logger wiring
// (zap, toggled by --debug, synced on exit) are both grounded on that
// repo's cmd/nerd/main.go rootCmd/PersistentPreRunE/PersistentPostRun
// pattern; the Red/Green diagnostic coloring on kanso's main.go use of
// fatih/color.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/vic/eacore/pkg/diag"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "eacore",
	Short: "eacore checks, normalizes and net-reduces dependently-typed terms",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.InfoLevel
		if debug {
			level = zapcore.DebugLevel
		}
		return diag.SetLevel(level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		diag.Sync()
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose development logging")
	rootCmd.AddCommand(checkCmd, normalizeCmd, netRunCmd)

	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

// fail prints err in red and exits non-zero, the same failure shape
// every subcommand below uses.
func fail(err error) {
	color.Red("error: %s", err)
	os.Exit(1)
}

// newRunID mints a correlation id for one invocation's log lines,
// mirroring codenerd's practice of tagging a unit of work with a
// short uuid prefix rather than a full 36-character string.
func newRunID() string {
	return uuid.New().String()[:8]
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
