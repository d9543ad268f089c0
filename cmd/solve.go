package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/internal/logging"
	"github.com/katalvlaran/patrol/patrol"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:     "solve [input]",
	Aliases: []string{"s"},
	Short:   "Print distinct cells covered and loop-inducing obstacle count",
	Long: `Solve reads a grid from the named file, or from stdin when the file is
"-" or omitted, and prints one answer per line.

Examples:
  patrol solve input.txt               # both answers
  patrol solve --part 2 input.txt      # loop-inducing obstacles only
  patrol solve --format summary in.txt # labelled, human-readable output
  patrol solve --profile cpu in.txt    # write cpu.pprof`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.NewLogger(cfg.LoggerConfig()).WithComponent("solve")

	if cfg.Solve.Profile != "" {
		defer startProfile(cfg.Solve.Profile).Stop()
	}

	name := "-"
	if len(args) == 1 {
		name = args[0]
	}
	in, closeInput, err := openInput(cmd, name)
	if err != nil {
		return err
	}
	defer closeInput()

	report, err := solve(cmd.Context(), in, name, cfg, log)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), cfg.Solve.Format, report)
}

// openInput returns the reader for name; "-" is the command's stdin.
func openInput(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// solve parses one grid and computes the answers selected by cfg.Solve.Part.
func solve(ctx context.Context, in io.Reader, name string, cfg *config.Config, log logging.Logger) (*Report, error) {
	g, err := grid.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	log = log.With("input", name)
	log.Debug(ctx, "grid parsed",
		"width", g.Width, "height", g.Height,
		"obstacles", g.Obstacles().Len(), "start", g.Start.String())

	workers := cfg.EffectiveWorkers()
	area, err := patrol.NewArea(g, patrol.WithContext(ctx), patrol.WithWorkers(workers))
	if err != nil {
		return nil, err
	}

	report := &Report{Input: name, Width: g.Width, Height: g.Height}
	if cfg.Solve.Part != 2 {
		start := time.Now()
		n := area.DistinctPositionsVisited()
		report.Distinct = &n
		log.Debug(ctx, "distinct positions counted", "distinct", n, "elapsed", time.Since(start))
	}
	if cfg.Solve.Part != 1 {
		start := time.Now()
		n, err := area.CountLoopInducingObstacles()
		if err != nil {
			return nil, err
		}
		report.Loops = &n
		log.Debug(ctx, "loop obstacles counted", "loops", n, "workers", workers, "elapsed", time.Since(start))
	}
	log.Info(ctx, "solved")
	return report, nil
}

// startProfile begins a pprof profile of the given kind in the working
// directory.
func startProfile(kind string) interface{ Stop() } {
	mode := profile.CPUProfile
	if kind == "mem" {
		mode = profile.MemProfile
	}
	return profile.Start(mode, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook)
}
