package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/internal/logging"
	"github.com/katalvlaran/patrol/internal/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:     "watch <input>",
	Aliases: []string{"w"},
	Short:   "Re-solve the input every time it changes",
	Long: `Watch solves the input once, then again after every saved change, until
interrupted. Parse errors are reported and watching continues.

Examples:
  patrol watch input.txt
  patrol watch --format summary --log-level info input.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.NewLogger(cfg.LoggerConfig()).WithComponent("watch")
	path := args[0]
	out := cmd.OutOrStdout()

	w, err := watch.New(path, cfg.Watch.Debounce, log)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx := cmd.Context()
	if err := solveFile(ctx, out, path, cfg, log); err != nil {
		log.Warn(ctx, err, "initial solve failed")
	}
	log.Info(ctx, "watching", "path", w.Path())

	return w.Run(ctx, func(ctx context.Context, ev watch.ChangeEvent) error {
		if ev.Type == watch.EventTypeDeleted || ev.Type == watch.EventTypeRenamed {
			log.Info(ctx, "input removed, waiting for it to return", "event", ev.Type.String())
			return nil
		}
		return solveFile(ctx, out, path, cfg, log)
	})
}

// solveFile solves the grid at path and writes the report to out.
func solveFile(ctx context.Context, out io.Writer, path string, cfg *config.Config, log logging.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	report, err := solve(ctx, f, path, cfg, log)
	if err != nil {
		return err
	}
	return writeReport(out, cfg.Solve.Format, report)
}
