package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patrol/internal/config"
)

// Report carries the answers for one grid. A nil answer was not requested.
type Report struct {
	Input    string `json:"input" yaml:"input"`
	Width    int    `json:"width" yaml:"width"`
	Height   int    `json:"height" yaml:"height"`
	Distinct *int   `json:"distinct_positions,omitempty" yaml:"distinct_positions,omitempty"`
	Loops    *int   `json:"loop_obstacles,omitempty" yaml:"loop_obstacles,omitempty"`
}

// writeReport renders r to w in the given format.
func writeReport(w io.Writer, format string, r *Report) error {
	switch format {
	case config.FormatPlain, "":
		if r.Distinct != nil {
			if _, err := fmt.Fprintln(w, *r.Distinct); err != nil {
				return err
			}
		}
		if r.Loops != nil {
			if _, err := fmt.Fprintln(w, *r.Loops); err != nil {
				return err
			}
		}
		return nil

	case config.FormatSummary:
		p := message.NewPrinter(language.English)
		if _, err := p.Fprintf(w, "Grid: %s (%d×%d)\n", r.Input, r.Width, r.Height); err != nil {
			return err
		}
		if r.Distinct != nil {
			if _, err := p.Fprintf(w, "Distinct positions: %d\n", *r.Distinct); err != nil {
				return err
			}
		}
		if r.Loops != nil {
			if _, err := p.Fprintf(w, "Loop-inducing obstacles: %d\n", *r.Loops); err != nil {
				return err
			}
		}
		return nil

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)

	default:
		return fmt.Errorf("unsupported format: %s (supported: plain, summary, yaml, json)", format)
	}
}
