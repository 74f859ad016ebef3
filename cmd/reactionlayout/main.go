// Command reactionlayout loads a reaction-diagram fixture, runs it through
// the layout engine, and writes the resulting SVG to disk.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bioreact/rxnlayout/pkg/fixture"
	"github.com/bioreact/rxnlayout/pkg/render"
	"github.com/bioreact/rxnlayout/pkg/rlayout"
	"github.com/bioreact/rxnlayout/pkg/textmetrics"
)

const version = "1.0.0"

var (
	fixturePath = flag.String("fixture", "", "Path to a YAML reaction fixture (required)")
	configPath  = flag.String("config", "", "Path to a YAML engine config file (optional)")
	outputPath  = flag.String("output", "", "Output SVG path (default: <fixture>.svg)")
	margin      = flag.Int("margin", 40, "Canvas margin, in layout units")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("reactionlayout version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printUsage()
		os.Exit(0)
	}
	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -fixture flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *configPath != "" {
		if *verbose {
			fmt.Printf("Loading config from %s\n", *configPath)
		}
		if _, err := rlayout.LoadConfig(*configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if *verbose {
		fmt.Printf("Loading fixture from %s\n", *fixturePath)
	}
	doc, err := fixture.Load(*fixturePath)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	in, err := doc.ToInput()
	if err != nil {
		return fmt.Errorf("failed to convert fixture: %w", err)
	}

	start := time.Now()
	layout, err := rlayout.Compute(in, textmetrics.Stub{})
	if err != nil {
		return fmt.Errorf("layout computation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Computed layout in %v\n", elapsed)
		fmt.Printf("  Entities: %d\n", len(layout.Entities))
		fmt.Printf("  Compartments: %d\n", len(layout.Compartments))
		fmt.Printf("  Bounds: %vx%v\n", layout.Bounds.W, layout.Bounds.H)
	}

	out := *outputPath
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(*fixturePath), filepath.Ext(*fixturePath))
		out = base + ".svg"
	}

	opts := render.DefaultOptions()
	opts.Margin = *margin

	if *verbose {
		fmt.Printf("Writing SVG to %s\n", out)
	}
	if err := render.SaveToFile(layout, out, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}

	fmt.Printf("Successfully rendered %s\n", out)
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: reactionlayout -fixture <path> [-config <path>] [-output <path>]")
	flag.PrintDefaults()
}
