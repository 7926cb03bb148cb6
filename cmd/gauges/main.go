// Command gauges renders the full stock gauge catalog as PNG files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aerodeck/gogauge"
)

func main() {
	var (
		out     = flag.String("out", "images", "output directory")
		size    = flag.Int("size", 400, "image side length in pixels")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	gogauge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	opts := gogauge.DefaultRenderOptions()
	opts.Size = *size

	if err := gogauge.RenderCatalog(*out, opts); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d gauges to %s\n", len(gogauge.Catalog()), *out)
}
