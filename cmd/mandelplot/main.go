// mandelplot samples a region of the complex plane, keeps the points that stay
// bounded under z = z*z + c and plots them as black dots on a white PNG chart
// with a caption and labelled axes. Progress is logged only with -v.
//
// Without flags it renders [-2, 0.5]×[-1.5, 1.5] at 8000 samples per unit,
// 20 iterations, into a 20000×20000 mandelbrot.png.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	mandel "github.com/timelessnesses/mandelbrot.png"
	"github.com/timelessnesses/mandelbrot.png/render"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	outPath := flag.String("o", "", "output PNG path (overrides config)")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	configureLogging(*verbose)
	if err := run(*configPath, *outPath); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("run: %v", err)
	}
}

// configureLogging silences progress logs unless verbose, so that a default
// run prints only the confirmation line.
func configureLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

func run(configPath, outPath string) error {
	cfg := mandel.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = mandel.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if outPath != "" {
		cfg.Output.Path = outPath
	}

	renderer, err := render.FromConfig(cfg.Output)
	if err != nil {
		return err
	}

	start := time.Now()
	log.Printf("sampling %+v at density %d, %d iterations", cfg.Region, cfg.Density, cfg.Iterations)
	n, err := mandel.Plot(cfg, renderer)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	log.Printf("%d stable points drawn in %s", n, time.Since(start))

	fmt.Printf("Plot saved to %s\n", cfg.Output.Path)
	return nil
}
