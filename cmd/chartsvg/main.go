// Command chartsvg scripts the chart for a while and writes the resulting
// frame as SVG, or as a PNG rasterized by the framebuffer renderer.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"glidechart/chart"
	"glidechart/hal"
	"glidechart/internal/config"
	"glidechart/render"
)

type options struct {
	from    string
	dataset string
	ms      int
	step    int
	x       float64
	release int
	format  string
}

func main() {
	var (
		opts    options
		outPath = flag.String("out", "", "Output file (stdout when empty).")
	)
	flag.StringVar(&opts.from, "from", "", "Dataset shown before the script starts (default: first).")
	flag.StringVar(&opts.dataset, "dataset", "", "Dataset selected at t=0.")
	flag.IntVar(&opts.ms, "ms", 0, "Milliseconds to advance before capturing.")
	flag.IntVar(&opts.step, "step", 16, "Frame step in milliseconds.")
	flag.Float64Var(&opts.x, "x", -1, "Hold a pointer at this chart x from t=0 (negative: no gesture).")
	flag.IntVar(&opts.release, "release", -1, "Release the pointer after this many milliseconds (negative: hold).")
	flag.StringVar(&opts.format, "format", "svg", "svg|png.")
	flag.Parse()

	env, err := config.Load()
	if err != nil {
		fatalf("config: %v", err)
	}

	err = writeOutput(*outPath, func(out io.Writer) error {
		return run(out, env.Chart(), opts)
	})
	if err != nil {
		fatalf("chartsvg: %v", err)
	}
}

// writeOutput runs write against path, or stdout when path is empty. A failed
// close is reported like a failed write.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()
	return write(f)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(out io.Writer, cfg chart.Config, opts options) error {
	if opts.step <= 0 {
		return fmt.Errorf("step out of range: %d", opts.step)
	}
	c, err := chart.New(cfg, chart.DemoDatasets())
	if err != nil {
		return err
	}
	if opts.from != "" {
		if err := c.Show(opts.from); err != nil {
			return err
		}
	}
	if opts.dataset != "" {
		if err := c.SelectDataset(opts.dataset); err != nil {
			return err
		}
	}
	if opts.x >= 0 {
		c.OnGestureBegin(opts.x)
	}

	f := c.Frame()
	step := time.Duration(opts.step) * time.Millisecond
	for t := 0; t < opts.ms; t += opts.step {
		if opts.x >= 0 && opts.release >= 0 && t >= opts.release && t-opts.step < opts.release {
			c.OnGestureEnd()
		}
		f = c.Tick(step)
	}

	switch strings.ToLower(opts.format) {
	case "svg":
		return render.WriteSVG(out, f)
	case "png":
		fb := hal.New(render.FramebufferSize(cfg)).Display().Framebuffer()
		if err := render.New(fb).Draw(f); err != nil {
			return err
		}
		return png.Encode(out, hal.Snapshot(fb))
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}
