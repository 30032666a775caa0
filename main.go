package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"glidechart/app"
	"glidechart/chart"
	"glidechart/hal"
	"glidechart/internal/buildinfo"
	"glidechart/internal/config"
	"glidechart/render"
	"glidechart/web"
)

func main() {
	var cfg hal.HeadlessConfig
	var webMode, demo, version bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.BoolVar(&demo, "demo", false, "Script a gesture sweep in headless mode.")
	flag.BoolVar(&webMode, "web", false, "Serve the browser preview instead of opening a window.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println("glidechart " + buildinfo.Long())
		return
	}

	env, err := config.Load()
	if err != nil {
		fatal(err)
	}
	appCfg := app.Config{Chart: env.Chart(), Dataset: env.Dataset}
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, appCfg) }

	width, height := render.FramebufferSize(env.Chart())

	switch {
	case webMode:
		if err := serveWeb(env); err != nil {
			fatal(err)
		}
	case cfg.Enabled:
		cfg.Width, cfg.Height = width, height
		if demo {
			cfg.Script = demoScript(env.Chart())
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
	default:
		wc := hal.WindowConfig{Width: width, Height: height, Scale: env.WindowScale}
		if err := hal.RunWindow(newApp, wc); err != nil {
			fatal(err)
		}
	}
}

func serveWeb(env config.Env) error {
	s, err := newWebServer(env, hal.NewLogger(os.Stdout))
	if err != nil {
		return err
	}
	return s.Start(env.WebAddr)
}

func newWebServer(env config.Env, log hal.Logger) (*web.Server, error) {
	c, err := chart.New(env.Chart(), chart.DemoDatasets())
	if err != nil {
		return nil, err
	}
	if env.Dataset != "" {
		if err := c.Show(env.Dataset); err != nil {
			return nil, err
		}
	}
	return web.NewServer(c, log, env.WebFPS)
}

// demoScript presses the middle of the canvas after half a second, sweeps to
// both edges, and releases.
func demoScript(cc chart.Config) []hal.ScriptedPointer {
	y := float64(render.ChartTop) + cc.Height/2
	script := []hal.ScriptedPointer{
		{Tick: 30, Event: hal.PointerEvent{Phase: hal.PointerBegin, X: cc.Width / 2, Y: y}},
	}
	tick := uint64(30)
	move := func(x float64) {
		tick += 2
		script = append(script, hal.ScriptedPointer{Tick: tick, Event: hal.PointerEvent{Phase: hal.PointerMove, X: x, Y: y}})
	}
	for x := cc.Width / 2; x >= 0; x -= 8 {
		move(x)
	}
	for x := 0.0; x <= cc.Width; x += 8 {
		move(x)
	}
	script = append(script, hal.ScriptedPointer{Tick: tick + 30, Event: hal.PointerEvent{Phase: hal.PointerEnd, X: cc.Width, Y: y}})
	return script
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
