//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
)

// ScriptedPointer injects a pointer event once the headless runner reaches Tick.
type ScriptedPointer struct {
	Tick  uint64
	Event PointerEvent
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled  bool
	Width    int
	Height   int
	Hz       int
	Ticks    uint64
	Script   []ScriptedPointer
	Snapshot string
}

// RunHeadless runs the app without opening a window.
//
// Script entries must be ordered by Tick. When Snapshot is set the final
// framebuffer is written there as a PNG.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	script := cfg.Script
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			for len(script) > 0 && script[0].Tick <= tick {
				h.ptr.push(script[0].Event)
				script = script[1:]
			}
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				h.logger.WriteLineString(fmt.Sprintf("headless: %d ticks, %d frames", tick, h.fb.presented()))
				return writeSnapshot(h.fb, cfg.Snapshot)
			}
		}
	}
}

func writeSnapshot(fb Framebuffer, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, Snapshot(fb)); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
