package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glidechart/chart"
	"glidechart/render"
)

func TestRunWritesSVG(t *testing.T) {
	var buf bytes.Buffer
	opts := options{dataset: "2026", ms: 500, step: 16, x: 120, release: -1, format: "svg"}
	if err := run(&buf, chart.DefaultConfig(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "<svg") || !strings.HasSuffix(s, "</svg>") {
		t.Fatalf("not an svg document: %.60q", s)
	}
	// x=120 is nearest to May (x≈127.3); 2026 has 65 there.
	if !strings.Contains(s, ">$65k</text>") || !strings.Contains(s, ">May</text>") {
		t.Fatalf("tooltip for May 2026 missing")
	}
}

func TestRunReleaseHidesTooltip(t *testing.T) {
	var buf bytes.Buffer
	opts := options{ms: 800, step: 16, x: 120, release: 100, format: "svg"}
	if err := run(&buf, chart.DefaultConfig(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(buf.String(), "<circle") {
		t.Fatalf("indicator should be gone after release")
	}
}

func TestRunWritesPNG(t *testing.T) {
	var buf bytes.Buffer
	opts := options{ms: 100, step: 16, x: -1, release: -1, format: "png"}
	if err := run(&buf, chart.DefaultConfig(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("bounds=%v", b)
	}
}

func TestRunPNGFollowsConfigSize(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.Width, cfg.Height = 600, 300
	var buf bytes.Buffer
	opts := options{ms: 500, step: 16, x: 590, release: -1, format: "png"}
	if err := run(&buf, cfg, opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w, h := render.FramebufferSize(cfg)
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h || w != 600 || h != render.ChartTop+300+84 {
		t.Fatalf("bounds=%v, want %dx%d", b, w, h)
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	err := writeOutput(path, func(w io.Writer) error {
		return run(w, chart.DefaultConfig(), options{step: 16, x: -1, release: -1, format: "svg"})
	})
	if err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(b), "<svg") || !strings.HasSuffix(string(b), "</svg>") {
		t.Fatalf("file is not a complete svg: %.60q", b)
	}

	boom := errors.New("boom")
	if err := writeOutput(path, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("write error lost: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "frame.svg")
	if err := writeOutput(missing, func(io.Writer) error { return nil }); err == nil || !strings.Contains(err.Error(), "create") {
		t.Fatalf("create error = %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, chart.DefaultConfig(), options{dataset: "1999", step: 16, x: -1, format: "svg"})
	if !errors.Is(err, chart.ErrUnknownDataset) {
		t.Fatalf("err=%v, want ErrUnknownDataset", err)
	}
	if err := run(&buf, chart.DefaultConfig(), options{step: 16, x: -1, format: "gif"}); err == nil {
		t.Fatal("expected unknown format error")
	}
	if err := run(&buf, chart.DefaultConfig(), options{step: 0, format: "svg"}); err == nil {
		t.Fatal("expected step error")
	}
}
