package config

import (
	"errors"
	"strings"
	"testing"

	"glidechart/chart"
)

func TestLoadDefaultsMatchChartDefaults(t *testing.T) {
	e, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := e.Chart(), chart.DefaultConfig(); got != want {
		t.Fatalf("chart config %+v, want %+v", got, want)
	}
	if e.WebFPS != 30 || e.WebAddr != "127.0.0.1:8080" || e.WindowScale != 2 {
		t.Fatalf("unexpected host defaults: %+v", e)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GLIDECHART_WIDTH", "500")
	t.Setenv("GLIDECHART_TOOLTIP_MARGIN", "4")
	t.Setenv("GLIDECHART_DATASET", "2026")
	t.Setenv("GLIDECHART_WEB_FPS", "60")

	e, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c := e.Chart()
	if c.Width != 500 || c.Tooltip.Margin != 4 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if e.Dataset != "2026" || e.WebFPS != 60 {
		t.Fatalf("overrides not applied: %+v", e)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("GLIDECHART_HEIGHT", "tall")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestNonFiniteGeometryRejectedByChart(t *testing.T) {
	for _, kv := range [][2]string{
		{"GLIDECHART_PADDING", "NaN"},
		{"GLIDECHART_WIDTH", "+Inf"},
		{"GLIDECHART_TENSION", "NaN"},
		{"GLIDECHART_TOOLTIP_WIDTH", "Inf"},
	} {
		t.Run(kv[0], func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			e, err := Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if _, err := chart.New(e.Chart(), chart.DemoDatasets()); !errors.Is(err, chart.ErrInvalidConfig) {
				t.Fatalf("chart.New err=%v, want ErrInvalidConfig", err)
			}
		})
	}
}
