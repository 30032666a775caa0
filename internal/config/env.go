package config

import (
	"fmt"

	"glidechart/chart"

	"github.com/caarlos0/env/v11"
)

// Env is the environment-driven configuration shared by every host.
type Env struct {
	Width      float64 `env:"GLIDECHART_WIDTH"       envDefault:"350"`
	Height     float64 `env:"GLIDECHART_HEIGHT"      envDefault:"220"`
	Padding    float64 `env:"GLIDECHART_PADDING"     envDefault:"30"`
	Tension    float64 `env:"GLIDECHART_TENSION"     envDefault:"0.3"`
	LabelEvery int     `env:"GLIDECHART_LABEL_EVERY" envDefault:"3"`

	TooltipWidth  float64 `env:"GLIDECHART_TOOLTIP_WIDTH"  envDefault:"105"`
	TooltipHeight float64 `env:"GLIDECHART_TOOLTIP_HEIGHT" envDefault:"75"`
	TooltipMargin float64 `env:"GLIDECHART_TOOLTIP_MARGIN" envDefault:"8"`
	TooltipOffset float64 `env:"GLIDECHART_TOOLTIP_OFFSET" envDefault:"20"`

	// Dataset is the key shown first; empty selects the first dataset.
	Dataset string `env:"GLIDECHART_DATASET"`

	WindowScale int    `env:"GLIDECHART_WINDOW_SCALE" envDefault:"2"`
	WebAddr     string `env:"GLIDECHART_WEB_ADDR"     envDefault:"127.0.0.1:8080"`
	WebFPS      int    `env:"GLIDECHART_WEB_FPS"      envDefault:"30"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Env from the process environment.
func Load() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// Chart returns the chart geometry described by e.
func (e Env) Chart() chart.Config {
	return chart.Config{
		Width:   e.Width,
		Height:  e.Height,
		Padding: e.Padding,
		Tension: e.Tension,
		Tooltip: chart.TooltipConfig{
			Width:  e.TooltipWidth,
			Height: e.TooltipHeight,
			Margin: e.TooltipMargin,
			Offset: e.TooltipOffset,
		},
		LabelEvery: e.LabelEvery,
	}
}
