package chart

import (
	"math"
	"time"

	"glidechart/chart/anim"
)

const (
	tooltipInDuration  = 150 * time.Millisecond
	tooltipOutDuration = 200 * time.Millisecond

	// hiddenOpacity is the opacity below which the tooltip counts as gone.
	hiddenOpacity = 0.001
)

// TooltipConfig sizes the tooltip box and keeps it off the chart edges.
type TooltipConfig struct {
	Width  float64
	Height float64
	Margin float64
	// Offset is the gap between the box bottom and the indicator dot.
	Offset float64
}

// TooltipState is the tooltip geometry and content for one frame.
type TooltipState struct {
	Visible bool
	Left    float64
	Top     float64
	Width   float64
	Height  float64
	Opacity float64
	Scale   float64
	Label   string
	Value   float64
}

// Tooltip derives the tooltip box from the gesture state.
//
// The box position springs towards its clamped target. Opacity and scale grow
// in fast (short tween, spring) and shrink slower with an accelerating curve.
type Tooltip struct {
	cfg        TooltipConfig
	chartWidth float64

	left      anim.Value
	top       anim.Value
	opacity   anim.Value
	scale     anim.Value
	indicator anim.Value

	active bool
	label  string
	value  float64
}

func NewTooltip(cfg TooltipConfig, chartWidth float64) *Tooltip {
	return &Tooltip{
		cfg:        cfg,
		chartWidth: chartWidth,
		left:       anim.NewValue(cfg.Margin, anim.DefaultSpring),
		top:        anim.NewValue(cfg.Margin, anim.DefaultSpring),
		opacity:    anim.NewValue(0, anim.DefaultSpring),
		scale:      anim.NewValue(0, anim.DefaultSpring),
		indicator:  anim.NewValue(0, anim.DefaultSpring),
	}
}

// Step advances the tooltip one frame. s is the sample under the crosshair and
// is only read while g is active.
func (tp *Tooltip) Step(dt time.Duration, g GestureState, s Sample) {
	left := tp.clampLeft(g.SmoothedX - tp.cfg.Width/2)
	top := math.Max(tp.cfg.Margin, g.SmoothedY-tp.cfg.Height-tp.cfg.Offset)

	switch {
	case g.Active && !tp.active:
		if tp.opacity.Value() <= hiddenOpacity {
			tp.left.Set(left)
			tp.top.Set(top)
		}
		tp.opacity.Animate(1, tooltipInDuration, anim.OutCubic)
		tp.scale.Spring(1)
		tp.indicator.Spring(1)
	case !g.Active && tp.active:
		tp.opacity.Animate(0, tooltipOutDuration, anim.InCubic)
		tp.scale.Animate(0, tooltipOutDuration, anim.InCubic)
		tp.indicator.Spring(0)
	}
	tp.active = g.Active
	if g.Active {
		tp.label = s.Label
		tp.value = s.Value
	}

	tp.left.Spring(left)
	tp.top.Spring(top)

	tp.left.Step(dt)
	tp.top.Step(dt)
	tp.opacity.Step(dt)
	tp.scale.Step(dt)
	tp.indicator.Step(dt)
}

func (tp *Tooltip) State() TooltipState {
	op := tp.opacity.Value()
	return TooltipState{
		Visible: tp.active || op > hiddenOpacity,
		Left:    tp.clampLeft(tp.left.Value()),
		Top:     math.Max(tp.cfg.Margin, tp.top.Value()),
		Width:   tp.cfg.Width,
		Height:  tp.cfg.Height,
		Opacity: op,
		Scale:   tp.scale.Value(),
		Label:   tp.label,
		Value:   tp.value,
	}
}

func (tp *Tooltip) Settled() bool {
	return !tp.active && tp.left.Settled() && tp.top.Settled() &&
		tp.opacity.Settled() && tp.scale.Settled() && tp.indicator.Settled()
}

// IndicatorScale is the grow factor of the indicator dot rings.
func (tp *Tooltip) IndicatorScale() float64 { return tp.indicator.Value() }

// clampLeft keeps the box inside the chart. When the chart is narrower than
// the box plus margins, the left margin wins.
func (tp *Tooltip) clampLeft(x float64) float64 {
	hi := tp.chartWidth - tp.cfg.Width - tp.cfg.Margin
	return math.Max(tp.cfg.Margin, math.Min(x, hi))
}
