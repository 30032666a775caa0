package chart

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidConfig = errors.New("chart: invalid config")

// Config holds the chart geometry.
type Config struct {
	Width   float64
	Height  float64
	Padding float64
	Tension float64
	Tooltip TooltipConfig
	// LabelEvery selects which sample labels appear on the axis.
	LabelEvery int
}

func DefaultConfig() Config {
	return Config{
		Width:   350,
		Height:  220,
		Padding: 30,
		Tension: DefaultTension,
		Tooltip: TooltipConfig{
			Width:  105,
			Height: 75,
			Margin: 8,
			Offset: 20,
		},
		LabelEvery: 3,
	}
}

// MaxTension is the largest tension that keeps neighbouring control points
// from crossing, so x stays monotonic along the curve.
const MaxTension = 0.5

func (c Config) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"padding", c.Padding},
		{"tension", c.Tension},
		{"tooltip width", c.Tooltip.Width},
		{"tooltip height", c.Tooltip.Height},
		{"tooltip margin", c.Tooltip.Margin},
		{"tooltip offset", c.Tooltip.Offset},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Padding < 0 || 2*c.Padding > c.Height {
		return fmt.Errorf("%w: padding %v", ErrInvalidConfig, c.Padding)
	}
	if c.Tension < 0 || c.Tension > MaxTension {
		return fmt.Errorf("%w: tension %v outside [0, %v]", ErrInvalidConfig, c.Tension, MaxTension)
	}
	if c.Tooltip.Width < 0 || c.Tooltip.Height < 0 || c.Tooltip.Margin < 0 {
		return fmt.Errorf("%w: tooltip %+v", ErrInvalidConfig, c.Tooltip)
	}
	return nil
}

// Controller owns all mutable chart state. Input collaborators call the
// OnGesture* and SelectDataset methods; the frame loop calls Tick.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	cfg    Config
	sets   []Dataset
	byKey  map[string]int
	keys   []string
	active int
	mapper Mapper

	xs  []float64
	ys  []float64
	pts []Point

	animator *Animator
	tracker  *Tracker
	tooltip  *Tooltip

	curve Path
	area  Path
	frame Frame
}

// New builds a chart over datasets. The first dataset is shown, placed without
// animation. All datasets must have the same non-zero length. The controller
// keeps its own copy of datasets.
func New(cfg Config, datasets []Dataset) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	n, err := validateDatasets(datasets)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty datasets", ErrSampleCount)
	}
	datasets = cloneDatasets(datasets)

	c := &Controller{
		cfg:      cfg,
		sets:     datasets,
		byKey:    make(map[string]int, len(datasets)),
		mapper:   NewMapper(cfg.Width, cfg.Height, cfg.Padding, datasets),
		animator: NewAnimator(n),
		tracker:  NewTracker(cfg.Width),
		tooltip:  NewTooltip(cfg.Tooltip, cfg.Width),
		pts:      make([]Point, 0, n),
		ys:       make([]float64, 0, n),
	}
	for i, d := range datasets {
		c.byKey[d.Key] = i
		c.keys = append(c.keys, d.Key)
	}
	c.xs = c.mapper.Xs(make([]float64, 0, n))
	c.ys = c.mapper.Ys(c.ys, datasets[0])
	c.animator.Init(c.ys)
	c.Tick(0)
	return c, nil
}

// SelectDataset morphs the curve to the dataset with the given key.
func (c *Controller) SelectDataset(key string) error {
	i, ok := c.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDataset, key)
	}
	if i == c.active {
		return nil
	}
	c.active = i
	c.ys = c.mapper.Ys(c.ys, c.sets[i])
	c.animator.Retarget(c.ys)
	return nil
}

// Show switches to the dataset with the given key without a morph and
// rebuilds the frame.
func (c *Controller) Show(key string) error {
	i, ok := c.byKey[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDataset, key)
	}
	c.active = i
	c.ys = c.mapper.Ys(c.ys, c.sets[i])
	c.animator.Init(c.ys)
	c.Tick(0)
	return nil
}

func (c *Controller) OnGestureBegin(x float64) {
	c.pts = c.animator.Points(c.pts, c.xs)
	c.tracker.Begin(x, c.pts)
}

// OnGestureUpdate reports whether the nearest sample changed.
func (c *Controller) OnGestureUpdate(x float64) bool {
	c.pts = c.animator.Points(c.pts, c.xs)
	return c.tracker.Update(x, c.pts)
}

func (c *Controller) OnGestureEnd() {
	c.tracker.End()
}

// Tick advances every animation by dt and returns the new frame.
func (c *Controller) Tick(dt time.Duration) *Frame {
	c.animator.Step(dt)
	c.pts = c.animator.Points(c.pts, c.xs)
	BuildCurve(&c.curve, c.pts, c.cfg.Tension)
	BuildArea(&c.area, c.pts, c.cfg.Tension, c.cfg.Width, c.cfg.Height)

	c.tracker.Step(dt, c.pts)
	g := c.tracker.State()

	var s Sample
	if g.Active {
		s = c.sets[c.active].Samples[g.NearestIndex]
	}
	c.tooltip.Step(dt, g, s)

	c.assemble(g)
	return &c.frame
}

// Frame returns the frame produced by the last Tick.
func (c *Controller) Frame() *Frame { return &c.frame }

func (c *Controller) assemble(g GestureState) {
	tt := c.tooltip.State()
	scale := c.tooltip.IndicatorScale()
	ds := c.sets[c.active]

	f := &c.frame
	f.Width = c.cfg.Width
	f.Height = c.cfg.Height
	f.Dataset = ds.Key
	f.Keys = append(f.Keys[:0], c.keys...)
	f.Curve = &c.curve
	f.Area = &c.area
	f.Gesture = g
	f.Tooltip = tt
	f.TooltipText = FormatValue(tt.Value)
	f.Crosshair = Segment{
		A:       Point{X: g.SmoothedX, Y: 0},
		B:       Point{X: g.SmoothedX, Y: c.cfg.Height},
		Opacity: tt.Opacity,
		Color:   colorCrosshair,
	}
	f.Indicator = Indicator{
		Center: Point{X: g.SmoothedX, Y: g.SmoothedY},
		Rings: [4]Ring{
			{Radius: glowRadius * scale, Opacity: g.GlowOpacity * glowOpacity, Color: colorGlow, Radial: true},
			{Radius: haloRadius * scale, Opacity: tt.Opacity, Color: colorHalo},
			{Radius: ringRadius * scale, Opacity: tt.Opacity, Color: colorRing},
			{Radius: centerRadius * scale, Opacity: tt.Opacity, Color: colorCenter},
		},
	}

	f.AxisLabels = f.AxisLabels[:0]
	every := c.cfg.LabelEvery
	if every <= 0 {
		every = 1
	}
	for i := 0; i < len(ds.Samples); i += every {
		f.AxisLabels = append(f.AxisLabels, AxisLabel{X: c.xs[i], Text: ds.Samples[i].Label})
	}
	f.Stats = ds.Stats()
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) Mapper() Mapper { return c.mapper }
func (c *Controller) Active() string { return c.sets[c.active].Key }

// Keys lists the selectable dataset keys in construction order.
func (c *Controller) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Dataset returns a copy of the dataset registered under key.
func (c *Controller) Dataset(key string) (Dataset, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Dataset{}, false
	}
	return c.sets[i].clone(), true
}

// Animating reports whether the next Tick can produce a different frame.
// A held gesture counts as animating.
func (c *Controller) Animating() bool {
	return !c.animator.Settled() || !c.tracker.Settled() || !c.tooltip.Settled()
}
