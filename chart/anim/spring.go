package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring the way UI animation runtimes do:
// stiffness k, damping coefficient c and mass m.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	// Rest is the distance and speed below which the spring snaps to its target.
	Rest float64
}

// DefaultSpring is heavily overdamped: it glides without overshoot.
var DefaultSpring = SpringConfig{Stiffness: 600, Damping: 90, Mass: 1, Rest: 0.001}

func (c SpringConfig) harmonicaParams() (angularFrequency, dampingRatio float64) {
	if c.Stiffness <= 0 {
		c = DefaultSpring
	}
	m := c.Mass
	if m <= 0 {
		m = 1
	}
	k := c.Stiffness
	angularFrequency = math.Sqrt(k / m)
	dampingRatio = c.Damping / (2 * math.Sqrt(k*m))
	return angularFrequency, dampingRatio
}

// Spring chases a target with damped harmonic motion.
type Spring struct {
	cfg    SpringConfig
	h      harmonica.Spring
	dt     time.Duration
	pos    float64
	vel    float64
	target float64
}

func NewSpring(cfg SpringConfig) Spring {
	return Spring{cfg: cfg}
}

// Set places the spring at rest on v.
func (s *Spring) Set(v float64) {
	s.pos = v
	s.vel = 0
	s.target = v
}

// To moves the equilibrium point. Position and velocity are kept.
func (s *Spring) To(target float64) { s.target = target }

// Step integrates the spring over dt.
func (s *Spring) Step(dt time.Duration) {
	if dt <= 0 || s.Settled() {
		return
	}
	if dt != s.dt {
		freq, ratio := s.cfg.harmonicaParams()
		s.h = harmonica.NewSpring(dt.Seconds(), freq, ratio)
		s.dt = dt
	}
	s.pos, s.vel = s.h.Update(s.pos, s.vel, s.target)
	rest := s.cfg.Rest
	if rest <= 0 {
		rest = DefaultSpring.Rest
	}
	if math.Abs(s.pos-s.target) < rest && math.Abs(s.vel) < rest {
		s.pos = s.target
		s.vel = 0
	}
}

func (s *Spring) Value() float64    { return s.pos }
func (s *Spring) Velocity() float64 { return s.vel }
func (s *Spring) Target() float64   { return s.target }
func (s *Spring) Settled() bool     { return s.pos == s.target && s.vel == 0 }
