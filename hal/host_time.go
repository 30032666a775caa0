//go:build !tinygo

package hal

import "time"

type hostTime struct {
	ch  chan uint64
	seq uint64

	now  func() time.Time
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes ticks for the wall time elapsed since the previous call.
// The first call publishes min ticks so consumers see an initial sample.
func (t *hostTime) step(min uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.publish(min)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	n := uint64(t.acc / TickDuration)
	if n == 0 {
		return
	}
	t.acc %= TickDuration
	t.publish(n)
}

func (t *hostTime) publish(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
