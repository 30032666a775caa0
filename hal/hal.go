package hal

import "time"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerPhase is the lifecycle stage of a single-pointer gesture.
type PointerPhase uint8

const (
	PointerBegin PointerPhase = iota + 1
	PointerMove
	PointerEnd
)

func (p PointerPhase) String() string {
	switch p {
	case PointerBegin:
		return "begin"
	case PointerMove:
		return "move"
	case PointerEnd:
		return "end"
	default:
		return "unknown"
	}
}

// PointerEvent is one pointer sample in framebuffer coordinates.
//
// A gesture is always Begin, any number of Move, then End. Cancellation is
// reported as End.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
}

// Pointer provides mouse or touch events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// TickDuration is the wall time covered by one tick of the Time stream.
const TickDuration = time.Millisecond

// Time provides a base tick stream carrying a monotonically increasing
// sequence number. Ticks may be dropped when the consumer lags, so consumers
// derive elapsed time from the sequence rather than from the count received.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the chart app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
