//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll turns the left mouse button or the first touch into a gesture.
// Positions are already in framebuffer coordinates because Layout reports the
// framebuffer size.
func (p *hostPointer) poll() {
	if !p.down {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			p.begin(false, 0, x, y)
			return
		}
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			x, y := ebiten.TouchPosition(ids[0])
			p.begin(true, int(ids[0]), x, y)
		}
		return
	}

	if p.touch {
		id := ebiten.TouchID(p.touchID)
		if inpututil.IsTouchJustReleased(id) {
			p.end()
			return
		}
		p.move(ebiten.TouchPosition(id))
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		!ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.end()
		return
	}
	p.move(ebiten.CursorPosition())
}

func (p *hostPointer) begin(touch bool, id, x, y int) {
	p.down = true
	p.touch = touch
	p.touchID = id
	p.lastX, p.lastY = x, y
	p.push(PointerEvent{Phase: PointerBegin, X: float64(x), Y: float64(y)})
}

func (p *hostPointer) move(x, y int) {
	if x == p.lastX && y == p.lastY {
		return
	}
	p.lastX, p.lastY = x, y
	p.push(PointerEvent{Phase: PointerMove, X: float64(x), Y: float64(y)})
}

func (p *hostPointer) end() {
	p.down = false
	p.touch = false
	p.push(PointerEvent{Phase: PointerEnd, X: float64(p.lastX), Y: float64(p.lastY)})
}
