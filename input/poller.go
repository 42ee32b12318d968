// Package input keeps the latest window mouse state so it can be polled once per frame.
package input

import (
	"github.com/g3n/engine/core"
	"github.com/g3n/engine/window"
)

// Subscriber is implemented by the g3n application window and core.Dispatcher.
type Subscriber interface {
	Subscribe(evname string, cb core.Callback)
}

type Poller struct {
	x, y          float32
	width, height int
	held          map[window.MouseButton]bool
}

// NewPoller subscribes to cursor and mouse button events of src.
func NewPoller(src Subscriber) *Poller {
	p := &Poller{held: make(map[window.MouseButton]bool)}
	src.Subscribe(window.OnCursor, p.onCursor)
	src.Subscribe(window.OnMouseDown, p.onMouseDown)
	src.Subscribe(window.OnMouseUp, p.onMouseUp)
	return p
}

func (p *Poller) onCursor(evname string, ev interface{}) {
	cev, ok := ev.(*window.CursorEvent)
	if !ok {
		return
	}
	p.x, p.y = cev.Xpos, cev.Ypos
}

func (p *Poller) onMouseDown(evname string, ev interface{}) {
	mev, ok := ev.(*window.MouseEvent)
	if !ok {
		return
	}
	p.x, p.y = mev.Xpos, mev.Ypos
	p.held[mev.Button] = true
}

func (p *Poller) onMouseUp(evname string, ev interface{}) {
	mev, ok := ev.(*window.MouseEvent)
	if !ok {
		return
	}
	p.x, p.y = mev.Xpos, mev.Ypos
	delete(p.held, mev.Button)
}

// SetViewport records the current window size in pixels.
func (p *Poller) SetViewport(width, height int) {
	p.width, p.height = width, height
}

func (p *Poller) CursorPosition() (float32, float32) { return p.x, p.y }

// ButtonHeld reports whether the mouse button with the given index is down.
// Index 0 is the left button.
func (p *Poller) ButtonHeld(button int) bool {
	return p.held[window.MouseButton(button)]
}

func (p *Poller) ViewportSize() (int, int) { return p.width, p.height }
