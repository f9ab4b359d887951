package flame

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// PointerSource reports the latest known cursor position in window pixels.
type PointerSource interface {
	Pointer() mgl32.Vec2
}

// Pointer is a last writer wins PointerSource. It is safe to Set from an
// input callback while a frame reads it.
type Pointer struct {
	pos atomic.Pointer[mgl32.Vec2]
}

func (p *Pointer) Set(x, y float32) {
	p.pos.Store(&mgl32.Vec2{x, y})
}

func (p *Pointer) Pointer() mgl32.Vec2 {
	if v := p.pos.Load(); v != nil {
		return *v
	}
	return mgl32.Vec2{}
}
