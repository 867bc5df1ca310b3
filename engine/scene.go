package engine

import (
	"time"

	"github.com/ushitora-anqou/sdltour/window"
)

// Scene is what a Loop drives. Load runs once before the first frame and
// Close once after the last one, even when Load failed half way.
type Scene interface {
	Load(loader window.Loader) error
	HandleEvent(ev window.Event, r window.Renderer) error
	Update(frame *Frame)
	Draw(r window.Renderer) error
	Close()
}

// Frame is the per-frame input of Scene.Update.
type Frame struct {
	Number        uint64
	Elapsed       time.Duration
	Keys          window.KeyState
	Width, Height int32
	quit          bool
}

// Quit ends the loop after the current update.
func (f *Frame) Quit() {
	f.quit = true
}
