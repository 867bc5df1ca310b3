//go:build sdl2 && !ebiten

package main

import (
	"runtime"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/demo"
	"github.com/ushitora-anqou/sdltour/engine"
	"github.com/ushitora-anqou/sdltour/window"
)

// SDL wants its calls on the main thread.
func init() {
	runtime.LockOSThread()
}

func runWindowed(cfg *config, d *demo.Demo) error {
	// Initialize SDL and what the demo needs; torn down whatever happens below
	stack := window.SDLSubsystems(d.Features)
	defer stack.Release()
	if err := stack.Acquire(); err != nil {
		return err
	}

	// Create a window
	wind, err := window.NewSDLWindow(constant.WINDOW_TITLE+": "+d.Title, constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT)
	if err != nil {
		return err
	}
	defer wind.Close()

	return play(engine.NewLoop(wind, d, newPacer(cfg, wind)))
}
