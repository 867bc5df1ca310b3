//go:build ebiten && !sdl2

package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/demo"
	"github.com/ushitora-anqou/sdltour/engine"
	"github.com/ushitora-anqou/sdltour/window"
)

type Game struct {
	loop *engine.Loop
	wind *window.EbitenWindow
	err  error
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.wind.Size()
	return int(w), int(h)
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	g.wind.Refresh()
	running, err := g.loop.Tick()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

// Draw cannot fail in ebiten; an error is reported by the next Update.
func (g *Game) Draw(screen *ebiten.Image) {
	g.wind.Bind(screen)
	if err := g.loop.Render(); err != nil && g.err == nil {
		g.err = err
	}
}

// ebiten paces the loop itself, so the configured pacer is not used.
func runWindowed(cfg *config, d *demo.Demo) error {
	stack := window.EbitenSubsystems(d.Features, constant.WINDOW_TITLE+": "+d.Title, constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT)
	defer stack.Release()
	if err := stack.Acquire(); err != nil {
		return err
	}

	wind, err := window.NewEbitenWindow(constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT)
	if err != nil {
		return err
	}
	defer wind.Close()

	loop := engine.NewLoop(wind, d, nil)
	defer loop.Close()
	if err := loop.Load(); err != nil {
		return err
	}
	return ebiten.RunGame(&Game{loop: loop, wind: wind})
}
