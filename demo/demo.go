// Package demo holds the tutorial steps. Every step is a Demo made of parts
// stacked back to front: the first part is drawn first.
package demo

import (
	"github.com/ushitora-anqou/sdltour/engine"
	"github.com/ushitora-anqou/sdltour/util"
	"github.com/ushitora-anqou/sdltour/window"
)

type loader interface {
	load(l window.Loader, assets string) error
}

type eventHandler interface {
	handleEvent(ev window.Event, r window.Renderer) error
}

type updater interface {
	update(frame *engine.Frame)
}

type drawer interface {
	draw(r window.Renderer) error
}

type closer interface {
	close()
}

// Demo is one step of the tour. Features names the optional libraries its
// parts load assets with, so a backend can leave the others uninitialized.
type Demo struct {
	Number   int
	Slug     string
	Title    string
	Features window.Feature
	assets   string
	parts    []interface{}
}

func (d *Demo) Load(l window.Loader) error {
	for _, p := range d.parts {
		if pl, ok := p.(loader); ok {
			if err := pl.load(l, d.assets); err != nil {
				return err
			}
		}
	}
	util.Trace("demo: %s loaded", d.Slug)
	return nil
}

func (d *Demo) HandleEvent(ev window.Event, r window.Renderer) error {
	for _, p := range d.parts {
		if ph, ok := p.(eventHandler); ok {
			if err := ph.handleEvent(ev, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Demo) Update(frame *engine.Frame) {
	for _, p := range d.parts {
		if pu, ok := p.(updater); ok {
			pu.update(frame)
		}
	}
}

func (d *Demo) Draw(r window.Renderer) error {
	for _, p := range d.parts {
		if pd, ok := p.(drawer); ok {
			if err := pd.draw(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close releases the assets in reverse order of loading.
func (d *Demo) Close() {
	for i := len(d.parts) - 1; i >= 0; i-- {
		if pc, ok := d.parts[i].(closer); ok {
			pc.close()
		}
	}
	util.Trace("demo: %s closed", d.Slug)
}
