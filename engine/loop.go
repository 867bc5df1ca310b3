package engine

import (
	"time"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/util"
	"github.com/ushitora-anqou/sdltour/window"
)

type Loop struct {
	wind      window.Window
	scene     Scene
	pacer     window.Pacer
	frame     Frame
	started   bool
	startedAt time.Duration
	fps       *util.TickCounter
	fpsMarker time.Duration
}

func NewLoop(wind window.Window, scene Scene, pacer window.Pacer) *Loop {
	return &Loop{
		wind:  wind,
		scene: scene,
		pacer: pacer,
		fps:   util.NewTickCounter(constant.TARGET_FPS),
	}
}

func (l *Loop) Load() error {
	return l.scene.Load(l.wind)
}

func (l *Loop) Close() {
	l.scene.Close()
}

// Frames returns how many frames have been updated so far.
func (l *Loop) Frames() uint64 {
	return l.frame.Number
}

// Tick handles input and updates the scene. It returns false as soon as a
// quit request or an escape key press is seen; the scene is not touched any
// further in that frame.
func (l *Loop) Tick() (bool, error) {
	if !l.started {
		l.started = true
		l.startedAt = l.wind.Ticks()
	}

	for ev := l.wind.PollEvent(); ev != nil; ev = l.wind.PollEvent() {
		switch ev := ev.(type) {
		case window.QuitEvent:
			return false, nil
		case window.KeyEvent:
			if ev.Down && ev.Key == window.KeyEscape {
				return false, nil
			}
		}
		if err := l.scene.HandleEvent(ev, l.wind); err != nil {
			return false, err
		}
	}

	l.frame.Keys = l.wind.KeyState()
	l.frame.Elapsed = l.wind.Ticks() - l.startedAt
	l.frame.Width, l.frame.Height = l.wind.Size()
	l.scene.Update(&l.frame)
	if l.frame.quit {
		return false, nil
	}
	l.frame.Number++
	l.traceFPS()
	return true, nil
}

// Render composes one frame: clear, let the scene draw, present.
func (l *Loop) Render() error {
	if err := l.wind.Clear(); err != nil {
		return err
	}
	if err := l.scene.Draw(l.wind); err != nil {
		return err
	}
	l.wind.Present()
	return nil
}

func (l *Loop) Run() error {
	for {
		running, err := l.Tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		if err := l.Render(); err != nil {
			return err
		}
		if l.pacer != nil {
			l.pacer.MaySleep()
		}
	}
}

func (l *Loop) traceFPS() {
	if !util.TraceEnabled() || !l.fps.Tick(1) {
		return
	}
	elapsed := l.frame.Elapsed - l.fpsMarker
	l.fpsMarker = l.frame.Elapsed
	if elapsed > 0 {
		util.Trace("loop: frame %d, %.1f fps", l.frame.Number, constant.TARGET_FPS/elapsed.Seconds())
	}
}
