package demo

import (
	"math/rand"
	"path/filepath"
	"time"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/engine"
	"github.com/ushitora-anqou/sdltour/util"
	"github.com/ushitora-anqou/sdltour/window"
)

func isKeyDown(ev window.Event, key window.Key) bool {
	kev, ok := ev.(window.KeyEvent)
	return ok && kev.Down && kev.Key == key
}

// Background fills the whole surface with one image.
type Background struct {
	Path    string
	texture window.Texture
}

func (b *Background) load(l window.Loader, assets string) error {
	tex, err := l.LoadTexture(filepath.Join(assets, b.Path))
	if err != nil {
		return err
	}
	b.texture = tex
	return nil
}

func (b *Background) draw(r window.Renderer) error {
	if b.texture == nil {
		return nil
	}
	return r.Copy(b.texture, nil)
}

func (b *Background) close() {
	if b.texture != nil {
		b.texture.Destroy()
		b.texture = nil
	}
}

// Palette picks a new random draw color whenever Space is pressed.
type Palette struct {
	rng *rand.Rand
}

func (p *Palette) handleEvent(ev window.Event, r window.Renderer) error {
	if !isKeyDown(ev, window.KeySpace) {
		return nil
	}
	c := window.Color{
		R: uint8(p.rng.Intn(256)),
		G: uint8(p.rng.Intn(256)),
		B: uint8(p.rng.Intn(256)),
		A: constant.COLOR_OPAQUE,
	}
	util.Trace("palette: draw color %v", c)
	return r.SetDrawColor(c)
}

// Label is a line of text. With a non-zero Speed it bounces off the edges of
// the surface.
type Label struct {
	FontPath   string
	FontSize   int
	Text       string
	Color      window.Color
	Speed      int32
	font       window.Font
	texture    window.Texture
	rect       window.Rect
	xvel, yvel int32
}

func (lb *Label) load(l window.Loader, assets string) error {
	font, err := l.OpenFont(filepath.Join(assets, lb.FontPath), lb.FontSize)
	if err != nil {
		return err
	}
	lb.font = font

	tex, err := font.Render(lb.Text, lb.Color)
	if err != nil {
		return err
	}
	lb.texture = tex
	lb.rect.W, lb.rect.H = tex.Size()
	lb.xvel, lb.yvel = lb.Speed, lb.Speed
	return nil
}

func (lb *Label) update(frame *engine.Frame) {
	if lb.Speed == 0 || lb.texture == nil {
		return
	}
	lb.rect.X, lb.xvel = bounce(lb.rect.X, lb.xvel, lb.rect.W, frame.Width, lb.Speed)
	lb.rect.Y, lb.yvel = bounce(lb.rect.Y, lb.yvel, lb.rect.H, frame.Height, lb.Speed)
}

func (lb *Label) draw(r window.Renderer) error {
	if lb.texture == nil {
		return nil
	}
	return r.Copy(lb.texture, &lb.rect)
}

func (lb *Label) close() {
	if lb.texture != nil {
		lb.texture.Destroy()
		lb.texture = nil
	}
	if lb.font != nil {
		lb.font.Close()
		lb.font = nil
	}
}

// Sprite is the window icon, moved around with the arrow keys or WASD.
type Sprite struct {
	Path    string
	Step    int32
	texture window.Texture
	rect    window.Rect
}

func (s *Sprite) load(l window.Loader, assets string) error {
	tex, err := l.LoadIcon(filepath.Join(assets, s.Path))
	if err != nil {
		return err
	}
	s.texture = tex
	s.rect.W, s.rect.H = tex.Size()
	return nil
}

func (s *Sprite) update(frame *engine.Frame) {
	if s.texture == nil {
		return
	}
	s.rect = steer(s.rect, direction(frame.Keys), s.Step, frame.Width, frame.Height)
}

func (s *Sprite) draw(r window.Renderer) error {
	if s.texture == nil {
		return nil
	}
	return r.Copy(s.texture, &s.rect)
}

func (s *Sprite) close() {
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
}

// Jukebox loops the music from load on, plays the effect on Space and
// pauses or resumes the music on M.
type Jukebox struct {
	MusicPath string
	SoundPath string
	music     window.Music
	sound     window.Sound
}

func (j *Jukebox) load(l window.Loader, assets string) error {
	music, err := l.LoadMusic(filepath.Join(assets, j.MusicPath))
	if err != nil {
		return err
	}
	j.music = music

	sound, err := l.LoadSound(filepath.Join(assets, j.SoundPath))
	if err != nil {
		return err
	}
	j.sound = sound

	return j.music.Play(constant.MUSIC_LOOP)
}

func (j *Jukebox) handleEvent(ev window.Event, r window.Renderer) error {
	kev, ok := ev.(window.KeyEvent)
	if !ok || !kev.Down || kev.Repeat {
		return nil
	}
	switch kev.Key {
	case window.KeySpace:
		if j.sound != nil {
			return j.sound.Play()
		}
	case window.KeyM:
		if j.music == nil {
			break
		}
		if j.music.Paused() {
			j.music.Resume()
		} else {
			j.music.Pause()
		}
	}
	return nil
}

func (j *Jukebox) close() {
	if j.sound != nil {
		j.sound.Free()
		j.sound = nil
	}
	if j.music != nil {
		j.music.Free()
		j.music = nil
	}
}

// Timeout ends the demo after a fixed time.
type Timeout struct {
	After time.Duration
}

func (t *Timeout) update(frame *engine.Frame) {
	if frame.Elapsed >= t.After {
		frame.Quit()
	}
}
