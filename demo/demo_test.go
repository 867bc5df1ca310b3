package demo

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/engine"
	"github.com/ushitora-anqou/sdltour/window"
)

var (
	backgroundColor = color.RGBA{0x20, 0x40, 0x80, 0xff}
	iconColor       = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

func writePNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func makeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, constant.BACKGROUND_PATH), constant.WINDOW_WIDTH, constant.WINDOW_HEIGHT, backgroundColor)
	writePNG(t, filepath.Join(dir, constant.ICON_PATH), 32, 32, iconColor)
	writeFile(t, filepath.Join(dir, constant.FONT_PATH), goregular.TTF)
	writeFile(t, filepath.Join(dir, constant.MUSIC_PATH), []byte("OggS"))
	writeFile(t, filepath.Join(dir, constant.SOUND_PATH), []byte("RIFF"))
	return dir
}

func newHeadless(t *testing.T, onFrame func(int, *window.HeadlessWindow)) *window.HeadlessWindow {
	t.Helper()
	wind, err := window.NewHeadlessWindow(window.HeadlessConfig{
		Width:   constant.WINDOW_WIDTH,
		Height:  constant.WINDOW_HEIGHT,
		OnFrame: onFrame,
	})
	if err != nil {
		t.Fatal(err)
	}
	return wind
}

func playDemo(t *testing.T, name, assets string, wind *window.HeadlessWindow) *Demo {
	t.Helper()
	d, err := New(name, Options{Assets: assets, Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatal(err)
	}
	loop := engine.NewLoop(wind, d, window.NewFixedPacer(wind, constant.FRAME_DELAY))
	defer loop.Close()
	if err := loop.Load(); err != nil {
		t.Fatalf("%s: Load: %v", name, err)
	}
	if err := loop.Run(); err != nil {
		t.Fatalf("%s: Run: %v", name, err)
	}
	return d
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestCatalogLookup(t *testing.T) {
	table := []struct {
		name   string
		number int
	}{
		{"1", 1},
		{"open-window", 1},
		{"8", 8},
		{"Sound-And-Music", 8},
		{"sprites", 7},
	}

	for _, entry := range table {
		d, err := New(entry.name, Options{})
		if err != nil {
			t.Fatalf("New(%q): %v", entry.name, err)
		}
		if d.Number != entry.number {
			t.Fatalf("New(%q): got demo %d, expected %d", entry.name, d.Number, entry.number)
		}
	}

	for _, name := range []string{"0", "9", "pong", ""} {
		if _, err := New(name, Options{}); err == nil {
			t.Fatalf("New(%q): expected an error", name)
		}
	}
	if len(List()) != Last() {
		t.Fatalf("List: got %d lines, expected %d", len(List()), Last())
	}
}

func TestCatalogFeatures(t *testing.T) {
	table := []struct {
		name     string
		features window.Feature
	}{
		{"open-window", 0},
		{"close-window", 0},
		{"images", window.FeatureImages},
		{"changing-colors", window.FeatureImages},
		{"creating-text", window.FeatureImages | window.FeatureFonts},
		{"sprites", window.FeatureImages | window.FeatureFonts},
		{"sound-and-music", window.FeatureImages | window.FeatureFonts | window.FeatureAudio},
	}

	for _, entry := range table {
		d, err := New(entry.name, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if d.Features != entry.features {
			t.Fatalf("%s: got features %b, expected %b", entry.name, d.Features, entry.features)
		}
	}

	// Only the last step plays sound, so no other step opens an audio device.
	for i := 1; i < Last(); i++ {
		d, _ := New(strconv.Itoa(i), Options{})
		if d.Features.Has(window.FeatureAudio) {
			t.Fatalf("%s: must not need audio", d.Slug)
		}
	}
}

func TestOpenWindowTimesOut(t *testing.T) {
	wind := newHeadless(t, nil)
	playDemo(t, "open-window", "", wind)

	// The frame whose elapsed time reaches the delay is not drawn.
	expected := int(constant.OPEN_WINDOW_DELAY / constant.FRAME_DELAY)
	if wind.Frames() != expected {
		t.Fatalf("open-window: got %d frames, expected %d", wind.Frames(), expected)
	}
}

func TestChangingColors(t *testing.T) {
	assets := makeAssets(t)
	wind := newHeadless(t, func(frame int, w *window.HeadlessWindow) {
		switch frame {
		case 1:
			w.Push(window.KeyEvent{Key: window.KeySpace, Down: true})
		case 3:
			w.Push(window.QuitEvent{})
		}
	})
	playDemo(t, "changing-colors", assets, wind)

	if wind.Frames() != 3 {
		t.Fatalf("changing-colors: got %d frames, expected 3", wind.Frames())
	}
	c := wind.DrawColor()
	if c == (window.Color{R: 0, G: 0, B: 0, A: 0xff}) || c.A != 0xff {
		t.Fatalf("changing-colors: draw color was not randomized: %v", c)
	}
	if got := rgbaAt(wind.Screen(), 400, 300); got != backgroundColor {
		t.Fatalf("changing-colors: background pixel %v, expected %v", got, backgroundColor)
	}
}

func TestSoundAndMusic(t *testing.T) {
	assets := makeAssets(t)
	const frames = 20
	wind := newHeadless(t, func(frame int, w *window.HeadlessWindow) {
		switch frame {
		case 0:
			w.Hold(window.KeyRight)
			w.Hold(window.KeyS)
		case 5:
			w.Push(window.KeyEvent{Key: window.KeyM, Down: true})
		case frames:
			w.Push(window.KeyEvent{Key: window.KeyEscape, Down: true})
		}
	})
	d := playDemo(t, "sound-and-music", assets, wind)

	if wind.Frames() != frames {
		t.Fatalf("sound-and-music: got %d frames, expected %d", wind.Frames(), frames)
	}
	if wind.Icon() == nil {
		t.Fatalf("sound-and-music: window icon not set")
	}

	sp := d.parts[3].(*Sprite)
	if sp.rect.X != frames*constant.SPRITE_SPEED || sp.rect.Y != frames*constant.SPRITE_SPEED {
		t.Fatalf("sound-and-music: sprite at (%d, %d), expected a diagonal move", sp.rect.X, sp.rect.Y)
	}
	lb := d.parts[2].(*Label)
	if lb.rect.X != frames || lb.rect.Y != frames {
		t.Fatalf("sound-and-music: label at (%d, %d), expected (%d, %d)", lb.rect.X, lb.rect.Y, frames, frames)
	}

	// The sprite overlaps the label and is drawn last.
	screen := wind.Screen()
	if got := rgbaAt(screen, int(sp.rect.X)+16, int(sp.rect.Y)+16); got != iconColor {
		t.Fatalf("sound-and-music: sprite pixel %v, expected %v", got, iconColor)
	}
	if got := rgbaAt(screen, 700, 500); got != backgroundColor {
		t.Fatalf("sound-and-music: background pixel %v, expected %v", got, backgroundColor)
	}

	// Closed by the loop.
	if d.parts[4].(*Jukebox).music != nil || sp.texture != nil || lb.font != nil {
		t.Fatalf("sound-and-music: assets not released")
	}
}

func TestLoadFailure(t *testing.T) {
	wind := newHeadless(t, nil)
	d, err := New("sound-and-music", Options{Assets: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	err = d.Load(wind)
	if err == nil {
		t.Fatalf("Load: expected an error for missing assets")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load: got %v, expected a missing file error", err)
	}
	d.Close()
}

type fakeMusic struct {
	plays  int
	paused bool
	freed  bool
}

func (m *fakeMusic) Play(loops int) error {
	m.plays++
	return nil
}

func (m *fakeMusic) Pause()       { m.paused = true }
func (m *fakeMusic) Resume()      { m.paused = false }
func (m *fakeMusic) Paused() bool { return m.paused }
func (m *fakeMusic) Free()        { m.freed = true }

type fakeSound struct {
	plays int
}

func (s *fakeSound) Play() error {
	s.plays++
	return nil
}

func (s *fakeSound) Free() {}

func TestJukebox(t *testing.T) {
	music, sound := &fakeMusic{}, &fakeSound{}
	j := &Jukebox{music: music, sound: sound}

	events := []window.Event{
		window.KeyEvent{Key: window.KeySpace, Down: true},
		window.KeyEvent{Key: window.KeySpace, Down: true, Repeat: true},
		window.KeyEvent{Key: window.KeySpace, Down: false},
		window.KeyEvent{Key: window.KeyM, Down: true},
	}
	for _, ev := range events {
		if err := j.handleEvent(ev, nil); err != nil {
			t.Fatal(err)
		}
	}
	if sound.plays != 1 || !music.paused {
		t.Fatalf("Jukebox: got %d effect plays and paused=%v", sound.plays, music.paused)
	}

	j.handleEvent(window.KeyEvent{Key: window.KeyM, Down: true}, nil)
	if music.paused {
		t.Fatalf("Jukebox: M must resume paused music")
	}

	j.close()
	if !music.freed || j.music != nil {
		t.Fatalf("Jukebox: music not freed")
	}
}

func TestTimeout(t *testing.T) {
	to := &Timeout{After: time.Second}
	wind := newHeadless(t, nil)
	d := &Demo{Slug: "timeout", parts: []interface{}{to}}
	wind.Delay(time.Second)
	loop := engine.NewLoop(wind, d, nil)
	running, err := loop.Tick()
	if err != nil || !running {
		t.Fatalf("Timeout: quit too early (%v)", err)
	}
	wind.Delay(time.Second)
	running, err = loop.Tick()
	if err != nil || running {
		t.Fatalf("Timeout: expected quit after %v", to.After)
	}
}
