package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/ushitora-anqou/sdltour/util"
)

type HeadlessConfig struct {
	Width, Height int32
	// SnapshotDir receives one PNG per SnapshotEvery presented frames when set.
	SnapshotDir   string
	SnapshotEvery int
	// RealTime makes Delay actually sleep instead of advancing a virtual clock.
	RealTime bool
	// OnFrame runs once per frame, before the first event of that frame is
	// polled. It may Push events or Hold/Release keys.
	OnFrame func(frame int, wind *HeadlessWindow)
}

// HeadlessWindow renders into memory. It needs no display and no native
// library, which makes it the backend of choice for tests and batch runs.
type HeadlessWindow struct {
	config        HeadlessConfig
	canvas, front *image.RGBA
	drawColor     Color
	events        []Event
	keys          KeySet
	icon          image.Image
	frames        int
	scriptedFrame int
	clock         time.Duration
	started       time.Time
	lastErr       error
}

func NewHeadlessWindow(config HeadlessConfig) (*HeadlessWindow, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, util.Fail("Failed to create window", fmt.Errorf("invalid size %dx%d", config.Width, config.Height))
	}
	if config.SnapshotEvery <= 0 {
		config.SnapshotEvery = 1
	}
	if config.SnapshotDir != "" {
		if err := os.MkdirAll(config.SnapshotDir, 0o755); err != nil {
			return nil, util.Fail("Failed to create window", err)
		}
	}
	bounds := image.Rect(0, 0, int(config.Width), int(config.Height))
	return &HeadlessWindow{
		config:        config,
		canvas:        image.NewRGBA(bounds),
		front:         image.NewRGBA(bounds),
		drawColor:     Color{0, 0, 0, 0xff},
		keys:          KeySet{},
		scriptedFrame: -1,
		started:       time.Now(),
	}, nil
}

// Push queues an event for the next PollEvent.
func (wind *HeadlessWindow) Push(ev Event) {
	wind.events = append(wind.events, ev)
}

func (wind *HeadlessWindow) Hold(key Key) {
	wind.keys[key] = true
}

func (wind *HeadlessWindow) Release(key Key) {
	delete(wind.keys, key)
}

// Frames returns the number of presented frames.
func (wind *HeadlessWindow) Frames() int {
	return wind.frames
}

// Screen returns the last presented frame.
func (wind *HeadlessWindow) Screen() *image.RGBA {
	return wind.front
}

func (wind *HeadlessWindow) Icon() image.Image {
	return wind.icon
}

func (wind *HeadlessWindow) DrawColor() Color {
	return wind.drawColor
}

func (wind *HeadlessWindow) PollEvent() Event {
	if wind.scriptedFrame != wind.frames {
		wind.scriptedFrame = wind.frames
		if wind.config.OnFrame != nil {
			wind.config.OnFrame(wind.frames, wind)
		}
	}
	if len(wind.events) == 0 {
		return nil
	}
	ev := wind.events[0]
	wind.events = wind.events[1:]
	return ev
}

func (wind *HeadlessWindow) KeyState() KeyState {
	keys := make(KeySet, len(wind.keys))
	for k, v := range wind.keys {
		keys[k] = v
	}
	return keys
}

func (wind *HeadlessWindow) Size() (int32, int32) {
	return wind.config.Width, wind.config.Height
}

func (wind *HeadlessWindow) SetDrawColor(c Color) error {
	wind.drawColor = c
	return nil
}

func (wind *HeadlessWindow) Clear() error {
	c := wind.drawColor
	src := image.NewUniform(color.NRGBA{c.R, c.G, c.B, c.A})
	xdraw.Draw(wind.canvas, wind.canvas.Bounds(), src, image.Point{}, xdraw.Src)
	return nil
}

func (wind *HeadlessWindow) Copy(tex Texture, dst *Rect) error {
	ht, ok := tex.(*headlessTexture)
	if !ok || ht.img == nil {
		return util.Fail("Error copying Texture", errors.New("invalid texture"))
	}
	target := wind.canvas.Bounds()
	if dst != nil {
		target = image.Rect(int(dst.X), int(dst.Y), int(dst.X+dst.W), int(dst.Y+dst.H))
	}
	src := ht.img.Bounds()
	if target.Dx() == src.Dx() && target.Dy() == src.Dy() {
		xdraw.Draw(wind.canvas, target, ht.img, src.Min, xdraw.Over)
	} else {
		xdraw.BiLinear.Scale(wind.canvas, target, ht.img, src, xdraw.Over, nil)
	}
	return nil
}

func (wind *HeadlessWindow) Present() {
	copy(wind.front.Pix, wind.canvas.Pix)
	wind.frames++
	if wind.config.SnapshotDir != "" && wind.frames%wind.config.SnapshotEvery == 0 {
		if err := wind.snapshot(); err != nil {
			util.Trace("headless: snapshot of frame %d failed: %v", wind.frames, err)
			wind.lastErr = err
		}
	}
}

func (wind *HeadlessWindow) snapshot() error {
	path := filepath.Join(wind.config.SnapshotDir, fmt.Sprintf("frame-%05d.png", wind.frames))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, wind.front); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (wind *HeadlessWindow) Delay(d time.Duration) {
	if wind.config.RealTime {
		time.Sleep(d)
		return
	}
	wind.clock += d
}

func (wind *HeadlessWindow) Ticks() time.Duration {
	if wind.config.RealTime {
		return time.Since(wind.started)
	}
	return wind.clock
}

func (wind *HeadlessWindow) Close() error {
	return wind.lastErr
}

func (wind *HeadlessWindow) LoadTexture(path string) (Texture, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, util.Fail("Error loading Texture", err)
	}
	return &headlessTexture{img}, nil
}

func (wind *HeadlessWindow) LoadIcon(path string) (Texture, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, util.Fail("Error loading Surface", err)
	}
	wind.icon = img
	return &headlessTexture{img}, nil
}

func (wind *HeadlessWindow) OpenFont(path string, size int) (Font, error) {
	f, err := openRasterFont(path, size)
	if err != nil {
		return nil, util.Fail("Error creating Font", err)
	}
	return &headlessFont{f}, nil
}

func (wind *HeadlessWindow) LoadMusic(path string) (Music, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, util.Fail("Error loading Music", err)
	}
	return &silentMusic{path: path}, nil
}

func (wind *HeadlessWindow) LoadSound(path string) (Sound, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, util.Fail("Error loading Sound", err)
	}
	return &silentSound{path: path}, nil
}

type headlessTexture struct {
	img *image.RGBA
}

func (t *headlessTexture) Size() (int32, int32) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return int32(b.Dx()), int32(b.Dy())
}

func (t *headlessTexture) Destroy() {
	t.img = nil
}

type headlessFont struct {
	*rasterFont
}

func (f *headlessFont) Render(text string, c Color) (Texture, error) {
	img, err := f.render(text, c)
	if err != nil {
		return nil, util.Fail("Error loading text Surface", err)
	}
	return &headlessTexture{img}, nil
}

func (f *headlessFont) Close() {
	f.close()
}

// silentMusic and silentSound only keep track of what would have been played.
type silentMusic struct {
	path          string
	plays, loops  int
	playing       bool
	paused, freed bool
}

func (m *silentMusic) Play(loops int) error {
	if m.freed {
		return util.Fail("Error playing Music", errors.New("music already freed"))
	}
	m.plays++
	m.loops = loops
	m.playing = true
	m.paused = false
	return nil
}

func (m *silentMusic) Pause() {
	if m.playing {
		m.paused = true
	}
}

func (m *silentMusic) Resume() {
	m.paused = false
}

func (m *silentMusic) Paused() bool {
	return m.paused
}

func (m *silentMusic) Free() {
	m.playing = false
	m.freed = true
}

type silentSound struct {
	path  string
	plays int
	freed bool
}

func (s *silentSound) Play() error {
	if s.freed {
		return util.Fail("Error playing Sound", errors.New("sound already freed"))
	}
	s.plays++
	return nil
}

func (s *silentSound) Free() {
	s.freed = true
}
