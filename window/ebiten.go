//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/subsystem"
	"github.com/ushitora-anqou/sdltour/util"
)

var ebitenKeys = map[Key]ebiten.Key{
	KeyEscape: ebiten.KeyEscape,
	KeySpace:  ebiten.KeySpace,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyW:      ebiten.KeyW,
	KeyA:      ebiten.KeyA,
	KeyS:      ebiten.KeyS,
	KeyD:      ebiten.KeyD,
	KeyM:      ebiten.KeyM,
}

func EbitenSubsystems(features Feature, title string, width, height int32) *subsystem.Stack {
	return selectSubsystems(features, []featured{
		{0, subsystem.Subsystem{
			Name: "ebiten",
			Init: func() error {
				ebiten.SetWindowTitle(title)
				ebiten.SetWindowSize(int(width), int(height))
				ebiten.SetTPS(constant.TARGET_FPS)
				ebiten.SetWindowClosingHandled(true)
				return nil
			},
		}},
		{FeatureAudio, subsystem.Subsystem{
			Name: "audio",
			Init: func() error {
				if audio.CurrentContext() == nil {
					audio.NewContext(constant.AUDIO_FREQ)
				}
				return nil
			},
		}},
	})
}

// EbitenWindow adapts ebiten's push-style game loop. Refresh collects the
// input of the current tick; Bind hands over the screen of the current draw.
type EbitenWindow struct {
	width, height int32
	screen        *ebiten.Image
	drawColor     Color
	events        []Event
	started       time.Time
}

func NewEbitenWindow(width, height int32) (*EbitenWindow, error) {
	if width <= 0 || height <= 0 {
		return nil, util.Fail("Failed to create window", fmt.Errorf("invalid size %dx%d", width, height))
	}
	return &EbitenWindow{
		width:     width,
		height:    height,
		drawColor: Color{0, 0, 0, 0xff},
		started:   time.Now(),
	}, nil
}

func (wind *EbitenWindow) Refresh() {
	wind.events = wind.events[:0]
	if ebiten.IsWindowBeingClosed() {
		wind.events = append(wind.events, QuitEvent{})
	}
	wind.events = append(wind.events, keyEvents(
		func(k Key) bool { return inpututil.IsKeyJustPressed(ebitenKeys[k]) },
		func(k Key) bool { return inpututil.IsKeyJustReleased(ebitenKeys[k]) },
	)...)
}

func (wind *EbitenWindow) Bind(screen *ebiten.Image) {
	wind.screen = screen
}

func (wind *EbitenWindow) PollEvent() Event {
	if len(wind.events) == 0 {
		return nil
	}
	ev := wind.events[0]
	wind.events = wind.events[1:]
	return ev
}

type ebitenKeyState struct{}

func (ebitenKeyState) IsPressed(key Key) bool {
	ek, ok := ebitenKeys[key]
	return ok && ebiten.IsKeyPressed(ek)
}

func (wind *EbitenWindow) KeyState() KeyState {
	return ebitenKeyState{}
}

func (wind *EbitenWindow) Size() (int32, int32) {
	return wind.width, wind.height
}

func (wind *EbitenWindow) SetDrawColor(c Color) error {
	wind.drawColor = c
	return nil
}

func (wind *EbitenWindow) Clear() error {
	if wind.screen == nil {
		return util.Fail("Error clearing renderer", errors.New("no screen bound"))
	}
	c := wind.drawColor
	wind.screen.Fill(color.NRGBA{c.R, c.G, c.B, c.A})
	return nil
}

func (wind *EbitenWindow) Copy(tex Texture, dst *Rect) error {
	et, ok := tex.(*ebitenTexture)
	if !ok || et.img == nil || wind.screen == nil {
		return util.Fail("Error copying Texture", errors.New("invalid texture or screen"))
	}
	target := Rect{0, 0, wind.width, wind.height}
	if dst != nil {
		target = *dst
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(target.W)/float64(et.w), float64(target.H)/float64(et.h))
	op.GeoM.Translate(float64(target.X), float64(target.Y))
	wind.screen.DrawImage(et.img, op)
	return nil
}

// Present is a no-op: ebiten shows the screen once Draw returns.
func (wind *EbitenWindow) Present() {}

func (wind *EbitenWindow) Delay(d time.Duration) {
	time.Sleep(d)
}

func (wind *EbitenWindow) Ticks() time.Duration {
	return time.Since(wind.started)
}

func (wind *EbitenWindow) Close() error {
	wind.screen = nil
	return nil
}

func (wind *EbitenWindow) LoadTexture(path string) (Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, util.Fail("Error loading Texture", err)
	}
	return newEbitenTexture(img), nil
}

func (wind *EbitenWindow) LoadIcon(path string) (Texture, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return nil, util.Fail("Error loading Surface", err)
	}
	ebiten.SetWindowIcon([]image.Image{img})
	return newEbitenTexture(ebiten.NewImageFromImage(img)), nil
}

func (wind *EbitenWindow) OpenFont(path string, size int) (Font, error) {
	f, err := openRasterFont(path, size)
	if err != nil {
		return nil, util.Fail("Error creating Font", err)
	}
	return &ebitenFont{f}, nil
}

func (wind *EbitenWindow) LoadMusic(path string) (Music, error) {
	stream, file, err := decodeAudioFile(path)
	if err != nil {
		return nil, util.Fail("Error loading Music", err)
	}
	return &ebitenMusic{stream: stream, file: file}, nil
}

func (wind *EbitenWindow) LoadSound(path string) (Sound, error) {
	stream, file, err := decodeAudioFile(path)
	if err != nil {
		return nil, util.Fail("Error loading Sound", err)
	}
	defer file.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, util.Fail("Error loading Sound", err)
	}
	return &ebitenSound{data: data}, nil
}

type audioStream interface {
	io.ReadSeeker
	Length() int64
}

func decodeAudioFile(path string) (audioStream, *os.File, error) {
	if audio.CurrentContext() == nil {
		return nil, nil, errors.New("audio context is not initialized")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	var stream audioStream
	sampleRate := audio.CurrentContext().SampleRate()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, file)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, file)
	default:
		err = fmt.Errorf("Unrecognized audio format: %s", path)
	}
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return stream, file, nil
}

type ebitenTexture struct {
	img  *ebiten.Image
	w, h int32
}

func newEbitenTexture(img *ebiten.Image) *ebitenTexture {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return &ebitenTexture{img, int32(w), int32(h)}
}

func (t *ebitenTexture) Size() (int32, int32) {
	return t.w, t.h
}

func (t *ebitenTexture) Destroy() {
	if t.img != nil {
		t.img.Dispose()
		t.img = nil
	}
}

type ebitenFont struct {
	*rasterFont
}

func (f *ebitenFont) Render(text string, c Color) (Texture, error) {
	img, err := f.render(text, c)
	if err != nil {
		return nil, util.Fail("Error loading text Surface", err)
	}
	return newEbitenTexture(ebiten.NewImageFromImage(img)), nil
}

func (f *ebitenFont) Close() {
	f.close()
}

type ebitenMusic struct {
	stream audioStream
	file   *os.File
	player *audio.Player
	paused bool
}

func (m *ebitenMusic) Play(loops int) error {
	if m.player != nil {
		m.player.Close()
	}
	if _, err := m.stream.Seek(0, io.SeekStart); err != nil {
		return util.Fail("Error playing Music", err)
	}
	var src io.Reader = m.stream
	if loops != 0 {
		src = audio.NewInfiniteLoop(m.stream, m.stream.Length())
	}
	player, err := audio.CurrentContext().NewPlayer(src)
	if err != nil {
		return util.Fail("Error playing Music", err)
	}
	player.Play()
	m.player = player
	m.paused = false
	return nil
}

func (m *ebitenMusic) Pause() {
	if m.player != nil && m.player.IsPlaying() {
		m.player.Pause()
		m.paused = true
	}
}

func (m *ebitenMusic) Resume() {
	if m.player != nil && m.paused {
		m.player.Play()
		m.paused = false
	}
}

func (m *ebitenMusic) Paused() bool {
	return m.paused
}

func (m *ebitenMusic) Free() {
	if m.player != nil {
		m.player.Close()
		m.player = nil
	}
	m.file.Close()
}

type ebitenSound struct {
	data    []byte
	players []*audio.Player
}

func (s *ebitenSound) Play() error {
	active := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			active = append(active, p)
		} else {
			p.Close()
		}
	}
	player := audio.CurrentContext().NewPlayerFromBytes(s.data)
	player.Play()
	s.players = append(active, player)
	return nil
}

func (s *ebitenSound) Free() {
	for _, p := range s.players {
		p.Close()
	}
	s.players = nil
}
