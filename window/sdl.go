//go:build sdl2

package window

import (
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/subsystem"
	"github.com/ushitora-anqou/sdltour/util"
)

var scancodes = map[Key]sdl.Scancode{
	KeyEscape: sdl.SCANCODE_ESCAPE,
	KeySpace:  sdl.SCANCODE_SPACE,
	KeyLeft:   sdl.SCANCODE_LEFT,
	KeyRight:  sdl.SCANCODE_RIGHT,
	KeyUp:     sdl.SCANCODE_UP,
	KeyDown:   sdl.SCANCODE_DOWN,
	KeyW:      sdl.SCANCODE_W,
	KeyA:      sdl.SCANCODE_A,
	KeyS:      sdl.SCANCODE_S,
	KeyD:      sdl.SCANCODE_D,
	KeyM:      sdl.SCANCODE_M,
}

var keysByScancode = func() map[sdl.Scancode]Key {
	ret := make(map[sdl.Scancode]Key, len(scancodes))
	for k, sc := range scancodes {
		ret[sc] = k
	}
	return ret
}()

// SDLSubsystems lists SDL and the satellite libraries the given features
// need, in dependency order.
func SDLSubsystems(features Feature) *subsystem.Stack {
	return selectSubsystems(features, []featured{
		{0, subsystem.Subsystem{
			Name: "SDL",
			Init: func() error { return sdl.Init(sdl.INIT_EVERYTHING) },
			Quit: sdl.Quit,
		}},
		{FeatureImages, subsystem.Subsystem{
			Name: "SDL_image",
			Init: func() error { return img.Init(img.INIT_PNG) },
			Quit: img.Quit,
		}},
		{FeatureFonts, subsystem.Subsystem{
			Name: "SDL_ttf",
			Init: ttf.Init,
			Quit: ttf.Quit,
		}},
		{FeatureAudio, subsystem.Subsystem{
			Name: "SDL_mixer",
			Init: func() error { return mix.Init(mix.INIT_OGG) },
			Quit: mix.Quit,
		}},
		{FeatureAudio, subsystem.Subsystem{
			Name: "audio device",
			Init: func() error {
				return mix.OpenAudio(
					constant.AUDIO_FREQ,
					uint16(mix.DEFAULT_FORMAT),
					constant.AUDIO_CHANNELS,
					constant.AUDIO_CHUNK,
				)
			},
			Quit: mix.CloseAudio,
		}},
	})
}

type SDLWindow struct {
	window        *sdl.Window
	renderer      *sdl.Renderer
	width, height int32
}

func NewSDLWindow(title string, width, height int32) (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		width,
		height,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, util.Fail("Failed to create window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, util.Fail("Failed to create renderer", err)
	}

	return &SDLWindow{
		window:   window,
		renderer: renderer,
		width:    width,
		height:   height,
	}, nil
}

func (wind *SDLWindow) PollEvent() Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			return QuitEvent{}

		case *sdl.KeyboardEvent:
			kbEvent := event.(*sdl.KeyboardEvent)
			key, ok := keysByScancode[kbEvent.Keysym.Scancode]
			if !ok {
				key = KeyUnknown
			}
			return KeyEvent{
				Key:    key,
				Down:   kbEvent.Type == sdl.KEYDOWN,
				Repeat: kbEvent.Repeat != 0,
			}
		}
		// Window, mouse and other events are of no interest.
	}
	return nil
}

type sdlKeyState []uint8

func (ks sdlKeyState) IsPressed(key Key) bool {
	sc, ok := scancodes[key]
	if !ok || int(sc) >= len(ks) {
		return false
	}
	return ks[sc] != 0
}

func (wind *SDLWindow) KeyState() KeyState {
	return sdlKeyState(sdl.GetKeyboardState())
}

func (wind *SDLWindow) Size() (int32, int32) {
	return wind.width, wind.height
}

func (wind *SDLWindow) SetDrawColor(c Color) error {
	if err := wind.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return util.Fail("Error setting draw color", err)
	}
	return nil
}

func (wind *SDLWindow) Clear() error {
	if err := wind.renderer.Clear(); err != nil {
		return util.Fail("Error clearing renderer", err)
	}
	return nil
}

func (wind *SDLWindow) Copy(tex Texture, dst *Rect) error {
	st, ok := tex.(*sdlTexture)
	if !ok || st.texture == nil {
		return util.Fail("Error copying Texture", sdl.GetError())
	}
	var dstRect *sdl.Rect
	if dst != nil {
		dstRect = &sdl.Rect{X: dst.X, Y: dst.Y, W: dst.W, H: dst.H}
	}
	if err := wind.renderer.Copy(st.texture, nil, dstRect); err != nil {
		return util.Fail("Error copying Texture", err)
	}
	return nil
}

func (wind *SDLWindow) Present() {
	wind.renderer.Present()
}

func (wind *SDLWindow) Delay(d time.Duration) {
	if d > 0 {
		sdl.Delay(uint32(d / time.Millisecond))
	}
}

func (wind *SDLWindow) Ticks() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

func (wind *SDLWindow) Close() error {
	return util.RunAll(wind.renderer.Destroy, wind.window.Destroy)
}

func (wind *SDLWindow) LoadTexture(path string) (Texture, error) {
	texture, err := img.LoadTexture(wind.renderer, path)
	if err != nil {
		return nil, util.Fail("Error loading Texture", err)
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		texture.Destroy()
		return nil, util.Fail("Error querying Texture", err)
	}
	return &sdlTexture{texture, w, h}, nil
}

func (wind *SDLWindow) LoadIcon(path string) (Texture, error) {
	surface, err := img.Load(path)
	if err != nil {
		return nil, util.Fail("Error loading Surface", err)
	}
	defer surface.Free()

	wind.window.SetIcon(surface)
	return wind.textureFromSurface(surface, "Error creating Sprite from Surface")
}

func (wind *SDLWindow) textureFromSurface(surface *sdl.Surface, op string) (Texture, error) {
	texture, err := wind.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, util.Fail(op, err)
	}
	return &sdlTexture{texture, surface.W, surface.H}, nil
}

func (wind *SDLWindow) OpenFont(path string, size int) (Font, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, util.Fail("Error creating Font", err)
	}
	return &sdlFont{font, wind}, nil
}

func (wind *SDLWindow) LoadMusic(path string) (Music, error) {
	music, err := mix.LoadMUS(path)
	if err != nil {
		return nil, util.Fail("Error loading Music", err)
	}
	return &sdlMusic{music}, nil
}

func (wind *SDLWindow) LoadSound(path string) (Sound, error) {
	chunk, err := mix.LoadWAV(path)
	if err != nil {
		return nil, util.Fail("Error loading Sound", err)
	}
	return &sdlSound{chunk}, nil
}

type sdlTexture struct {
	texture *sdl.Texture
	w, h    int32
}

func (t *sdlTexture) Size() (int32, int32) {
	return t.w, t.h
}

func (t *sdlTexture) Destroy() {
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
}

type sdlFont struct {
	font *ttf.Font
	wind *SDLWindow
}

func (f *sdlFont) Render(text string, c Color) (Texture, error) {
	surface, err := f.font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return nil, util.Fail("Error loading text Surface", err)
	}
	defer surface.Free()

	return f.wind.textureFromSurface(surface, "Error creating Texture from Surface")
}

func (f *sdlFont) Close() {
	f.font.Close()
}

type sdlMusic struct {
	music *mix.Music
}

func (m *sdlMusic) Play(loops int) error {
	if err := m.music.Play(loops); err != nil {
		return util.Fail("Error playing Music", err)
	}
	return nil
}

// SDL_mixer has a single music channel, so pausing is global.
func (m *sdlMusic) Pause() {
	mix.PauseMusic()
}

func (m *sdlMusic) Resume() {
	mix.ResumeMusic()
}

func (m *sdlMusic) Paused() bool {
	return mix.PausedMusic()
}

func (m *sdlMusic) Free() {
	m.music.Free()
}

type sdlSound struct {
	chunk *mix.Chunk
}

func (s *sdlSound) Play() error {
	if _, err := s.chunk.Play(-1, 0); err != nil {
		return util.Fail("Error playing Sound", err)
	}
	return nil
}

func (s *sdlSound) Free() {
	s.chunk.Free()
}
