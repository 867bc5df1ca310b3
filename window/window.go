package window

import "time"

type Color struct {
	R, G, B, A uint8
}

type Rect struct {
	X, Y, W, H int32
}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyW
	KeyA
	KeyS
	KeyD
	KeyM
)

type Event interface {
	isEvent()
}

type QuitEvent struct{}

type KeyEvent struct {
	Key    Key
	Down   bool
	Repeat bool
}

func (QuitEvent) isEvent() {}
func (KeyEvent) isEvent()  {}

// trackedKeys lists every key a backend reports, in the order events for
// the same tick are queued.
var trackedKeys = []Key{
	KeyEscape, KeySpace,
	KeyLeft, KeyRight, KeyUp, KeyDown,
	KeyW, KeyA, KeyS, KeyD,
	KeyM,
}

// keyEvents turns per-key edge queries into events for backends that poll
// key state instead of delivering events.
func keyEvents(justPressed, justReleased func(Key) bool) []Event {
	events := []Event{}
	for _, key := range trackedKeys {
		switch {
		case justPressed(key):
			events = append(events, KeyEvent{Key: key, Down: true})
		case justReleased(key):
			events = append(events, KeyEvent{Key: key, Down: false})
		}
	}
	return events
}

// KeyState is a snapshot of the keys currently held down.
type KeyState interface {
	IsPressed(key Key) bool
}

// KeySet is a KeyState backed by a map. A nil KeySet has no key held.
type KeySet map[Key]bool

func (ks KeySet) IsPressed(key Key) bool {
	return ks[key]
}

type Texture interface {
	Size() (w, h int32)
	Destroy()
}

type Font interface {
	Render(text string, color Color) (Texture, error)
	Close()
}

type Music interface {
	Play(loops int) error
	Pause()
	Resume()
	Paused() bool
	Free()
}

type Sound interface {
	Play() error
	Free()
}

// Renderer is the drawing context bound to a window.
type Renderer interface {
	SetDrawColor(color Color) error
	Clear() error
	// Copy draws tex stretched to dst, or to the whole surface when dst is nil.
	Copy(tex Texture, dst *Rect) error
	Present()
	Size() (w, h int32)
}

// Loader decodes assets into handles owned by the caller.
type Loader interface {
	LoadTexture(path string) (Texture, error)
	// LoadIcon sets the window icon and returns the same image as a texture.
	LoadIcon(path string) (Texture, error)
	OpenFont(path string, size int) (Font, error)
	LoadMusic(path string) (Music, error)
	LoadSound(path string) (Sound, error)
}

type Window interface {
	Renderer
	Loader
	// PollEvent returns the next pending event, or nil when the queue is empty.
	PollEvent() Event
	KeyState() KeyState
	Delay(d time.Duration)
	Ticks() time.Duration
	Close() error
}

// Pacer throttles the frame loop once per frame.
type Pacer interface {
	MaySleep()
}
