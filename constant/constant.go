package constant

import "time"

const (
	DIR_RIGHT         = 0x00
	DIR_LEFT          = 0x01
	DIR_UP            = 0x02
	DIR_DOWN          = 0x03
	WINDOW_TITLE      = "sdltour"
	WINDOW_WIDTH      = 800
	WINDOW_HEIGHT     = 600
	TARGET_FPS        = 60
	FRAME_DELAY       = 16 * time.Millisecond // 1000/60 ms per frame
	OPEN_WINDOW_DELAY = 2 * time.Second
)

const (
	FONT_SIZE    = 80
	TEXT_STRING  = "SDL"
	TEXT_SPEED   = 1
	SPRITE_SPEED = 5
	COLOR_WHITE  = 0xff
	COLOR_OPAQUE = 0xff
)

const (
	AUDIO_FREQ     = 44100
	AUDIO_CHANNELS = 2
	AUDIO_CHUNK    = 1024
	MUSIC_LOOP     = -1 // Loop forever
)

const (
	BACKGROUND_PATH = "images/background.png"
	ICON_PATH       = "images/C-logo.png"
	FONT_PATH       = "fonts/freesansbold.ttf"
	MUSIC_PATH      = "sounds/music.ogg"
	SOUND_PATH      = "sounds/effect.wav"
)
