package demo

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/window"
)

type Options struct {
	// Assets is the directory the asset paths are relative to.
	Assets string
	// Rand drives the palette. A time-seeded source is used when nil.
	Rand *rand.Rand
}

type entry struct {
	slug, title string
	features    window.Feature
	build       func(opts Options) []interface{}
}

const (
	withImages = window.FeatureImages
	withText   = window.FeatureImages | window.FeatureFonts
	withAudio  = window.FeatureImages | window.FeatureFonts | window.FeatureAudio
)

var white = window.Color{
	R: constant.COLOR_WHITE,
	G: constant.COLOR_WHITE,
	B: constant.COLOR_WHITE,
	A: constant.COLOR_OPAQUE,
}

func background() *Background {
	return &Background{Path: constant.BACKGROUND_PATH}
}

func label(speed int32) *Label {
	return &Label{
		FontPath: constant.FONT_PATH,
		FontSize: constant.FONT_SIZE,
		Text:     constant.TEXT_STRING,
		Color:    white,
		Speed:    speed,
	}
}

func sprite() *Sprite {
	return &Sprite{Path: constant.ICON_PATH, Step: constant.SPRITE_SPEED}
}

// Steps are numbered from 1, in the order they appear in the tour.
var catalog = []entry{
	{"open-window", "Open Window", 0, func(Options) []interface{} {
		return []interface{}{&Timeout{After: constant.OPEN_WINDOW_DELAY}}
	}},
	{"close-window", "Close Window", 0, func(Options) []interface{} {
		return nil
	}},
	{"images", "Images", withImages, func(Options) []interface{} {
		return []interface{}{background()}
	}},
	{"changing-colors", "Changing Colors", withImages, func(o Options) []interface{} {
		return []interface{}{background(), &Palette{o.Rand}}
	}},
	{"creating-text", "Creating Text", withText, func(o Options) []interface{} {
		return []interface{}{background(), &Palette{o.Rand}, label(0)}
	}},
	{"moving-text", "Moving Text", withText, func(o Options) []interface{} {
		return []interface{}{background(), &Palette{o.Rand}, label(constant.TEXT_SPEED)}
	}},
	{"sprites", "Sprites", withText, func(o Options) []interface{} {
		return []interface{}{background(), &Palette{o.Rand}, label(constant.TEXT_SPEED), sprite()}
	}},
	{"sound-and-music", "Sound Effects and Music", withAudio, func(o Options) []interface{} {
		return []interface{}{
			background(),
			&Palette{o.Rand},
			label(constant.TEXT_SPEED),
			sprite(),
			&Jukebox{MusicPath: constant.MUSIC_PATH, SoundPath: constant.SOUND_PATH},
		}
	}},
}

// Last is the number of the final, most complete step.
func Last() int {
	return len(catalog)
}

// New builds the step named by its number or its slug.
func New(name string, opts Options) (*Demo, error) {
	num, err := strconv.Atoi(name)
	if err != nil {
		num = 0
		for i, e := range catalog {
			if e.slug == strings.ToLower(name) {
				num = i + 1
				break
			}
		}
	}
	if num < 1 || num > len(catalog) {
		return nil, fmt.Errorf("Unknown demo: %q", name)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := catalog[num-1]
	return &Demo{
		Number:   num,
		Slug:     e.slug,
		Title:    e.title,
		Features: e.features,
		assets:   opts.Assets,
		parts:    e.build(opts),
	}, nil
}

// List describes every step, one per line.
func List() []string {
	ret := make([]string, 0, len(catalog))
	for i, e := range catalog {
		ret = append(ret, fmt.Sprintf("%d  %-16s %s", i+1, e.slug, e.title))
	}
	return ret
}
