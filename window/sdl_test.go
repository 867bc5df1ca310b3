//go:build sdl2

package window

import (
	"reflect"
	"testing"
)

// Building a stack touches no SDL state, so this runs without a display.
func TestSDLSubsystemsFollowFeatures(t *testing.T) {
	table := []struct {
		features Feature
		expected []string
	}{
		{0, []string{"SDL"}},
		{FeatureImages, []string{"SDL", "SDL_image"}},
		{FeatureImages | FeatureFonts | FeatureAudio, []string{"SDL", "SDL_image", "SDL_ttf", "SDL_mixer", "audio device"}},
	}
	for _, entry := range table {
		if got := SDLSubsystems(entry.features).Names(); !reflect.DeepEqual(got, entry.expected) {
			t.Fatalf("SDLSubsystems(%b): got %v, expected %v", entry.features, got, entry.expected)
		}
	}
}

func TestScancodesCoverTrackedKeys(t *testing.T) {
	for _, key := range trackedKeys {
		sc, ok := scancodes[key]
		if !ok || keysByScancode[sc] != key {
			t.Fatalf("scancodes: no round trip for key %d", key)
		}
	}
}
