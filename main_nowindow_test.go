//go:build !sdl2 && !ebiten

package main

import (
	"errors"
	"testing"
)

func TestRunWithoutWindowBackend(t *testing.T) {
	if err := run([]string{"close-window"}); !errors.Is(err, errNoWindow) {
		t.Fatalf("run: got %v, expected %v", err, errNoWindow)
	}
	if err := run([]string{"--headless", "--frames", "1", "close-window"}); err != nil {
		t.Fatalf("run --headless: %v", err)
	}
}
