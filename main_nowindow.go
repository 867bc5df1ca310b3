//go:build !sdl2 && !ebiten

package main

import (
	"errors"

	"github.com/ushitora-anqou/sdltour/demo"
)

var errNoWindow = errors.New("Built without a window backend; rebuild with -tags sdl2 or -tags ebiten, or pass --headless")

func runWindowed(cfg *config, d *demo.Demo) error {
	return errNoWindow
}
