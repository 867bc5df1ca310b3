package demo

import (
	"github.com/ushitora-anqou/sdltour/constant"
	"github.com/ushitora-anqou/sdltour/util"
	"github.com/ushitora-anqou/sdltour/window"
)

// bounce moves pos by vel on one axis and keeps it within [0, limit-size].
// Touching an edge turns vel back inside at the given speed. An object that
// does not fit on the axis is pinned at 0.
func bounce(pos, vel, size, limit, speed int32) (int32, int32) {
	hi := limit - size
	if hi <= 0 {
		return 0, 0
	}
	pos += vel
	if pos <= 0 {
		pos, vel = 0, speed
	} else if pos >= hi {
		pos, vel = hi, -speed
	}
	return pos, vel
}

// direction packs the held movement keys into DIR_* bits.
func direction(keys window.KeyState) uint8 {
	if keys == nil {
		return 0
	}
	held := func(a, b window.Key) uint8 {
		return util.BoolToU8(keys.IsPressed(a) || keys.IsPressed(b))
	}
	var dir uint8
	dir |= held(window.KeyRight, window.KeyD) << constant.DIR_RIGHT
	dir |= held(window.KeyLeft, window.KeyA) << constant.DIR_LEFT
	dir |= held(window.KeyUp, window.KeyW) << constant.DIR_UP
	dir |= held(window.KeyDown, window.KeyS) << constant.DIR_DOWN
	return dir
}

// steer applies one step per held direction. Both axes move in the same
// frame, and opposite directions cancel out.
func steer(rect window.Rect, dir uint8, step, width, height int32) window.Rect {
	if dir&(1<<constant.DIR_LEFT) != 0 {
		rect.X -= step
	}
	if dir&(1<<constant.DIR_RIGHT) != 0 {
		rect.X += step
	}
	if dir&(1<<constant.DIR_UP) != 0 {
		rect.Y -= step
	}
	if dir&(1<<constant.DIR_DOWN) != 0 {
		rect.Y += step
	}
	rect.X = util.Clamp32(rect.X, 0, width-rect.W)
	rect.Y = util.Clamp32(rect.Y, 0, height-rect.H)
	return rect
}
