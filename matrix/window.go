package matrix

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Window is a rectangular part of another display, so that two users can share one screen. Pixels outside the
// window are dropped. Display pushes the whole underlying display.
type Window struct {
	dev        drivers.Displayer
	x, y, w, h int16
}

func NewWindow(dev drivers.Displayer, x, y, w, h int16) *Window {
	return &Window{dev: dev, x: x, y: y, w: w, h: h}
}

func (w *Window) Size() (x, y int16) {
	return w.w, w.h
}

func (w *Window) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= w.w || y >= w.h {
		return
	}
	w.dev.SetPixel(w.x+x, w.y+y, c)
}

func (w *Window) Display() error {
	return w.dev.Display()
}
