// Package matrix presents a binclock grid on a pixel display such as the micro:bit LED matrix, an SSD1306 OLED or a
// HUB75 panel.
//
// Each grid cell is drawn as a Scale×Scale block. Directly driven LED matrices only light one row at a time, so they
// need Display called continuously for as long as the grid should be visible; set Multiplexed for those. Buffered
// displays are pushed once and then the caller is put to sleep.
package matrix

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/ajanata/binclock/binclock"
)

const (
	captionHeight   = 10
	captionBaseline = 8
	captionWidth    = 32
)

var black = color.RGBA{A: 255}

type Config struct {
	// Scale is the size in pixels of one cell. Defaults to 1.
	Scale int16
	// X and Y are the position of the top left cell.
	X, Y int16
	// Color is used for lit cells. Defaults to white.
	Color colorful.Color
	// Multiplexed keeps calling Display for the whole duration instead of once.
	Multiplexed bool
	// Caption writes the time as text below the grid.
	Caption bool
}

type Display struct {
	dev drivers.Displayer
	cfg Config
	on  color.RGBA

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a Display on dev. dev must already be configured.
func New(dev drivers.Displayer) *Display {
	d := &Display{
		dev:   dev,
		now:   time.Now,
		sleep: time.Sleep,
	}
	d.Configure(Config{})
	return d
}

func (d *Display) Configure(c Config) {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Color == (colorful.Color{}) {
		c.Color = colorful.Color{R: 1, G: 1, B: 1}
	}
	r, g, b := c.Color.Clamped().RGB255()
	d.on = color.RGBA{R: r, G: g, B: b, A: 255}
	d.cfg = c
}

// Show draws g and keeps it visible for dur.
func (d *Display) Show(g *binclock.Grid, dur time.Duration) error {
	d.draw(g)
	if !d.cfg.Multiplexed {
		err := d.dev.Display()
		if err != nil {
			return err
		}
		d.sleep(dur)
		return nil
	}

	deadline := d.now().Add(dur)
	for {
		err := d.dev.Display()
		if err != nil {
			return err
		}
		if !d.now().Before(deadline) {
			return nil
		}
	}
}

func (d *Display) draw(g *binclock.Grid) {
	s := d.cfg.Scale
	for row := 0; row < binclock.Rows; row++ {
		for col := 0; col < binclock.Cols; col++ {
			c := black
			if g[row][col] != 0 {
				c = d.on
			}
			d.fill(d.cfg.X+int16(col)*s, d.cfg.Y+int16(row)*s, s, s, c)
		}
	}

	if d.cfg.Caption {
		d.caption(g)
	}
}

func (d *Display) caption(g *binclock.Grid) {
	x := d.cfg.X
	y := d.cfg.Y + binclock.Rows*d.cfg.Scale
	d.fill(x, y, captionWidth, captionHeight, black)

	hour, minute := g.Time()
	sep := byte(' ')
	if g.Colon() {
		sep = ':'
	}
	text := []byte{'0' + hour/10%10, '0' + hour%10, sep, '0' + minute/10%10, '0' + minute%10}
	tinyfont.WriteLine(d.dev, &proggy.TinySZ8pt7b, x, y+captionBaseline, string(text), d.on)
}

func (d *Display) fill(x, y, w, h int16, c color.RGBA) {
	for i := int16(0); i < w; i++ {
		for j := int16(0); j < h; j++ {
			d.dev.SetPixel(x+i, y+j, c)
		}
	}
}
