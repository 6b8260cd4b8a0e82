// Package termdisplay presents a binclock grid as text, for running the clock on a host with a terminal instead of
// an LED matrix.
package termdisplay

import (
	"bufio"
	"io"
	"time"

	"github.com/ajanata/binclock/binclock"
)

// home moves the cursor to the top left so each frame overwrites the last.
const home = "\x1b[H"

type Config struct {
	// On and Off are the characters drawn for lit and dark cells. Default '#' and '.'.
	On, Off byte
	// Redraw prefixes every frame with a cursor-home escape.
	Redraw bool
}

type Display struct {
	w   io.Writer
	cfg Config

	sleep func(time.Duration)
}

func New(w io.Writer) *Display {
	d := &Display{w: w, sleep: time.Sleep}
	d.Configure(Config{})
	return d
}

func (d *Display) Configure(c Config) {
	if c.On == 0 {
		c.On = '#'
	}
	if c.Off == 0 {
		c.Off = '.'
	}
	d.cfg = c
}

// Show writes g as five lines of text and then sleeps for dur.
func (d *Display) Show(g *binclock.Grid, dur time.Duration) error {
	bw := bufio.NewWriter(d.w)
	if d.cfg.Redraw {
		bw.WriteString(home)
	}
	for row := 0; row < binclock.Rows; row++ {
		for col := 0; col < binclock.Cols; col++ {
			c := d.cfg.Off
			if g[row][col] != 0 {
				c = d.cfg.On
			}
			bw.WriteByte(c)
		}
		bw.WriteByte('\n')
	}
	err := bw.Flush()
	if err != nil {
		return err
	}
	d.sleep(dur)
	return nil
}
