package termdisplay

import (
	"bytes"
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/binclock/binclock"
)

func TestShow(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	d := New(&buf)
	var slept time.Duration
	d.sleep = func(dur time.Duration) { slept = dur }

	var g binclock.Grid
	g.SetTime(13, 47)
	g.SetColon(true)
	c.Assert(d.Show(&g, time.Second), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, ""+
		".....\n"+
		".....\n"+
		"...##\n"+
		".##.#\n"+
		"###.#\n")
	c.Assert(slept, qt.Equals, time.Second)
}

func TestShowRedraw(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	d := New(&buf)
	d.sleep = func(time.Duration) {}
	d.Configure(Config{On: 'X', Off: ' ', Redraw: true})

	var g binclock.Grid
	g.SetColon(true)
	c.Assert(d.Show(&g, 0), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "\x1b[H     \n     \n     \n  X  \n  X  \n")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestShowWriteError(t *testing.T) {
	c := qt.New(t)
	d := New(failWriter{})
	d.sleep = func(time.Duration) { t.Fatal("should not sleep after a failed write") }
	var g binclock.Grid
	c.Assert(d.Show(&g, time.Second), qt.ErrorMatches, "closed")
}
