package binclock_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/binclock/binclock"
)

func TestColumnRoundTrip(t *testing.T) {
	c := qt.New(t)
	for digit := uint8(0); digit < 32; digit++ {
		var g binclock.Grid
		g.SetColumn(binclock.MinutesUnits, digit)
		c.Assert(g.Column(binclock.MinutesUnits), qt.Equals, digit)
		for row := 0; row < binclock.Rows; row++ {
			for col := 0; col < binclock.Cols; col++ {
				v := g[row][col]
				c.Assert(v == 0 || v == 1, qt.Equals, true)
				if col != binclock.MinutesUnits {
					c.Assert(v, qt.Equals, uint8(0))
				}
			}
		}
	}
}

func TestColumnBits(t *testing.T) {
	c := qt.New(t)
	var g binclock.Grid
	g.SetColumn(0, 5)
	// 00101: rows 2 and 4 lit
	c.Assert([]uint8{g[0][0], g[1][0], g[2][0], g[3][0], g[4][0]}, qt.DeepEquals, []uint8{0, 0, 1, 0, 1})
}

func TestTimeRoundTrip(t *testing.T) {
	c := qt.New(t)
	var g binclock.Grid
	for hour := uint8(0); hour < 24; hour++ {
		for minute := uint8(0); minute < 60; minute++ {
			g.SetTime(hour, minute)
			h, m := g.Time()
			c.Assert(h, qt.Equals, hour)
			c.Assert(m, qt.Equals, minute)
		}
	}
}

func TestSetTimeLeavesColon(t *testing.T) {
	c := qt.New(t)
	var g binclock.Grid
	g.SetColon(true)
	g.SetTime(23, 59)
	c.Assert(g.Colon(), qt.Equals, true)
	for row := 0; row < 3; row++ {
		c.Assert(g[row][binclock.ColonColumn], qt.Equals, uint8(0))
	}
}

func TestSetTime1347(t *testing.T) {
	c := qt.New(t)
	var g binclock.Grid
	g.SetTime(13, 47)
	c.Assert(g, qt.DeepEquals, binclock.Grid{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1},
		{0, 1, 0, 0, 1},
		{1, 1, 0, 0, 1},
	})
}

func TestColon(t *testing.T) {
	c := qt.New(t)
	var g binclock.Grid
	g.SetTime(21, 36)
	before := g

	g.SetColon(true)
	once := g
	g.SetColon(true)
	c.Assert(g, qt.DeepEquals, once)
	c.Assert(g[3][2], qt.Equals, uint8(1))
	c.Assert(g[4][2], qt.Equals, uint8(1))

	g.SetColon(false)
	c.Assert(g, qt.DeepEquals, before)
	c.Assert(g.Colon(), qt.Equals, false)
}
