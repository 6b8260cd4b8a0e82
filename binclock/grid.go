// Package binclock renders hours and minutes onto a 5×5 LED grid as binary bar codes and drives the blink loop that
// presents it.
//
// Each of the four time digits occupies one column. Bit b of the digit lights row 4-b, so the least significant bit
// is the bottom row and a column reads as a 5-bit number from top to bottom. The middle column carries the colon,
// which blinks in its bottom two rows.
//
//	col:  0   1   2   3   4
//	     H10 H1   :  M10 M1
package binclock

const (
	Rows = 5
	Cols = 5
)

// Columns of the grid.
const (
	HoursTens    = 0
	HoursUnits   = 1
	ColonColumn  = 2
	MinutesTens  = 3
	MinutesUnits = 4
)

// Grid is a row-major 5×5 pixel map, row 0 at the top. Every cell is 0 or 1.
type Grid [Rows][Cols]uint8

// SetTime writes the four digits of hour and minute into their columns. The colon column is not touched. Values are
// not validated; a digit above 31 only keeps its low five bits.
func (g *Grid) SetTime(hour, minute uint8) {
	g.SetColumn(HoursTens, hour/10)
	g.SetColumn(HoursUnits, hour%10)
	g.SetColumn(MinutesTens, minute/10)
	g.SetColumn(MinutesUnits, minute%10)
}

// SetColumn writes digit as a bar code down column col.
func (g *Grid) SetColumn(col int, digit uint8) {
	for b := 0; b < Rows; b++ {
		g[Rows-1-b][col] = digit >> b & 1
	}
}

// SetColon lights or clears the two colon cells. Nothing else is touched.
func (g *Grid) SetColon(on bool) {
	var v uint8
	if on {
		v = 1
	}
	g[3][ColonColumn] = v
	g[4][ColonColumn] = v
}

// Column reads the bar code in column col back as a number.
func (g Grid) Column(col int) uint8 {
	var digit uint8
	for b := 0; b < Rows; b++ {
		digit |= g[Rows-1-b][col] << b
	}
	return digit
}

// Time decodes the hour and minute shown in the digit columns.
func (g Grid) Time() (hour, minute uint8) {
	hour = g.Column(HoursTens)*10 + g.Column(HoursUnits)
	minute = g.Column(MinutesTens)*10 + g.Column(MinutesUnits)
	return hour, minute
}

// Colon reports whether the colon is lit.
func (g Grid) Colon() bool {
	return g[3][ColonColumn] == 1 && g[4][ColonColumn] == 1
}
