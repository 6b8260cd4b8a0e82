package bcd_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/binclock/bcd"
)

func TestMinutes(t *testing.T) {
	c := qt.New(t)
	c.Assert(bcd.Minutes(0x47), qt.Equals, uint8(47))
	c.Assert(bcd.Minutes(0x00), qt.Equals, uint8(0))
	c.Assert(bcd.Minutes(0x59), qt.Equals, uint8(59))
}

func TestHours(t *testing.T) {
	c := qt.New(t)
	c.Assert(bcd.Hours(0x23), qt.Equals, uint8(23))
	c.Assert(bcd.Hours(0x13), qt.Equals, uint8(13))
	c.Assert(bcd.Hours(0x09), qt.Equals, uint8(9))
}

func TestReservedBitsIgnored(t *testing.T) {
	c := qt.New(t)
	c.Assert(bcd.Minutes(0x80|0x47), qt.Equals, bcd.Minutes(0x47))
	c.Assert(bcd.Hours(0xC0|0x23), qt.Equals, bcd.Hours(0x23))
	c.Assert(bcd.Seconds(0x80|0x31), qt.Equals, uint8(31))
}

func TestNoRangeCheck(t *testing.T) {
	c := qt.New(t)
	// tens digit 7 is accepted even though no real minute has it
	c.Assert(bcd.Minutes(0x79), qt.Equals, uint8(79))
	c.Assert(bcd.Hours(0x39), qt.Equals, uint8(39))
}

func TestEncodeRoundTrip(t *testing.T) {
	c := qt.New(t)
	for v := uint8(0); v < 60; v++ {
		c.Assert(bcd.Minutes(bcd.Encode(v)), qt.Equals, v, qt.Commentf("minute %d", v))
	}
	for v := uint8(0); v < 24; v++ {
		c.Assert(bcd.Hours(bcd.Encode(v)), qt.Equals, v, qt.Commentf("hour %d", v))
	}
	c.Assert(bcd.Encode(47), qt.Equals, byte(0x47))
}
