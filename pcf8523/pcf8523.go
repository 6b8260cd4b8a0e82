// Package pcf8523 implements a driver for the PCF8523 Real-Time Clock (RTC), providing basic read-write of the current
// time only. The PCF8523 itself supports alarms, clock drift compensation, and timer interrupts, but those features
// remain unimplemented.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF8523.pdf
package pcf8523

import (
	"time"

	"tinygo.org/x/drivers"

	"github.com/ajanata/binclock/bcd"
)

type Device struct {
	bus     drivers.I2C
	Address uint8
}

func New(i2c drivers.I2C) Device {
	return Device{
		bus:     i2c,
		Address: Address,
	}
}

func (d *Device) read(reg uint8, buf []byte) error {
	return d.bus.Tx(uint16(d.Address), []byte{reg}, buf)
}

func (d *Device) write(reg uint8, data ...byte) error {
	return d.bus.Tx(uint16(d.Address), append([]byte{reg}, data...), nil)
}

// LostPower reports whether the oscillator stopped since the time was last set.
func (d *Device) LostPower() (bool, error) {
	buf := [1]byte{}
	err := d.read(Status, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&osFlag != 0, nil
}

// Initialized reports whether battery switchover has been configured by Set.
func (d *Device) Initialized() (bool, error) {
	buf := [1]byte{}
	err := d.read(Control3, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&0xE0 != 0xE0, nil
}

func (d *Device) Set(t time.Time) error {
	rbuf := [1]byte{}
	err := d.read(Control1, rbuf[:])
	if err != nil {
		return err
	}
	// do not change cap_sel or second/alarm/correction interrupts
	// ensure RTC is running and 24-hour mode is selected
	err = d.write(Control1, rbuf[0]&0b1000_0111)
	if err != nil {
		return err
	}

	err = d.write(Time,
		bcd.Encode(uint8(t.Second())),
		bcd.Encode(uint8(t.Minute())),
		bcd.Encode(uint8(t.Hour())),
		bcd.Encode(uint8(t.Day())),
		uint8(t.Weekday()),
		bcd.Encode(uint8(t.Month())),
		bcd.Encode(uint8(t.Year()-2000)),
	)
	if err != nil {
		return err
	}
	// turn on battery switchover mode, turn off battery-related interrupts
	return d.write(Control3, 0)
}

// Clock reads minutes and hours in a single transaction.
func (d *Device) Clock() (hour, minute uint8, err error) {
	buf := [2]byte{}
	err = d.read(Minutes, buf[:])
	if err != nil {
		return 0, 0, err
	}
	return bcd.Hours(buf[1]), bcd.Minutes(buf[0]), nil
}

func (d *Device) Now() (time.Time, error) {
	buf := [7]byte{}
	err := d.read(Time, buf[:])
	if err != nil {
		return time.Time{}, err
	}

	seconds := bcd.Seconds(buf[0])
	minute := bcd.Minutes(buf[1])
	hour := bcd.Hours(buf[2])
	day := bcd.Decode(buf[3], 0x30)
	// we don't need to read the weekday
	month := time.Month(bcd.Decode(buf[5], 0x10))
	year := int(bcd.Decode(buf[6], 0xF0)) + 2000

	return time.Date(year, month, int(day), int(hour), int(minute), int(seconds), 0, time.UTC), nil
}
