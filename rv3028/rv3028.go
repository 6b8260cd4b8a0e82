// Package rv3028 implements a driver for the RV-3028-C7 Real-Time Clock (RTC), providing read-write of the current
// time only. The RV-3028-C7 also has alarms, a countdown timer, timestamping and user EEPROM, but those features
// remain unimplemented.
//
// Every read is its own transaction: the register address is written, then exactly one byte is read back. The device
// is always run in 24-hour mode.
//
// Datasheet: https://www.microcrystal.com/fileadmin/Media/Products/RTC/App.Manual/RV-3028-C7_App-Manual.pdf
package rv3028

import (
	"time"

	"tinygo.org/x/drivers"

	"github.com/ajanata/binclock/bcd"
)

type Device struct {
	bus     drivers.I2C
	Address uint8
}

type Config struct {
	Address uint8
}

func New(i2c drivers.I2C) Device {
	return Device{
		bus:     i2c,
		Address: Address,
	}
}

func (d *Device) Configure(c Config) {
	if c.Address == 0 {
		c.Address = Address
	}
	d.Address = c.Address
}

// ReadRegister selects reg and reads its single byte back.
func (d *Device) ReadRegister(reg uint8) (byte, error) {
	buf := [1]byte{}
	err := d.bus.Tx(uint16(d.Address), []byte{reg}, buf[:])
	return buf[0], err
}

func (d *Device) writeRegisters(reg uint8, data ...byte) error {
	return d.bus.Tx(uint16(d.Address), append([]byte{reg}, data...), nil)
}

// Minutes reads the minutes register.
func (d *Device) Minutes() (uint8, error) {
	b, err := d.ReadRegister(Minutes)
	if err != nil {
		return 0, err
	}
	return bcd.Minutes(b), nil
}

// Hours reads the hours register. The device must be in 24-hour mode, which Set ensures.
func (d *Device) Hours() (uint8, error) {
	b, err := d.ReadRegister(Hours)
	if err != nil {
		return 0, err
	}
	return bcd.Hours(b), nil
}

// Clock reads minutes and then hours as two separate transactions. The values are not range checked.
func (d *Device) Clock() (hour, minute uint8, err error) {
	minute, err = d.Minutes()
	if err != nil {
		return 0, 0, err
	}
	hour, err = d.Hours()
	if err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}

// LostPower reports whether the power-on reset flag is set, meaning the time is not valid until Set is called.
func (d *Device) LostPower() (bool, error) {
	b, err := d.ReadRegister(Status)
	if err != nil {
		return false, err
	}
	return b&statusPORF != 0, nil
}

func (d *Device) Set(t time.Time) error {
	ctrl, err := d.ReadRegister(Control2)
	if err != nil {
		return err
	}
	// 24-hour mode, everything else untouched
	err = d.writeRegisters(Control2, ctrl&^control2Mode12)
	if err != nil {
		return err
	}

	err = d.writeRegisters(Seconds,
		bcd.Encode(uint8(t.Second())),
		bcd.Encode(uint8(t.Minute())),
		bcd.Encode(uint8(t.Hour())),
		uint8(t.Weekday()),
		bcd.Encode(uint8(t.Day())),
		bcd.Encode(uint8(t.Month())),
		bcd.Encode(uint8(t.Year()-2000)),
	)
	if err != nil {
		return err
	}

	status, err := d.ReadRegister(Status)
	if err != nil {
		return err
	}
	return d.writeRegisters(Status, status&^statusPORF)
}

func (d *Device) Now() (time.Time, error) {
	buf := [7]byte{}
	err := d.bus.Tx(uint16(d.Address), []byte{Seconds}, buf[:])
	if err != nil {
		return time.Time{}, err
	}

	seconds := bcd.Seconds(buf[0])
	minute := bcd.Minutes(buf[1])
	hour := bcd.Hours(buf[2])
	// weekday is not needed
	day := bcd.Decode(buf[4], 0x30)
	month := time.Month(bcd.Decode(buf[5], 0x10))
	year := int(bcd.Decode(buf[6], 0xF0)) + 2000

	return time.Date(year, month, int(day), int(hour), int(minute), int(seconds), 0, time.UTC), nil
}
