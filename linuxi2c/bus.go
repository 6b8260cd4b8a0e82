//go:build linux

// Package linuxi2c implements drivers.I2C on top of the Linux i2c-dev interface, so the device drivers in this module
// can be used from a Raspberry Pi or any other Linux board.
//
// The kernel binds a file descriptor to one peripheral address, so Bus keeps one open device per address used. A Tx
// with both a write and a read part is done as a write followed by a separate read (a stop and a start rather than a
// repeated start), which register-addressed RTCs accept.
package linuxi2c

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecheney/i2c"
)

var errAddress = errors.New("linuxi2c: address out of range")

type conn interface {
	io.ReadWriteCloser
}

type Bus struct {
	bus  int
	devs map[uint16]conn
	open func(addr uint8, bus int) (conn, error)
}

// New returns a Bus for /dev/i2c-<bus>. Devices are opened on first use.
func New(bus int) *Bus {
	return &Bus{
		bus:  bus,
		devs: map[uint16]conn{},
		open: func(addr uint8, bus int) (conn, error) {
			return i2c.New(addr, bus)
		},
	}
}

func (b *Bus) dev(addr uint16) (conn, error) {
	if addr > 0x7F {
		return nil, errAddress
	}
	if d, ok := b.devs[addr]; ok {
		return d, nil
	}
	d, err := b.open(uint8(addr), b.bus)
	if err != nil {
		return nil, fmt.Errorf("linuxi2c: open %#02x on bus %d: %w", addr, b.bus, err)
	}
	b.devs[addr] = d
	return d, nil
}

// Tx writes w to the device at addr and then reads len(r) bytes into r. Either may be empty.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	d, err := b.dev(addr)
	if err != nil {
		return err
	}
	if len(w) > 0 {
		_, err = d.Write(w)
		if err != nil {
			return err
		}
	}
	if len(r) > 0 {
		_, err = io.ReadFull(d, r)
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Bus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{r}, buf)
}

func (b *Bus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

// Close closes every device opened so far.
func (b *Bus) Close() error {
	var first error
	for addr, d := range b.devs {
		err := d.Close()
		if err != nil && first == nil {
			first = err
		}
		delete(b.devs, addr)
	}
	return first
}
