// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dhh

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI interface parameters. The LIS3DHH supports up to 10MHz; reads set the
// MSB of the register address.
var (
	SPIFrequency = 1 * physic.MegaHertz
	SPIMode      = spi.Mode0
	SPIBits      = 8
)

const spiRead = 0x80

// errNotConnected is returned when a transport is used before a bus or port
// has been attached to it.
var errNotConnected = errors.New("lis3dhh: transport not connected")

// transport encapsulates the serial interface to the device. Exactly one of
// d or s is set. The caller owns the underlying bus; the transport never
// closes it.
type transport struct {
	d *i2c.Dev
	s spi.Conn
}

func newI2CTransport(bus i2c.Bus, addr uint16) *transport {
	return &transport{d: &i2c.Dev{Bus: bus, Addr: addr}}
}

func newSPITransport(p spi.Port) (*transport, error) {
	c, err := p.Connect(SPIFrequency, SPIMode, SPIBits)
	if err != nil {
		return nil, err
	}
	return &transport{s: c}, nil
}

// readReg reads len(buf) consecutive registers starting at reg. Multi-byte
// reads rely on the device's address auto increment. The conn error is
// returned unchanged.
func (t *transport) readReg(reg byte, buf []byte) error {
	switch {
	case t == nil:
		return errNotConnected
	case t.d != nil:
		return t.d.Tx([]byte{reg}, buf)
	case t.s != nil:
		w := make([]byte, len(buf)+1)
		w[0] = reg | spiRead
		r := make([]byte, len(w))
		if err := t.s.Tx(w, r); err != nil {
			return err
		}
		copy(buf, r[1:])
		return nil
	default:
		return errNotConnected
	}
}

// writeReg writes len(buf) consecutive registers starting at reg.
func (t *transport) writeReg(reg byte, buf []byte) error {
	switch {
	case t == nil:
		return errNotConnected
	case t.d != nil:
		return t.d.Tx(append([]byte{reg}, buf...), nil)
	case t.s != nil:
		w := append([]byte{reg}, buf...)
		r := make([]byte, len(w))
		return t.s.Tx(w, r)
	default:
		return errNotConnected
	}
}
