// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dhh

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultAddress is the 7-bit I²C address with the SDO/SA0 pad low.
const DefaultAddress uint16 = 0x1D

// One temperature LSB is 1/16 of a degree.
const temperatureResolution physic.Temperature = 62_500 * physic.MicroKelvin

// Zero temperature code corresponds to 25°C.
const temperatureOffset physic.Temperature = physic.ZeroCelsius + 25*physic.Kelvin

// DefaultOpts is the recommended configuration: block data update enabled and
// the sensor running at its native 1.1kHz rate.
var DefaultOpts = Opts{
	DataRate:         ODR1100Hz,
	BlockDataUpdate:  true,
	ExpectedDeviceID: DeviceIDValue,
}

// Opts holds the configuration applied when the device is opened.
type Opts struct {
	// DataRate the device is switched to on start.
	DataRate DataRate
	// BlockDataUpdate prevents the output registers from being updated
	// between the read of the low and high byte of a sample.
	BlockDataUpdate bool
	// ExpectedDeviceID is checked against the WHO_AM_I register. Leave zero
	// to use DeviceIDValue.
	ExpectedDeviceID byte
}

// Dev is a driver for the ST LIS3DHH 3-axis accelerometer with embedded
// temperature sensor.
//
// Every accessor is a single synchronous register transaction. The driver
// keeps no copy of device state; concurrent use of the same Dev must be
// serialized by the caller, except for Sense/SenseContinuous/Halt which take
// an internal lock.
type Dev struct {
	t        *transport
	mu       sync.Mutex
	shutdown chan struct{}
}

// NewI2C opens a LIS3DHH on the given I²C bus. If opts is nil, DefaultOpts
// is used. The bus is owned by the caller.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	return open(newI2CTransport(b, addr), opts)
}

// NewSPI opens a LIS3DHH on the given SPI port. If opts is nil, DefaultOpts
// is used. The port is owned by the caller.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	t, err := newSPITransport(p)
	if err != nil {
		return nil, err
	}
	return open(t, opts)
}

func open(t *transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	expected := opts.ExpectedDeviceID
	if expected == 0 {
		expected = DeviceIDValue
	}
	d := &Dev{t: t}
	id, err := d.DeviceID()
	if err != nil {
		return nil, err
	}
	if id != expected {
		return nil, fmt.Errorf("lis3dhh: unexpected device id %#02x, want %#02x", id, expected)
	}
	if opts.BlockDataUpdate {
		if err := d.SetBlockDataUpdate(true); err != nil {
			return nil, err
		}
	}
	if opts.DataRate != PowerDown {
		if err := d.SetDataRate(opts.DataRate); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	if d.t != nil && d.t.d != nil {
		return fmt.Sprintf("lis3dhh: %s", d.t.d.String())
	}
	return "lis3dhh: spi"
}

// readByte returns the content of a single register. The register content is
// returned even when the read failed, so callers can decode it into the
// field's normalized default while passing the error through.
func (d *Dev) readByte(reg byte) (byte, error) {
	var buf [1]byte
	err := d.t.readReg(reg, buf[:])
	return buf[0], err
}

// modify reads reg, applies f and writes the result back. The write is
// skipped when the read fails.
func (d *Dev) modify(reg byte, f func(byte) byte) error {
	var buf [1]byte
	if err := d.t.readReg(reg, buf[:]); err != nil {
		return err
	}
	buf[0] = f(buf[0])
	if reg == RegCtrl4 {
		// Bit 0 of CTRL_REG4 must always be written as one.
		buf[0] |= ctrl4One
	}
	return d.t.writeReg(reg, buf[:])
}

// setBit sets or clears the bits in mask.
func (d *Dev) setBit(reg, mask byte, on bool) error {
	return d.modify(reg, func(b byte) byte {
		if on {
			return b | mask
		}
		return b &^ mask
	})
}

// DeviceID returns the content of the WHO_AM_I register, 0x11 on a LIS3DHH.
func (d *Dev) DeviceID() (byte, error) {
	return d.readByte(RegWhoAmI)
}

// SetBlockDataUpdate enables or disables block data update. With BDU enabled
// the output registers of a sample are not updated until both bytes have
// been read.
func (d *Dev) SetBlockDataUpdate(on bool) error {
	return d.setBit(RegCtrl1, ctrl1BDU, on)
}

// BlockDataUpdate returns whether block data update is enabled.
func (d *Dev) BlockDataUpdate() (bool, error) {
	b, err := d.readByte(RegCtrl1)
	return b&ctrl1BDU != 0, err
}

// SetDataRate selects between power-down and the 1.1kHz operating mode.
func (d *Dev) SetDataRate(r DataRate) error {
	return d.setBit(RegCtrl1, ctrl1NormMod, r == ODR1100Hz)
}

// DataRate returns the selected output data rate.
func (d *Dev) DataRate() (DataRate, error) {
	b, err := d.readByte(RegCtrl1)
	return dataRate(b >> 7), err
}

// SetReset triggers a software reset, restoring the default values of the
// user registers. The bit self-clears once the reset completes.
func (d *Dev) SetReset(on bool) error {
	return d.setBit(RegCtrl1, ctrl1SwReset, on)
}

// Reset returns whether a software reset is in progress.
func (d *Dev) Reset() (bool, error) {
	b, err := d.readByte(RegCtrl1)
	return b&ctrl1SwReset != 0, err
}

// SetBoot reboots the memory content, reloading the trimming parameters.
func (d *Dev) SetBoot(on bool) error {
	return d.setBit(RegCtrl1, ctrl1Boot, on)
}

// Boot returns whether a reboot is in progress.
func (d *Dev) Boot() (bool, error) {
	b, err := d.readByte(RegCtrl1)
	return b&ctrl1Boot != 0, err
}

// SetAutoIncrement enables automatic register address increment during
// multi-byte serial accesses.
func (d *Dev) SetAutoIncrement(on bool) error {
	return d.setBit(RegCtrl1, ctrl1IfAddInc, on)
}

// AutoIncrement returns whether register auto increment is enabled.
func (d *Dev) AutoIncrement() (bool, error) {
	b, err := d.readByte(RegCtrl1)
	return b&ctrl1IfAddInc != 0, err
}

// SetDataReadyMode selects latched or pulsed data-ready signalling. The
// pulse duration is 1/4 ODR.
func (d *Dev) SetDataReadyMode(m DataReadyMode) error {
	return d.setBit(RegCtrl1, ctrl1DrdyPulse, m == Pulsed)
}

// DataReadyMode returns the data-ready signalling mode.
func (d *Dev) DataReadyMode() (DataReadyMode, error) {
	b, err := d.readByte(RegCtrl1)
	return dataReadyMode(b >> 1 & 0x1), err
}

// SetSelfTest engages the electrostatic self-test actuation.
func (d *Dev) SetSelfTest(st SelfTest) error {
	return d.modify(RegCtrl4, func(b byte) byte {
		return b&^ctrl4StMask | byte(st)<<ctrl4StShift&ctrl4StMask
	})
}

// SelfTest returns the self-test configuration.
func (d *Dev) SelfTest() (SelfTest, error) {
	b, err := d.readByte(RegCtrl4)
	return selfTest(b & ctrl4StMask >> ctrl4StShift), err
}

// SetFilterConfig selects the digital filter phase and bandwidth.
func (d *Dev) SetFilterConfig(fc FilterConfig) error {
	return d.modify(RegCtrl4, func(b byte) byte {
		return b&^ctrl4DspMask | byte(fc)<<ctrl4DspShift&ctrl4DspMask
	})
}

// FilterConfig returns the digital filter configuration.
func (d *Dev) FilterConfig() (FilterConfig, error) {
	b, err := d.readByte(RegCtrl4)
	return filterConfig(b & ctrl4DspMask >> ctrl4DspShift), err
}

// SetPinMode selects push-pull or open drain drive on the interrupt pads.
func (d *Dev) SetPinMode(m PinMode) error {
	return d.modify(RegCtrl4, func(b byte) byte {
		return b&^ctrl4PpOdMask | byte(m)<<ctrl4PpOdShift&ctrl4PpOdMask
	})
}

// PinMode returns the interrupt pad drive configuration.
func (d *Dev) PinMode() (PinMode, error) {
	b, err := d.readByte(RegCtrl4)
	return pinMode(b & ctrl4PpOdMask >> ctrl4PpOdShift), err
}

// Status returns the decoded STATUS register.
func (d *Dev) Status() (Status, error) {
	b, err := d.readByte(RegStatus)
	return decodeStatus(b), err
}

// DataReady returns whether a new acceleration sample is available on all
// three axes.
func (d *Dev) DataReady() (bool, error) {
	b, err := d.readByte(RegStatus)
	return b&statusZYXDA != 0, err
}

// DataOverrun returns whether an acceleration sample was overwritten before
// being read.
func (d *Dev) DataOverrun() (bool, error) {
	b, err := d.readByte(RegStatus)
	return b&statusZYXOR != 0, err
}

// TemperatureRaw returns the raw temperature code. The hardware resolution
// is 12 bits, left-justified in the 16-bit register pair.
func (d *Dev) TemperatureRaw() (int16, error) {
	var buf [2]byte
	err := d.t.readReg(RegOutTempL, buf[:])
	raw := int16(uint16(buf[1])<<8 | uint16(buf[0]))
	return raw / 16, err
}

// AccelerationRaw returns one raw three axis sample.
func (d *Dev) AccelerationRaw() (Acceleration, error) {
	var buf [6]byte
	err := d.t.readReg(RegOutXL, buf[:])
	return Acceleration{
		X: int16(uint16(buf[1])<<8 | uint16(buf[0])),
		Y: int16(uint16(buf[3])<<8 | uint16(buf[2])),
		Z: int16(uint16(buf[5])<<8 | uint16(buf[4])),
	}, err
}

// SetINT1Mode configures the INT1 pad as an output for FIFO flags or as an
// external asynchronous input trigger to the FIFO.
func (d *Dev) SetINT1Mode(m INT1Mode) error {
	return d.setBit(RegInt1Ctrl, int1Ext, m == PinAsTrigger)
}

// INT1Mode returns the INT1 pad configuration.
func (d *Dev) INT1Mode() (INT1Mode, error) {
	b, err := d.readByte(RegInt1Ctrl)
	return int1Mode(b >> 2 & 0x1), err
}

// SetFIFOThresholdOnINT1 routes the FIFO watermark status to the INT1 pin.
func (d *Dev) SetFIFOThresholdOnINT1(on bool) error {
	return d.setBit(RegInt1Ctrl, int1Fth, on)
}

// FIFOThresholdOnINT1 returns whether the FIFO watermark status is routed to
// the INT1 pin.
func (d *Dev) FIFOThresholdOnINT1() (bool, error) {
	b, err := d.readByte(RegInt1Ctrl)
	return b&int1Fth != 0, err
}

// SetFIFOFullOnINT1 routes the FIFO full flag to the INT1 pin.
func (d *Dev) SetFIFOFullOnINT1(on bool) error {
	return d.setBit(RegInt1Ctrl, int1Fss5, on)
}

// FIFOFullOnINT1 returns whether the FIFO full flag is routed to the INT1
// pin.
func (d *Dev) FIFOFullOnINT1() (bool, error) {
	b, err := d.readByte(RegInt1Ctrl)
	return b&int1Fss5 != 0, err
}

// SetFIFOOverrunOnINT1 routes the FIFO overrun interrupt to the INT1 pin.
func (d *Dev) SetFIFOOverrunOnINT1(on bool) error {
	return d.setBit(RegInt1Ctrl, int1Ovr, on)
}

// FIFOOverrunOnINT1 returns whether the FIFO overrun interrupt is routed to
// the INT1 pin.
func (d *Dev) FIFOOverrunOnINT1() (bool, error) {
	b, err := d.readByte(RegInt1Ctrl)
	return b&int1Ovr != 0, err
}

// SetBootOnINT1 routes the boot status to the INT1 pin.
func (d *Dev) SetBootOnINT1(on bool) error {
	return d.setBit(RegInt1Ctrl, int1Boot, on)
}

// BootOnINT1 returns whether the boot status is routed to the INT1 pin.
func (d *Dev) BootOnINT1() (bool, error) {
	b, err := d.readByte(RegInt1Ctrl)
	return b&int1Boot != 0, err
}

// SetDataReadyOnINT1 routes the data-ready signal to the INT1 pin.
func (d *Dev) SetDataReadyOnINT1(on bool) error {
	return d.setBit(RegInt1Ctrl, int1Drdy, on)
}

// DataReadyOnINT1 returns whether the data-ready signal is routed to the
// INT1 pin.
func (d *Dev) DataReadyOnINT1() (bool, error) {
	b, err := d.readByte(RegInt1Ctrl)
	return b&int1Drdy != 0, err
}

// SetFIFOThresholdOnINT2 routes the FIFO watermark status to the INT2 pin.
func (d *Dev) SetFIFOThresholdOnINT2(on bool) error {
	return d.setBit(RegInt2Ctrl, int2Fth, on)
}

// FIFOThresholdOnINT2 returns whether the FIFO watermark status is routed to
// the INT2 pin.
func (d *Dev) FIFOThresholdOnINT2() (bool, error) {
	b, err := d.readByte(RegInt2Ctrl)
	return b&int2Fth != 0, err
}

// SetFIFOFullOnINT2 routes the FIFO full flag to the INT2 pin.
func (d *Dev) SetFIFOFullOnINT2(on bool) error {
	return d.setBit(RegInt2Ctrl, int2Fss5, on)
}

// FIFOFullOnINT2 returns whether the FIFO full flag is routed to the INT2
// pin.
func (d *Dev) FIFOFullOnINT2() (bool, error) {
	b, err := d.readByte(RegInt2Ctrl)
	return b&int2Fss5 != 0, err
}

// SetFIFOOverrunOnINT2 routes the FIFO overrun interrupt to the INT2 pin.
func (d *Dev) SetFIFOOverrunOnINT2(on bool) error {
	return d.setBit(RegInt2Ctrl, int2Ovr, on)
}

// FIFOOverrunOnINT2 returns whether the FIFO overrun interrupt is routed to
// the INT2 pin.
func (d *Dev) FIFOOverrunOnINT2() (bool, error) {
	b, err := d.readByte(RegInt2Ctrl)
	return b&int2Ovr != 0, err
}

// SetBootOnINT2 routes the boot status to the INT2 pin.
func (d *Dev) SetBootOnINT2(on bool) error {
	return d.setBit(RegInt2Ctrl, int2Boot, on)
}

// BootOnINT2 returns whether the boot status is routed to the INT2 pin.
func (d *Dev) BootOnINT2() (bool, error) {
	b, err := d.readByte(RegInt2Ctrl)
	return b&int2Boot != 0, err
}

// SetDataReadyOnINT2 routes the data-ready signal to the INT2 pin.
func (d *Dev) SetDataReadyOnINT2(on bool) error {
	return d.setBit(RegInt2Ctrl, int2Drdy, on)
}

// DataReadyOnINT2 returns whether the data-ready signal is routed to the
// INT2 pin.
func (d *Dev) DataReadyOnINT2() (bool, error) {
	b, err := d.readByte(RegInt2Ctrl)
	return b&int2Drdy != 0, err
}

// SetFIFOEnable enables the FIFO block.
func (d *Dev) SetFIFOEnable(on bool) error {
	return d.setBit(RegCtrl4, ctrl4FifoEn, on)
}

// FIFOEnable returns whether the FIFO block is enabled.
func (d *Dev) FIFOEnable() (bool, error) {
	b, err := d.readByte(RegCtrl4)
	return b&ctrl4FifoEn != 0, err
}

// SetFIFOHighSpeed enables the SPI high speed configuration for the FIFO
// block, recommended for SPI clock frequencies above 6MHz.
func (d *Dev) SetFIFOHighSpeed(on bool) error {
	return d.setBit(RegCtrl5, ctrl5FifoSpiHsOn, on)
}

// FIFOHighSpeed returns whether the FIFO SPI high speed configuration is
// enabled.
func (d *Dev) FIFOHighSpeed() (bool, error) {
	b, err := d.readByte(RegCtrl5)
	return b&ctrl5FifoSpiHsOn != 0, err
}

// SetFIFOWatermark sets the FIFO watermark level. The level is clamped to
// the 5-bit field.
func (d *Dev) SetFIFOWatermark(level uint8) error {
	return d.modify(RegFifoCtrl, func(b byte) byte {
		return b&^fifoCtrlFthMask | level&fifoCtrlFthMask
	})
}

// FIFOWatermark returns the FIFO watermark level.
func (d *Dev) FIFOWatermark() (uint8, error) {
	b, err := d.readByte(RegFifoCtrl)
	return b & fifoCtrlFthMask, err
}

// SetFIFOMode selects the FIFO operating mode.
func (d *Dev) SetFIFOMode(m FIFOMode) error {
	return d.modify(RegFifoCtrl, func(b byte) byte {
		return b&^fifoCtrlModeMask | byte(m)<<fifoCtrlModeShift&fifoCtrlModeMask
	})
}

// FIFOMode returns the FIFO operating mode.
func (d *Dev) FIFOMode() (FIFOMode, error) {
	b, err := d.readByte(RegFifoCtrl)
	return fifoMode(b & fifoCtrlModeMask >> fifoCtrlModeShift), err
}

// FIFOSource returns the decoded FIFO_SRC register.
func (d *Dev) FIFOSource() (FIFOSource, error) {
	b, err := d.readByte(RegFifoSrc)
	return decodeFIFOSource(b), err
}

// FIFOStoredLevel returns the number of samples currently stored in the
// FIFO.
func (d *Dev) FIFOStoredLevel() (uint8, error) {
	b, err := d.readByte(RegFifoSrc)
	return b & fifoSrcFssMask, err
}

// FIFOOverrunFlag returns whether the FIFO has overwritten unread data.
func (d *Dev) FIFOOverrunFlag() (bool, error) {
	b, err := d.readByte(RegFifoSrc)
	return b&fifoSrcOvrn != 0, err
}

// FIFOWatermarkFlag returns whether the FIFO level is at or above the
// watermark.
func (d *Dev) FIFOWatermarkFlag() (bool, error) {
	b, err := d.readByte(RegFifoSrc)
	return b&fifoSrcFth != 0, err
}

// Temperature returns the die temperature.
func (d *Dev) Temperature() (physic.Temperature, error) {
	raw, err := d.TemperatureRaw()
	return temperatureOffset + physic.Temperature(raw)*temperatureResolution, err
}

// Sense reads the die temperature into env. Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, err := d.Temperature()
	if err != nil {
		return err
	}
	env.Temperature = t
	return nil
}

// SenseContinuous reads the die temperature at the given interval until
// Halt is called. Implements physic.SenseEnv.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < time.Millisecond {
		return nil, errors.New("lis3dhh: minimum interval is 1ms")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		return nil, errors.New("lis3dhh: continuous sensing already in progress")
	}
	d.shutdown = make(chan struct{})
	channel := make(chan physic.Env, 16)
	go func(shutdown <-chan struct{}) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-shutdown:
				close(channel)
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := d.Sense(&e); err == nil && len(channel) < cap(channel) {
					channel <- e
				}
			}
		}
	}(d.shutdown)
	return channel, nil
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = temperatureResolution
	env.Pressure = 0
	env.Humidity = 0
}

// Halt stops a SenseContinuous operation if one is in progress and powers
// the sensor down. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shutdown != nil {
		close(d.shutdown)
		d.shutdown = nil
	}
	return d.SetDataRate(PowerDown)
}

// Acceleration is one raw three axis sample.
type Acceleration struct {
	X int16
	Y int16
	Z int16
}

// MilliG converts the raw sample to milli-g on each axis.
func (a Acceleration) MilliG() (x, y, z float64) {
	return toMilliG(a.X), toMilliG(a.Y), toMilliG(a.Z)
}

func (a Acceleration) String() string {
	x, y, z := a.MilliG()
	return fmt.Sprintf("X:%.3fmg Y:%.3fmg Z:%.3fmg", x, y, z)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
