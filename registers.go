// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dhh

// Register addresses of the LIS3DHH. The layout is the wire contract with
// the device and matches the datasheet bit for bit.
const (
	RegWhoAmI   = 0x0F // Device identification, reads 0x11
	RegCtrl1    = 0x20 // Control register 1: power mode, boot, reset, BDU
	RegInt1Ctrl = 0x21 // INT1 pin routing
	RegInt2Ctrl = 0x22 // INT2 pin routing
	RegCtrl4    = 0x23 // Control register 4: self-test, pin mode, FIFO enable, filter
	RegCtrl5    = 0x24 // Control register 5: FIFO SPI high speed
	RegOutTempL = 0x25 // Temperature output, low byte
	RegOutTempH = 0x26 // Temperature output, high byte
	RegStatus   = 0x27 // Data-ready and overrun flags
	RegOutXL    = 0x28 // X-axis output, low byte. X,Y,Z follow through 0x2D
	RegFifoCtrl = 0x2E // FIFO mode and watermark
	RegFifoSrc  = 0x2F // FIFO status
)

// DeviceIDValue is the content of RegWhoAmI on a LIS3DHH.
const DeviceIDValue = 0x11

// CTRL_REG1 bits.
const (
	ctrl1BDU       = 1 << 0
	ctrl1DrdyPulse = 1 << 1
	ctrl1SwReset   = 1 << 2
	ctrl1Boot      = 1 << 3
	ctrl1IfAddInc  = 1 << 6
	ctrl1NormMod   = 1 << 7
)

// INT1_CTRL bits.
const (
	int1Ext  = 1 << 2
	int1Fth  = 1 << 3
	int1Fss5 = 1 << 4
	int1Ovr  = 1 << 5
	int1Boot = 1 << 6
	int1Drdy = 1 << 7
)

// INT2_CTRL bits.
const (
	int2Fth  = 1 << 3
	int2Fss5 = 1 << 4
	int2Ovr  = 1 << 5
	int2Boot = 1 << 6
	int2Drdy = 1 << 7
)

// CTRL_REG4 bits. Bit 0 must read and be written as one.
const (
	ctrl4One       = 1 << 0
	ctrl4FifoEn    = 1 << 1
	ctrl4PpOdShift = 2
	ctrl4PpOdMask  = 0x3 << ctrl4PpOdShift
	ctrl4StShift   = 4
	ctrl4StMask    = 0x3 << ctrl4StShift
	ctrl4DspShift  = 6
	ctrl4DspMask   = 0x3 << ctrl4DspShift
)

// CTRL_REG5 bits.
const ctrl5FifoSpiHsOn = 1 << 0

// STATUS bits.
const (
	statusXDA   = 1 << 0
	statusYDA   = 1 << 1
	statusZDA   = 1 << 2
	statusZYXDA = 1 << 3
	statusXOR   = 1 << 4
	statusYOR   = 1 << 5
	statusZOR   = 1 << 6
	statusZYXOR = 1 << 7
)

// FIFO_CTRL bits.
const (
	fifoCtrlFthMask   = 0x1F
	fifoCtrlModeShift = 5
	fifoCtrlModeMask  = 0x7 << fifoCtrlModeShift
)

// FIFO_SRC bits.
const (
	fifoSrcFssMask = 0x3F
	fifoSrcOvrn    = 1 << 6
	fifoSrcFth     = 1 << 7
)

// DataRate selects the output data rate. The LIS3DHH has a single operating
// rate of 1.1kHz besides power-down.
type DataRate byte

const (
	PowerDown DataRate = 0
	ODR1100Hz DataRate = 1
)

// dataRate normalizes a NORM_MOD_EN bit pattern. Undefined patterns map to
// power-down.
func dataRate(bits byte) DataRate {
	switch DataRate(bits) {
	case PowerDown:
		return PowerDown
	case ODR1100Hz:
		return ODR1100Hz
	default:
		return PowerDown
	}
}

func (r DataRate) String() string {
	if r == ODR1100Hz {
		return "1.1kHz"
	}
	return "power-down"
}

// DataReadyMode selects whether the DRDY signal is latched until the output
// registers are read, or pulsed for 1/4 ODR.
type DataReadyMode byte

const (
	Latched DataReadyMode = 0
	Pulsed  DataReadyMode = 1
)

func dataReadyMode(bits byte) DataReadyMode {
	switch DataReadyMode(bits) {
	case Latched:
		return Latched
	case Pulsed:
		return Pulsed
	default:
		return Latched
	}
}

// SelfTest selects the electrostatic self-test actuation.
type SelfTest byte

const (
	SelfTestDisabled SelfTest = 0
	SelfTestPositive SelfTest = 1
	SelfTestNegative SelfTest = 2
)

func selfTest(bits byte) SelfTest {
	switch SelfTest(bits) {
	case SelfTestDisabled:
		return SelfTestDisabled
	case SelfTestPositive:
		return SelfTestPositive
	case SelfTestNegative:
		return SelfTestNegative
	default:
		return SelfTestDisabled
	}
}

// FilterConfig selects the digital filter phase/bandwidth.
type FilterConfig byte

const (
	LinearPhase440Hz   FilterConfig = 0
	LinearPhase235Hz   FilterConfig = 1
	NoLinearPhase440Hz FilterConfig = 2
	NoLinearPhase235Hz FilterConfig = 3
)

func filterConfig(bits byte) FilterConfig {
	switch FilterConfig(bits) {
	case LinearPhase440Hz:
		return LinearPhase440Hz
	case LinearPhase235Hz:
		return LinearPhase235Hz
	case NoLinearPhase440Hz:
		return NoLinearPhase440Hz
	case NoLinearPhase235Hz:
		return NoLinearPhase235Hz
	default:
		return LinearPhase440Hz
	}
}

// PinMode selects push-pull or open drain drive on the interrupt pads.
type PinMode byte

const (
	AllPushPull   PinMode = 0
	INT1OpenDrain PinMode = 1
	INT2OpenDrain PinMode = 2
	AllOpenDrain  PinMode = 3
)

func pinMode(bits byte) PinMode {
	switch PinMode(bits) {
	case AllPushPull:
		return AllPushPull
	case INT1OpenDrain:
		return INT1OpenDrain
	case INT2OpenDrain:
		return INT2OpenDrain
	case AllOpenDrain:
		return AllOpenDrain
	default:
		return AllPushPull
	}
}

// INT1Mode configures the INT1 pad either as an output for FIFO flags or as
// an external asynchronous input trigger to the FIFO.
type INT1Mode byte

const (
	PinAsInterrupt INT1Mode = 0
	PinAsTrigger   INT1Mode = 1
)

func int1Mode(bits byte) INT1Mode {
	switch INT1Mode(bits) {
	case PinAsInterrupt:
		return PinAsInterrupt
	case PinAsTrigger:
		return PinAsTrigger
	default:
		return PinAsInterrupt
	}
}

// FIFOMode selects the FIFO operating mode.
type FIFOMode byte

const (
	FIFOBypass         FIFOMode = 0
	FIFOStop           FIFOMode = 1
	FIFOStreamToFIFO   FIFOMode = 3
	FIFOBypassToStream FIFOMode = 4
	FIFODynamicStream  FIFOMode = 6
)

// fifoMode normalizes a FMODE bit pattern. The undefined patterns 2, 5 and 7
// map to bypass.
func fifoMode(bits byte) FIFOMode {
	switch FIFOMode(bits) {
	case FIFOBypass:
		return FIFOBypass
	case FIFOStop:
		return FIFOStop
	case FIFOStreamToFIFO:
		return FIFOStreamToFIFO
	case FIFOBypassToStream:
		return FIFOBypassToStream
	case FIFODynamicStream:
		return FIFODynamicStream
	default:
		return FIFOBypass
	}
}

// Status is the decoded STATUS register.
type Status struct {
	XDataAvailable bool // New X-axis data available
	YDataAvailable bool // New Y-axis data available
	ZDataAvailable bool // New Z-axis data available
	DataAvailable  bool // New data available on all three axes
	XOverrun       bool // X-axis data overwritten before being read
	YOverrun       bool // Y-axis data overwritten before being read
	ZOverrun       bool // Z-axis data overwritten before being read
	Overrun        bool // Data overwritten on all three axes
}

func decodeStatus(b byte) Status {
	return Status{
		XDataAvailable: b&statusXDA != 0,
		YDataAvailable: b&statusYDA != 0,
		ZDataAvailable: b&statusZDA != 0,
		DataAvailable:  b&statusZYXDA != 0,
		XOverrun:       b&statusXOR != 0,
		YOverrun:       b&statusYOR != 0,
		ZOverrun:       b&statusZOR != 0,
		Overrun:        b&statusZYXOR != 0,
	}
}

// FIFOSource is the decoded FIFO_SRC register.
type FIFOSource struct {
	Level     uint8 // Number of samples stored in the FIFO
	Overrun   bool  // FIFO has overwritten unread data
	Watermark bool  // FIFO level is at or above the watermark
}

func decodeFIFOSource(b byte) FIFOSource {
	return FIFOSource{
		Level:     b & fifoSrcFssMask,
		Overrun:   b&fifoSrcOvrn != 0,
		Watermark: b&fifoSrcFth != 0,
	}
}

// toMilliG converts a raw acceleration code to milli-g. The sensitivity is
// fixed at 0.076 mg/LSB on the ±2.5g range.
func toMilliG(lsb int16) float64 {
	return float64(lsb) * 0.076
}

// toCelsius converts a raw temperature code to degrees Celsius. The sensor
// reads 0 at 25°C with 16 LSB per degree.
func toCelsius(lsb int16) float64 {
	return float64(lsb)/16 + 25
}
