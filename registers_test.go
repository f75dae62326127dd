// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dhh

import (
	"math"
	"testing"
)

func TestToMilliG(t *testing.T) {
	tests := []struct {
		lsb  int16
		want float64
	}{
		{0, 0},
		{1, 0.076},
		{256, 19.456},
		{512, 38.912},
		{768, 58.368},
		{-256, -19.456},
	}
	for _, tt := range tests {
		if got := toMilliG(tt.lsb); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("toMilliG(%d) = %.6f, want %.6f", tt.lsb, got, tt.want)
		}
	}
}

func TestToCelsius(t *testing.T) {
	tests := []struct {
		lsb  int16
		want float64
	}{
		{0, 25},
		{16, 26},
		{25, 26.5625},
		{-16, 24},
		{-400, 0},
	}
	for _, tt := range tests {
		if got := toCelsius(tt.lsb); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("toCelsius(%d) = %.6f, want %.6f", tt.lsb, got, tt.want)
		}
	}
}

func TestDecodeStatus(t *testing.T) {
	s := decodeStatus(0x00)
	if s != (Status{}) {
		t.Errorf("decodeStatus(0x00) = %+v, want zero value", s)
	}
	s = decodeStatus(0xFF)
	want := Status{
		XDataAvailable: true, YDataAvailable: true, ZDataAvailable: true,
		DataAvailable: true, XOverrun: true, YOverrun: true, ZOverrun: true,
		Overrun: true,
	}
	if s != want {
		t.Errorf("decodeStatus(0xFF) = %+v", s)
	}
	s = decodeStatus(statusZYXDA | statusZOR)
	if !s.DataAvailable || !s.ZOverrun || s.Overrun || s.XDataAvailable {
		t.Errorf("decodeStatus() = %+v", s)
	}
}

func TestDecodeFIFOSource(t *testing.T) {
	src := decodeFIFOSource(0xC5)
	if !src.Watermark || !src.Overrun || src.Level != 5 {
		t.Errorf("decodeFIFOSource(0xC5) = %+v", src)
	}
	src = decodeFIFOSource(0x3F)
	if src.Watermark || src.Overrun || src.Level != 63 {
		t.Errorf("decodeFIFOSource(0x3F) = %+v", src)
	}
}

func TestEnumDefaults(t *testing.T) {
	// Every bit pattern outside the documented enumerator set maps to the
	// field's power-down-like default.
	if got := dataRate(0xFF); got != PowerDown {
		t.Errorf("dataRate(0xFF) = %v", got)
	}
	if got := dataReadyMode(0xFF); got != Latched {
		t.Errorf("dataReadyMode(0xFF) = %d", got)
	}
	if got := selfTest(3); got != SelfTestDisabled {
		t.Errorf("selfTest(3) = %d", got)
	}
	if got := int1Mode(0xFF); got != PinAsInterrupt {
		t.Errorf("int1Mode(0xFF) = %d", got)
	}
	for _, bits := range []byte{2, 5, 7} {
		if got := fifoMode(bits); got != FIFOBypass {
			t.Errorf("fifoMode(%d) = %d, want bypass", bits, got)
		}
	}
	// filterConfig and pinMode cover their whole 2-bit range; nothing to
	// normalize there.
	for bits := byte(0); bits < 4; bits++ {
		if got := filterConfig(bits); got != FilterConfig(bits) {
			t.Errorf("filterConfig(%d) = %d", bits, got)
		}
		if got := pinMode(bits); got != PinMode(bits) {
			t.Errorf("pinMode(%d) = %d", bits, got)
		}
	}
}
