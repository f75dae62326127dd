// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis3dhh controls an ST LIS3DHH 3-axis accelerometer with embedded
// temperature sensor over I²C or SPI.
//
// Range: ±2.5g, 0.076 mg/LSB
//
// Output data rate: 1.1kHz
//
// Temperature: 12-bit, 16 LSB/°C, 25°C at zero code
//
// The driver is a thin register access layer: each method performs exactly
// one register transaction against the bus supplied by the caller and
// propagates the bus error unchanged. It holds no device state and performs
// no retries.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lis3dhh.pdf
package lis3dhh
