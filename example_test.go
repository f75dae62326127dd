// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dhh_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/lis3dhh"
)

func ExampleNewI2C() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	d, err := lis3dhh.NewI2C(bus, lis3dhh.DefaultAddress, &lis3dhh.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	a, err := d.AccelerationRaw()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(a)

	env := physic.Env{}
	if err = d.Sense(&env); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%8s\n", env.Temperature)
}

func ExampleNewSPI() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Use spireg SPI port registry to find the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	d, err := lis3dhh.NewSPI(p, &lis3dhh.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	// Read a sample every millisecond for one second.
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	stop := time.After(time.Second)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a, err := d.AccelerationRaw()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(a)
		}
	}
}
