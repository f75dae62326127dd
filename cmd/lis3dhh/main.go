// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lis3dhh reads acceleration and temperature from a LIS3DHH sensor and
// prints the samples until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/lis3dhh"
)

func mainImpl() error {
	i2cName := flag.String("i2c", "", "I²C bus to use (default: first available)")
	spiName := flag.String("spi", "", "SPI port to use instead of I²C")
	addr := flag.Uint("addr", uint(lis3dhh.DefaultAddress), "I²C address of the device")
	interval := flag.Duration("interval", 100*time.Millisecond, "sampling interval")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		return err
	}

	var d *lis3dhh.Dev
	if *spiName != "" {
		p, err := spireg.Open(*spiName)
		if err != nil {
			return err
		}
		defer p.Close()
		if d, err = lis3dhh.NewSPI(p, &lis3dhh.DefaultOpts); err != nil {
			return err
		}
	} else {
		bus, err := i2creg.Open(*i2cName)
		if err != nil {
			return err
		}
		defer bus.Close()
		if d, err = lis3dhh.NewI2C(bus, uint16(*addr), &lis3dhh.DefaultOpts); err != nil {
			return err
		}
	}
	defer d.Halt()
	log.Printf("connected to %s", d)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			a, err := d.AccelerationRaw()
			if err != nil {
				return err
			}
			env := physic.Env{}
			if err = d.Sense(&env); err != nil {
				return err
			}
			fmt.Printf("%s  %8s\n", a, env.Temperature)
		}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "lis3dhh: %v\n", err)
		os.Exit(1)
	}
}
