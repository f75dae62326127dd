// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// producer samples a LIS3DHH sensor and publishes the readings as JSON over
// MQTT.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/lis3dhh"
	"github.com/GermanBionicSystems/lis3dhh/internal/config"
)

// Sample is one published reading.
type Sample struct {
	X       float64 `json:"x_mg"`
	Y       float64 `json:"y_mg"`
	Z       float64 `json:"z_mg"`
	Temp    float64 `json:"temp_c"`
	Unix    int64   `json:"ts"`
	Overrun bool    `json:"overrun,omitempty"`
}

func run(cfg *config.Config) error {
	if _, err := host.Init(); err != nil {
		return err
	}

	var d *lis3dhh.Dev
	sensor := cfg.Producer.Sensor
	if sensor.Bus == "spi" {
		p, err := spireg.Open(sensor.Name)
		if err != nil {
			return err
		}
		defer p.Close()
		if d, err = lis3dhh.NewSPI(p, &lis3dhh.DefaultOpts); err != nil {
			return err
		}
	} else {
		bus, err := i2creg.Open(sensor.Name)
		if err != nil {
			return err
		}
		defer bus.Close()
		if d, err = lis3dhh.NewI2C(bus, sensor.Address, &lis3dhh.DefaultOpts); err != nil {
			return err
		}
	}
	defer d.Halt()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Producer.MQTT.Broker).
		SetClientID(cfg.Producer.MQTT.ClientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("connected to %s, publishing to %s", cfg.Producer.MQTT.Broker, cfg.Producer.MQTT.Topic)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	ticker := time.NewTicker(sensor.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case t := <-ticker.C:
			a, err := d.AccelerationRaw()
			if err != nil {
				log.Printf("error reading acceleration: %v", err)
				continue
			}
			temp, err := d.Temperature()
			if err != nil {
				log.Printf("error reading temperature: %v", err)
				continue
			}
			status, err := d.Status()
			if err != nil {
				log.Printf("error reading status: %v", err)
				continue
			}
			s := Sample{Unix: t.Unix(), Overrun: status.Overrun}
			s.X, s.Y, s.Z = a.MilliG()
			s.Temp = temp.Celsius()
			payload, err := json.Marshal(s)
			if err != nil {
				log.Printf("error marshalling sample: %v", err)
				continue
			}
			if token := client.Publish(cfg.Producer.MQTT.Topic, 0, false, payload); token.Wait() && token.Error() != nil {
				log.Printf("error publishing sample: %v", token.Error())
			}
		}
	}
}

func main() {
	path := flag.String("config", "producer.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
