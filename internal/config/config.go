// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config holds the YAML configuration of the sample producer.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Producer ProducerConfig `yaml:"producer"`
}

type ProducerConfig struct {
	MQTT   MQTTConfig   `yaml:"mqtt"`
	Sensor SensorConfig `yaml:"sensor"`
}

// ---- MQTT ----

type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
}

// ---- SENSOR ----

type SensorConfig struct {
	// Bus is "i2c" or "spi".
	Bus string `yaml:"bus"`
	// Name of the bus or port, empty for the first available one.
	Name string `yaml:"name"`
	// I²C address, ignored for SPI.
	Address uint16 `yaml:"address"`

	IntervalMs int `yaml:"interval_ms"`
}

// Interval returns the sampling interval.
func (s SensorConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	p := &c.Producer
	if p.MQTT.Broker == "" {
		return fmt.Errorf("config: mqtt broker is required")
	}
	if p.MQTT.Topic == "" {
		return fmt.Errorf("config: mqtt topic is required")
	}
	if p.MQTT.ClientID == "" {
		p.MQTT.ClientID = "lis3dhh-producer"
	}
	switch p.Sensor.Bus {
	case "", "i2c":
		p.Sensor.Bus = "i2c"
		if p.Sensor.Address == 0 {
			p.Sensor.Address = 0x1D
		}
	case "spi":
	default:
		return fmt.Errorf("config: unknown bus %q", p.Sensor.Bus)
	}
	if p.Sensor.IntervalMs <= 0 {
		p.Sensor.IntervalMs = 100
	}
	return nil
}
