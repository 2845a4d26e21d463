// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i2c resolves the I2C controllers of a configuration.
//
// A controller left at its default settings has no object of its own, so
// controllers are discovered from the SDA signals of the resolved pins
// instead of being probed by name.
package i2c

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/embeddedgo/cubemx/gpio"
	"github.com/embeddedgo/cubemx/ioc"
	"github.com/embeddedgo/cubemx/param"
)

type Mode string

var ModeEnum = param.DefineWithDefault[Mode](
	"I2CSpeedMode", "I2C_Standard",
	"I2C_Standard", "I2C_Fast", "I2C_Fast_Plus",
)

type Controller struct {
	Name string
	Mode param.Option[Mode]
}

func (c *Controller) Lower() string { return strings.ToLower(c.Name) }

var sda = regexp.MustCompile(`^(I2C\d)_SDA`)

// Resolve returns one controller per distinct I2Cn_SDA signal in pins, in pin
// order.
func Resolve(cfg *ioc.Config, pins []*gpio.Pin) ([]*Controller, error) {
	var (
		i2cs []*Controller
		seen = make(map[string]bool)
	)
	for _, pin := range pins {
		if pin.Signal.Kind != gpio.Peripheral {
			continue
		}
		m := sda.FindStringSubmatch(pin.Signal.Function)
		if m == nil || seen[m[1]] {
			continue
		}
		name := m[1]
		seen[name] = true
		c := &Controller{Name: name}
		if sec, ok := cfg.Object(name); ok {
			var err error
			if c.Mode, err = ModeEnum.Optional(sec, "I2C_Speed_Mode"); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
		i2cs = append(i2cs, c)
	}
	return i2cs, nil
}
