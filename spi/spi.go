// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spi resolves the SPI1 to SPI6 objects of a configuration.
package spi

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/ioc"
	"github.com/embeddedgo/cubemx/param"
)

const MaxSPIs = 6

type (
	Prescaler   string
	CLKPhase    string
	CLKPolarity string
)

var (
	PrescalerEnum = param.Define[Prescaler](
		"BaudRatePrescaler",
		"SPI_BAUDRATEPRESCALER_2",
		"SPI_BAUDRATEPRESCALER_4",
		"SPI_BAUDRATEPRESCALER_8",
		"SPI_BAUDRATEPRESCALER_16",
		"SPI_BAUDRATEPRESCALER_32",
		"SPI_BAUDRATEPRESCALER_64",
		"SPI_BAUDRATEPRESCALER_128",
		"SPI_BAUDRATEPRESCALER_256",
	)
	CLKPhaseEnum = param.DefineWithDefault[CLKPhase](
		"CLKPhase", "SPI_PHASE_1EDGE",
		"SPI_PHASE_1EDGE", "SPI_PHASE_2EDGE",
	)
	CLKPolarityEnum = param.DefineWithDefault[CLKPolarity](
		"CLKPolarity", "SPI_POLARITY_LOW",
		"SPI_POLARITY_LOW", "SPI_POLARITY_HIGH",
	)
)

// Divisor returns the numeric value of the prescaler (2 to 256).
func (p Prescaler) Divisor() int {
	n, _ := strconv.Atoi(strings.TrimPrefix(string(p), "SPI_BAUDRATEPRESCALER_"))
	return n
}

// BaudRate is a bit rate in bits per second.
type BaudRate uint32

var units = map[string]int64{
	"Bits/s":  1,
	"kBits/s": 1e3,
	"MBits/s": 1e6,
}

// ParseBaudRate parses strings such as "3.0 MBits/s" or "115.2 kBits/s".
// Fractions of a bit per second are truncated.
func ParseBaudRate(s string) (BaudRate, error) {
	num, unit, ok := strings.Cut(s, " ")
	if !ok || strings.Contains(unit, " ") {
		return 0, &errcode.E{C: errcode.InvalidEnumValue, Value: s, Msg: "malformed baud rate"}
	}
	scale, ok := units[unit]
	if !ok {
		return 0, &errcode.E{C: errcode.InvalidEnumValue, Value: s, Msg: "unknown unit " + unit}
	}
	if strings.Trim(num, "+-.0123456789") != "" {
		return 0, &errcode.E{C: errcode.InvalidEnumValue, Value: s, Msg: "invalid number"}
	}
	r, ok := new(big.Rat).SetString(num)
	if !ok {
		return 0, &errcode.E{C: errcode.InvalidEnumValue, Value: s, Msg: "invalid number"}
	}
	if r.Sign() < 0 {
		return 0, &errcode.E{C: errcode.InvalidEnumValue, Value: s, Msg: "negative baud rate"}
	}
	r.Mul(r, new(big.Rat).SetInt64(scale))
	hz := new(big.Int).Quo(r.Num(), r.Denom())
	if !hz.IsUint64() || hz.Uint64() > 1<<32-1 {
		return 0, &errcode.E{C: errcode.InvalidEnumValue, Value: s, Msg: "baud rate out of range"}
	}
	return BaudRate(hz.Uint64()), nil
}

func (b BaudRate) String() string { return strconv.FormatUint(uint64(b), 10) + " bit/s" }

type Controller struct {
	Name      string
	Prescaler Prescaler
	BaudRate  BaudRate
	Phase     param.Option[CLKPhase]
	Polarity  param.Option[CLKPolarity]
}

func (c *Controller) Lower() string { return strings.ToLower(c.Name) }

// Resolve returns the controllers of the SPI objects present in cfg, in
// ascending order of their numbers.
func Resolve(cfg *ioc.Config) ([]*Controller, error) {
	var spis []*Controller
	for i := 1; i <= MaxSPIs; i++ {
		name := fmt.Sprintf("SPI%d", i)
		sec, ok := cfg.Object(name)
		if !ok {
			continue
		}
		c, err := newController(name, sec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		spis = append(spis, c)
	}
	return spis, nil
}

func newController(name string, sec ioc.Section) (c *Controller, err error) {
	c = &Controller{Name: name}
	if c.Prescaler, err = PrescalerEnum.Mandatory(sec, "BaudRatePrescaler"); err != nil {
		return nil, err
	}
	if c.BaudRate, err = param.Mandatory(sec, "CalculateBaudRate", ParseBaudRate); err != nil {
		return nil, err
	}
	if c.Phase, err = CLKPhaseEnum.Optional(sec, "CLKPhase"); err != nil {
		return nil, err
	}
	if c.Polarity, err = CLKPolarityEnum.Optional(sec, "CLKPolarity"); err != nil {
		return nil, err
	}
	return c, nil
}
