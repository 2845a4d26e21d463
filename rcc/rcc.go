// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rcc resolves the clock configuration of the RCC object.
package rcc

import (
	"fmt"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/ioc"
	"github.com/embeddedgo/cubemx/param"
)

type (
	SYSCLKSource string
	PLLSource    string
	HSEMode      string
)

const (
	SysclkHSI    SYSCLKSource = "RCC_SYSCLKSOURCE_HSI"
	SysclkHSI48  SYSCLKSource = "RCC_SYSCLKSOURCE_HSI48"
	SysclkPLLCLK SYSCLKSource = "RCC_SYSCLKSOURCE_PLLCLK"
	SysclkHSE    SYSCLKSource = "RCC_SYSCLKSOURCE_HSE"

	PLLHSI   PLLSource = "RCC_PLLSOURCE_HSI"
	PLLHSI48 PLLSource = "RCC_PLLSOURCE_HSI48"
	PLLHSE   PLLSource = "RCC_PLLSOURCE_HSE"

	HSEOscillator  HSEMode = "HSE-External-Oscillator"
	HSEClockSource HSEMode = "HSE-External-Clock-Source"
)

var (
	SYSCLKSourceEnum = param.DefineWithDefault(
		"SYSCLKSourceType", SysclkHSI,
		SysclkHSI, SysclkHSI48, SysclkPLLCLK, SysclkHSE,
	)
	PLLSourceEnum = param.DefineWithDefault(
		"PLLSourceType", PLLHSI,
		PLLHSI, PLLHSI48, PLLHSE,
	)
	HSEModeEnum = param.Define("HSEMode", HSEOscillator, HSEClockSource)
)

// OscPin is the object that describes the external oscillator input.
const OscPin = "PF0-OSC_IN"

type Source int

const (
	HSI Source = iota
	HSI48
	HSE
)

func (s Source) String() string {
	switch s {
	case HSI:
		return "HSI"
	case HSI48:
		return "HSI48"
	case HSE:
		return "HSE"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Clock is the effective base clock source. Bypass and Freq are meaningful
// for HSE only.
type Clock struct {
	Source Source
	Bypass bool
	Freq   uint32
}

// Config is the resolved RCC configuration.
type Config struct {
	Clock  Clock
	SYSCLK param.Option[uint32]
	HCLK   param.Option[uint32]
	APB1   param.Option[uint32]
}

// Resolve reads the RCC object and, if the clock comes from HSE, the
// oscillator pin.
func Resolve(cfg *ioc.Config) (*Config, error) {
	sec, ok := cfg.Object("RCC")
	if !ok {
		return nil, errcode.Missing("RCC")
	}
	sysclk, err := SYSCLKSourceEnum.Optional(sec, "SYSCLKSource")
	if err != nil {
		return nil, err
	}
	pll, err := PLLSourceEnum.Optional(sec, "PLLSourceVirtual")
	if err != nil {
		return nil, err
	}
	rc := new(Config)
	if rc.SYSCLK, err = param.OptionalInt[uint32](sec, "SYSCLKFreq_VALUE"); err != nil {
		return nil, err
	}
	if rc.HCLK, err = param.OptionalInt[uint32](sec, "HCLKFreq_Value"); err != nil {
		return nil, err
	}
	if rc.APB1, err = param.OptionalInt[uint32](sec, "APB1Freq_Value"); err != nil {
		return nil, err
	}

	var src Source
	switch SYSCLKSourceEnum.Or(sysclk) {
	case SysclkHSI:
		src = HSI
	case SysclkHSI48:
		src = HSI48
	case SysclkHSE:
		src = HSE
	case SysclkPLLCLK:
		switch PLLSourceEnum.Or(pll) {
		case PLLHSI:
			src = HSI
		case PLLHSI48:
			src = HSI48
		case PLLHSE:
			src = HSE
		}
	}
	rc.Clock.Source = src
	if src == HSE {
		if rc.Clock, err = hse(cfg, sec); err != nil {
			return nil, fmt.Errorf("%s: %w", OscPin, err)
		}
	}
	return rc, nil
}

func hse(cfg *ioc.Config, rcc ioc.Section) (Clock, error) {
	pin, ok := cfg.Object(OscPin)
	if !ok {
		return Clock{}, errcode.Missing(OscPin)
	}
	mode, err := HSEModeEnum.Mandatory(pin, "Mode")
	if err != nil {
		return Clock{}, err
	}
	freq, err := param.MandatoryInt[uint32](rcc, "VCOOutput2Freq_Value")
	if err != nil {
		return Clock{}, err
	}
	return Clock{Source: HSE, Bypass: mode == HSEClockSource, Freq: freq}, nil
}
