// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model builds the typed hardware model of a configuration.
package model

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/embeddedgo/cubemx/db"
	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/gpio"
	"github.com/embeddedgo/cubemx/i2c"
	"github.com/embeddedgo/cubemx/ioc"
	"github.com/embeddedgo/cubemx/param"
	"github.com/embeddedgo/cubemx/rcc"
	"github.com/embeddedgo/cubemx/spi"
	"github.com/embeddedgo/cubemx/usart"
)

// SupportedVersion is the only accepted File.Version.
const SupportedVersion = "6"

// Model is the resolved hardware configuration. It is not modified after
// Resolve returns.
type Model struct {
	Version string
	Family  db.Family
	Chip    string
	RCC     *rcc.Config
	Ports   []gpio.Port
	Pins    []*gpio.Pin
	SPIs    []*spi.Controller
	I2Cs    []*i2c.Controller
	USARTs  []*usart.Controller
}

// Resolve checks the format version and the chip family and runs the
// peripheral resolvers. The first error aborts the resolution.
func Resolve(cfg *ioc.Config) (*Model, error) {
	version, ok := cfg.Value("File", "Version")
	if !ok {
		return nil, fmt.Errorf("File: %w", errcode.Missing("Version"))
	}
	if version != SupportedVersion {
		return nil, &errcode.E{
			C:     errcode.FormatVersionMismatch,
			Key:   "File.Version",
			Value: version,
			Msg:   "only version " + SupportedVersion + " is supported",
		}
	}
	mcu, _ := cfg.Object("Mcu")
	family, err := db.FamilyEnum.Mandatory(mcu, "Family")
	if err != nil {
		return nil, fmt.Errorf("Mcu: %w", err)
	}
	chip, err := param.Mandatory(mcu, "UserName", param.String)
	if err != nil {
		return nil, fmt.Errorf("Mcu: %w", err)
	}
	if !db.Supported(family) {
		return nil, &errcode.E{
			C:     errcode.UnsupportedFamily,
			Value: string(family),
			Msg:   "no lookup data",
		}
	}

	m := &Model{Version: version, Family: family, Chip: chip}
	if m.RCC, err = rcc.Resolve(cfg); err != nil {
		return nil, fmt.Errorf("RCC: %w", err)
	}
	if m.Ports, m.Pins, err = gpio.Resolve(cfg); err != nil {
		return nil, fmt.Errorf("GPIO: %w", err)
	}
	if m.SPIs, err = spi.Resolve(cfg); err != nil {
		return nil, fmt.Errorf("SPI: %w", err)
	}
	if m.I2Cs, err = i2c.Resolve(cfg, m.Pins); err != nil {
		return nil, fmt.Errorf("I2C: %w", err)
	}
	if m.USARTs, err = usart.Resolve(cfg); err != nil {
		return nil, fmt.Errorf("USART: %w", err)
	}
	return m, nil
}

// Load parses text and resolves it.
func Load(text string) (*Model, error) {
	return Resolve(ioc.Parse(text))
}

// ResolveAll loads the texts concurrently. The models are returned in the
// order of texts. The first failure cancels the loads that have not started
// yet.
func ResolveAll(ctx context.Context, texts []string) ([]*Model, error) {
	models := make([]*Model, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := Load(text)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			models[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models, nil
}

// Memory returns the memory sizes of the chip.
func (m *Model) Memory() (db.MemSize, error) {
	return db.MemorySize(m.Family, m.Chip)
}

// Feature returns the HAL feature name of the chip.
func (m *Model) Feature() (string, error) {
	return db.Feature(m.Family, m.Chip)
}
