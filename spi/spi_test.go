// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spi

import (
	"errors"
	"testing"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/ioc"
)

func TestParseBaudRate(t *testing.T) {
	for s, want := range map[string]BaudRate{
		"3.0 MBits/s":   3000000,
		"115.2 kBits/s": 115200,
		"4.35 kBits/s":  4350,
		"1.5 Bits/s":    1,
		"750 kBits/s":   750000,
		"0 Bits/s":      0,
		"24.0 MBits/s":  24000000,
	} {
		got, err := ParseBaudRate(s)
		if err != nil {
			t.Errorf("ParseBaudRate(%q): %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseBaudRate(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestParseBaudRateErrors(t *testing.T) {
	for _, s := range []string{
		"3.0 GBits/s",
		"3.0 mbits/s",
		"3.0MBits/s",
		"3.0  MBits/s",
		"3.0 MBits/s extra",
		"fast MBits/s",
		"1e3 Bits/s",
		"3/2 Bits/s",
		"-1 kBits/s",
		"5000 MBits/s",
		"",
	} {
		_, err := ParseBaudRate(s)
		if !errors.Is(err, errcode.InvalidEnumValue) {
			t.Errorf("ParseBaudRate(%q) err = %v, want InvalidEnumValue", s, err)
		}
	}
}

func TestResolve(t *testing.T) {
	cfg := ioc.Parse(`
SPI2.BaudRatePrescaler=SPI_BAUDRATEPRESCALER_16
SPI2.CalculateBaudRate=3.0 MBits/s
SPI1.BaudRatePrescaler=SPI_BAUDRATEPRESCALER_2
SPI1.CalculateBaudRate=24.0 MBits/s
SPI1.CLKPhase=SPI_PHASE_2EDGE
SPI7.BaudRatePrescaler=SPI_BAUDRATEPRESCALER_2
`)
	spis, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(spis) != 2 || spis[0].Name != "SPI1" || spis[1].Lower() != "spi2" {
		t.Fatalf("controllers = %+v", spis)
	}
	s1, s2 := spis[0], spis[1]
	if s1.BaudRate != 24000000 || s1.Prescaler.Divisor() != 2 {
		t.Errorf("SPI1 = %+v", s1)
	}
	if CLKPhaseEnum.Or(s1.Phase) != "SPI_PHASE_2EDGE" || CLKPolarityEnum.Or(s1.Polarity) != "SPI_POLARITY_LOW" {
		t.Errorf("SPI1 phase/polarity = %v %v", s1.Phase, s1.Polarity)
	}
	if s2.Phase.IsSet() || CLKPhaseEnum.Or(s2.Phase) != "SPI_PHASE_1EDGE" {
		t.Errorf("SPI2 phase = %v", s2.Phase)
	}
	if s2.Prescaler.Divisor() != 16 {
		t.Errorf("SPI2 divisor = %d", s2.Prescaler.Divisor())
	}
}

func TestResolveErrors(t *testing.T) {
	for _, tc := range []struct {
		text string
		code errcode.Code
		msg  string
	}{
		{
			"SPI1.BaudRatePrescaler=SPI_BAUDRATEPRESCALER_3\nSPI1.CalculateBaudRate=1 Bits/s",
			errcode.InvalidEnumValue,
			`SPI1: invalid_enum_value: BaudRatePrescaler="SPI_BAUDRATEPRESCALER_3" (invalid BaudRatePrescaler)`,
		},
		{
			"SPI1.BaudRatePrescaler=SPI_BAUDRATEPRESCALER_2",
			errcode.MissingKey,
			"SPI1: missing_key: CalculateBaudRate",
		},
		{
			"SPI3.BaudRatePrescaler=SPI_BAUDRATEPRESCALER_2\nSPI3.CalculateBaudRate=3 Hz",
			errcode.InvalidEnumValue,
			`SPI3: invalid_enum_value: CalculateBaudRate="3 Hz" (unknown unit Hz)`,
		},
	} {
		spis, err := Resolve(ioc.Parse(tc.text))
		if spis != nil || !errors.Is(err, tc.code) {
			t.Errorf("%q: %v, %v", tc.text, spis, err)
			continue
		}
		if err.Error() != tc.msg {
			t.Errorf("err = %q, want %q", err, tc.msg)
		}
	}
}
