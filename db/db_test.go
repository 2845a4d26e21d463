// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/embeddedgo/cubemx/errcode"
)

func TestAlternateFunction(t *testing.T) {
	for _, tc := range []struct {
		function, pin string
		want          AF
	}{
		{"I2C1_SCL", "pa9", 4},
		{"I2C1_SCL", "pa11", 5},
		{"I2C1_SDA", "pf0", 1},
		{"SPI1_SCK", "pa5", 0},
		{"SPI2_SCK", "pb10", 5},
		{"USART1_TX", "pa9", 1},
		{"USART8_RX", "pd14", 0},
	} {
		af, err := AlternateFunction(STM32F0, tc.function, tc.pin)
		if err != nil {
			t.Errorf("%s on %s: %v", tc.function, tc.pin, err)
			continue
		}
		if af != tc.want {
			t.Errorf("%s on %s = AF%d, want AF%d", tc.function, tc.pin, af, tc.want)
		}
	}
}

func TestAlternateFunctionMiss(t *testing.T) {
	_, err := AlternateFunction(STM32F0, "I2C1_SCL", "pa1")
	if !errors.Is(err, errcode.UnknownLookupEntry) {
		t.Fatalf("pin miss err = %v, want UnknownLookupEntry", err)
	}
	if !strings.Contains(err.Error(), "pin does not support") {
		t.Fatalf("pin miss message = %q", err)
	}

	_, err = AlternateFunction(STM32F0, "SYS_SWDIO", "pa13")
	if !errors.Is(err, errcode.UnknownLookupEntry) {
		t.Fatalf("function miss err = %v, want UnknownLookupEntry", err)
	}
	if !strings.Contains(err.Error(), "no alternate-function data") {
		t.Fatalf("function miss message = %q", err)
	}

	_, err = AlternateFunction(STM32F4, "I2C1_SCL", "pb6")
	if !errors.Is(err, errcode.UnsupportedFamily) {
		t.Fatalf("other family err = %v, want UnsupportedFamily", err)
	}
}

func TestFeature(t *testing.T) {
	for chip, want := range map[string]string{
		"STM32F030x4":   "stm32f030x4",
		"stm32f030X4":   "stm32f030x4",
		"STM32F030F4Px": "stm32f030x4",
		"STM32F030CCTx": "stm32f030xc",
		"STM32F042K6Tx": "stm32f042",
		"STM32F070CBTx": "stm32f070xb",
		"STM32F070F6Px": "stm32f070x6",
		"STM32F091RCTx": "stm32f091",
	} {
		got, err := Feature(STM32F0, chip)
		if err != nil {
			t.Errorf("Feature(%s): %v", chip, err)
			continue
		}
		if got != want {
			t.Errorf("Feature(%s) = %q, want %q", chip, got, want)
		}
	}
}

func TestFeatureOrderIsLoadBearing(t *testing.T) {
	// The bare line name would also match, but comes later in the table.
	i := slices.Index(featuresF0, "stm32f030")
	j := slices.Index(featuresF0, "stm32f030x4")
	if i < 0 || j < 0 || j > i {
		t.Fatalf("stm32f030x4 at %d must precede stm32f030 at %d", j, i)
	}
}

func TestFeatureMiss(t *testing.T) {
	if _, err := Feature(STM32F0, "STM32F100C8Tx"); !errors.Is(err, errcode.UnknownLookupEntry) {
		t.Fatalf("err = %v, want UnknownLookupEntry", err)
	}
	if _, err := Feature(STM32L4, "STM32L432KCUx"); !errors.Is(err, errcode.UnsupportedFamily) {
		t.Fatalf("err = %v, want UnsupportedFamily", err)
	}
}

func TestMemorySize(t *testing.T) {
	m, err := MemorySize(STM32F0, "STM32F042K6Tx")
	if err != nil {
		t.Fatal(err)
	}
	if m != (MemSize{FlashKB: 32, RAMKB: 6}) {
		t.Fatalf("STM32F042K6Tx = %+v", m)
	}
	// exact match only
	if _, err := MemorySize(STM32F0, "stm32f042k6tx"); !errors.Is(err, errcode.UnknownLookupEntry) {
		t.Fatalf("lower-case name err = %v, want UnknownLookupEntry", err)
	}
	if _, err := MemorySize(STM32G0, "STM32G071RBTx"); !errors.Is(err, errcode.UnsupportedFamily) {
		t.Fatalf("err = %v, want UnsupportedFamily", err)
	}
}

func TestEveryChipHasFeature(t *testing.T) {
	chips, err := Chips(STM32F0)
	if err != nil {
		t.Fatal(err)
	}
	if len(chips) == 0 || chips[0] != "STM32F030C6Tx" {
		t.Fatalf("Chips() starts with %v", chips[:1])
	}
	for _, chip := range chips {
		if _, err := Feature(STM32F0, chip); err != nil {
			t.Errorf("Feature(%s): %v", chip, err)
		}
	}
}

func TestCapabilityTable(t *testing.T) {
	if got := Families(); !slices.Equal(got, []Family{STM32F0}) {
		t.Fatalf("Families() = %v", got)
	}
	if Supported(STM32F4) {
		t.Fatal("STM32F4 reported as supported")
	}
	fns, err := Functions(STM32F0)
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) != 26 || fns[0] != "I2C1_SCL" {
		t.Fatalf("Functions() = %v", fns)
	}
	if _, err := FamilyEnum.Parse("STM32F0"); err != nil {
		t.Fatal(err)
	}
}
