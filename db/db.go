// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db provides read-only hardware tables for the supported MCU
// families: alternate-function routing, memory sizes and HAL feature names.
//
// Which families have data is recorded in a single capability table. Lookups
// for a family without data fail with errcode.UnsupportedFamily; misses inside
// a supported family fail with errcode.UnknownLookupEntry.
package db

import (
	"regexp"
	"strings"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/internal/natsort"
	"github.com/embeddedgo/cubemx/param"
)

// Family is the MCU family as written in Mcu.Family.
type Family string

const (
	STM32F0  Family = "STM32F0"
	STM32F1  Family = "STM32F1"
	STM32F2  Family = "STM32F2"
	STM32F3  Family = "STM32F3"
	STM32F4  Family = "STM32F4"
	STM32F7  Family = "STM32F7"
	STM32G0  Family = "STM32G0"
	STM32G4  Family = "STM32G4"
	STM32H7  Family = "STM32H7"
	STM32L0  Family = "STM32L0"
	STM32L1  Family = "STM32L1"
	STM32L4  Family = "STM32L4"
	STM32L5  Family = "STM32L5"
	STM32MP1 Family = "STM32MP1"
	STM32WB  Family = "STM32WB"
	STM32WL  Family = "STM32WL"
)

var FamilyEnum = param.Define[Family](
	"MCUFamily",
	STM32F0, STM32F1, STM32F2, STM32F3, STM32F4, STM32F7, STM32G0, STM32G4,
	STM32H7, STM32L0, STM32L1, STM32L4, STM32L5, STM32MP1, STM32WB, STM32WL,
)

// AF is an alternate-function index (0-7).
type AF uint8

// MemSize describes the on-chip memories in kilobytes.
type MemSize struct {
	FlashKB uint32
	RAMKB   uint32
}

type featurePattern struct {
	re      *regexp.Regexp
	feature string
}

type tables struct {
	af       map[string]map[string]AF
	mem      map[string]MemSize
	features []featurePattern
}

// families is the capability table.
var families = map[Family]*tables{
	STM32F0: {af: afF0, mem: memF0, features: compileFeatures(featuresF0)},
}

// compileFeatures turns authored feature names into start-anchored patterns
// in which every 'x' matches one word character. The order is kept.
func compileFeatures(names []string) []featurePattern {
	fps := make([]featurePattern, len(names))
	for i, name := range names {
		expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(name), "x", `\w`)
		fps[i] = featurePattern{regexp.MustCompile(expr), name}
	}
	return fps
}

// Supported reports whether the family has lookup data.
func Supported(f Family) bool {
	return families[f] != nil
}

// Families returns the families with lookup data.
func Families() []Family {
	var fs []Family
	for _, f := range FamilyEnum.Variants() {
		if Supported(f) {
			fs = append(fs, f)
		}
	}
	return fs
}

func lookup(f Family) (*tables, error) {
	t := families[f]
	if t == nil {
		return nil, &errcode.E{
			C:     errcode.UnsupportedFamily,
			Value: string(f),
			Msg:   "no lookup data",
		}
	}
	return t, nil
}

// AlternateFunction returns the AF index that routes the peripheral function
// (e.g. "I2C1_SCL") to the pin register (e.g. "pa9").
func AlternateFunction(f Family, function, pin string) (AF, error) {
	t, err := lookup(f)
	if err != nil {
		return 0, err
	}
	pins, ok := t.af[function]
	if !ok {
		return 0, &errcode.E{
			C:     errcode.UnknownLookupEntry,
			Value: function,
			Msg:   "no alternate-function data for " + string(f),
		}
	}
	af, ok := pins[pin]
	if !ok {
		return 0, &errcode.E{
			C:     errcode.UnknownLookupEntry,
			Key:   function,
			Value: pin,
			Msg:   "pin does not support the function",
		}
	}
	return af, nil
}

// MemorySize returns the memory sizes of the chip. The name must match
// exactly, e.g. "STM32F042K6Tx".
func MemorySize(f Family, chip string) (MemSize, error) {
	t, err := lookup(f)
	if err != nil {
		return MemSize{}, err
	}
	m, ok := t.mem[chip]
	if !ok {
		return MemSize{}, &errcode.E{
			C:     errcode.UnknownLookupEntry,
			Value: chip,
			Msg:   "unknown chip",
		}
	}
	return m, nil
}

// Feature returns the HAL feature name of the chip. The first pattern that
// matches the beginning of the lower-cased name wins.
func Feature(f Family, chip string) (string, error) {
	t, err := lookup(f)
	if err != nil {
		return "", err
	}
	name := strings.ToLower(chip)
	for _, fp := range t.features {
		if fp.re.MatchString(name) {
			return fp.feature, nil
		}
	}
	return "", &errcode.E{
		C:     errcode.UnknownLookupEntry,
		Value: chip,
		Msg:   "no feature matches",
	}
}

// Chips returns the names of all chips of the family in natural order.
func Chips(f Family) ([]string, error) {
	t, err := lookup(f)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(t.mem))
	for name := range t.mem {
		names = append(names, name)
	}
	natsort.Strings(names)
	return names, nil
}

// Functions returns the peripheral functions with alternate-function data in
// natural order.
func Functions(f Family) ([]string, error) {
	t, err := lookup(f)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(t.af))
	for name := range t.af {
		names = append(names, name)
	}
	natsort.Strings(names)
	return names, nil
}
