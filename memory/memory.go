// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory describes the flash and RAM regions of a chip and checks
// firmware images against them.
package memory

import (
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"

	"github.com/embeddedgo/cubemx/db"
	"github.com/embeddedgo/cubemx/errcode"
)

const (
	FlashOrigin = 0x08000000
	FlashAlias  = 0x00000000 // flash is mapped here when booting from it
	RAMOrigin   = 0x20000000
)

type Region struct {
	Name   string
	Origin uint32
	Length uint32
}

// End returns the first address past the region.
func (r Region) End() uint64 { return uint64(r.Origin) + uint64(r.Length) }

func (r Region) contains(addr uint32, n int) bool {
	return addr >= r.Origin && uint64(addr)+uint64(n) <= r.End()
}

func (r Region) String() string {
	return fmt.Sprintf("%-5s %#010x-%#010x %6d KB", r.Name, r.Origin, r.End(), r.Length/1024)
}

type Layout struct {
	Flash Region
	RAM   Region
}

func NewLayout(m db.MemSize) *Layout {
	return &Layout{
		Flash: Region{"FLASH", FlashOrigin, m.FlashKB * 1024},
		RAM:   Region{"RAM", RAMOrigin, m.RAMKB * 1024},
	}
}

// LayoutFor looks up the memory sizes of chip and returns its layout.
func LayoutFor(f db.Family, chip string) (*Layout, error) {
	m, err := db.MemorySize(f, chip)
	if err != nil {
		return nil, err
	}
	return NewLayout(m), nil
}

// CheckImage reads an Intel HEX image and verifies that all of its data lies
// in flash, at the flash origin or at its boot alias. Data given at both
// addresses of the same flash byte is an invalid image. It returns the
// number of flash bytes the image occupies.
func (l *Layout) CheckImage(r io.Reader) (used uint32, err error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return 0, &errcode.E{C: errcode.InvalidImage, Err: err}
	}
	alias := Region{"alias", FlashAlias, l.Flash.Length}
	flash := gohex.NewMemory()
	for _, seg := range mem.GetDataSegments() {
		addr := seg.Address
		if alias.contains(addr, len(seg.Data)) {
			addr += FlashOrigin - FlashAlias
		}
		if !l.Flash.contains(addr, len(seg.Data)) {
			return 0, &errcode.E{
				C:     errcode.ImageOverflow,
				Value: fmt.Sprintf("%#010x", seg.Address),
				Msg:   fmt.Sprintf("%d bytes do not fit in %d KB of flash", len(seg.Data), l.Flash.Length/1024),
			}
		}
		if err := flash.AddBinary(addr, seg.Data); err != nil {
			return 0, &errcode.E{
				C:     errcode.InvalidImage,
				Value: fmt.Sprintf("%#010x", seg.Address),
				Msg:   "segment overlaps data already placed in flash",
				Err:   err,
			}
		}
	}
	for _, seg := range flash.GetDataSegments() {
		used += uint32(len(seg.Data))
	}
	return used, nil
}
