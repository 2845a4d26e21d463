// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mem

import (
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/cubemx/ioctool/internal/util"
	"github.com/embeddedgo/cubemx/memory"
)

const Descr = "print the flash and RAM regions of the configured chip"

func Main(args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = func() {
		os.Stderr.WriteString("Usage:\n  mem [IOC]\n")
	}
	fs.Parse(args[1:])
	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(1)
	}
	m := util.LoadModel(util.IOCFile(fs.Arg(0)))
	size, err := m.Memory()
	util.FatalErr(m.Chip, err)
	l := memory.NewLayout(size)
	fmt.Printf("%s: %d KB flash, %d KB RAM\n", m.Chip, size.FlashKB, size.RAMKB)
	fmt.Println(l.Flash)
	fmt.Println(l.RAM)
}
