// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/embeddedgo/cubemx/ioctool/internal/util"
	"github.com/embeddedgo/cubemx/memory"
)

const Descr = "check that an Intel HEX image fits in the flash of the configured chip"

func Main(args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = func() {
		os.Stderr.WriteString("Usage:\n  check [OPTIONS] HEX\nOptions:\n")
		fs.PrintDefaults()
	}
	iocFile := fs.String("ioc", "", "configuration file (default: the only .ioc file in the current directory)")
	fs.Parse(args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	m := util.LoadModel(util.IOCFile(*iocFile))
	l, err := memory.LayoutFor(m.Family, m.Chip)
	util.FatalErr(m.Chip, err)

	hex := fs.Arg(0)
	f, err := os.Open(hex)
	util.FatalErr("", err)
	defer f.Close()
	glog.V(1).Infof("checking %s against %s", hex, l.Flash)
	used, err := l.CheckImage(f)
	util.FatalErr(hex, err)
	fmt.Printf(
		"%s: %d of %d bytes of flash used (%.1f%%)\n",
		hex, used, l.Flash.Length, 100*float64(used)/float64(l.Flash.Length),
	)
}
