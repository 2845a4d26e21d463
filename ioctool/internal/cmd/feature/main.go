// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"flag"
	"fmt"
	"os"

	"github.com/embeddedgo/cubemx/ioctool/internal/util"
)

const Descr = "print the HAL feature name of the configured chip"

func Main(args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = func() {
		os.Stderr.WriteString("Usage:\n  feature [IOC]\n")
	}
	fs.Parse(args[1:])
	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(1)
	}
	m := util.LoadModel(util.IOCFile(fs.Arg(0)))
	f, err := m.Feature()
	util.FatalErr(m.Chip, err)
	fmt.Println(f)
}
