// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package af

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/gpio"
	"github.com/embeddedgo/cubemx/ioctool/internal/util"
)

const Descr = "print the alternate function of every peripheral pin"

func Main(args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = func() {
		os.Stderr.WriteString("Usage:\n  af [IOC]\n")
	}
	fs.Parse(args[1:])
	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(1)
	}
	m := util.LoadModel(util.IOCFile(fs.Arg(0)))
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PIN\tNAME\tFUNCTION\tAF")
	for _, pin := range m.Pins {
		if pin.Signal.Kind != gpio.Peripheral {
			continue
		}
		af := "-"
		n, err := pin.AlternateFunction(m.Family)
		switch {
		case err == nil:
			af = fmt.Sprint(n)
		case !errors.Is(err, errcode.UnknownLookupEntry):
			util.FatalErr(pin.Register, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pin.Register, pin.Name(), pin.Signal.Function, af)
	}
	util.FatalErr("", w.Flush())
}
