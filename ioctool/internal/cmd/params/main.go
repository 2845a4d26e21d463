// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/embeddedgo/cubemx/ioctool/internal/util"
	_ "github.com/embeddedgo/cubemx/model" // registers all parameter enums
	"github.com/embeddedgo/cubemx/param"
)

const Descr = "list the known parameter types and their values"

func Main(args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = func() {
		os.Stderr.WriteString("Usage:\n  params\n")
	}
	fs.Parse(args[1:])
	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(1)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tDEFAULT\tVALUES")
	for _, d := range param.Enums() {
		def, ok := d.DefaultString()
		if !ok {
			def = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name(), def, strings.Join(d.Strings(), " "))
	}
	util.FatalErr("", w.Flush())
}
