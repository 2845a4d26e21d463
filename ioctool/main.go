// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ioctool inspects STM32CubeMX .ioc files.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/golang/glog"

	"github.com/embeddedgo/cubemx/ioctool/internal/cmd/af"
	"github.com/embeddedgo/cubemx/ioctool/internal/cmd/check"
	"github.com/embeddedgo/cubemx/ioctool/internal/cmd/feature"
	"github.com/embeddedgo/cubemx/ioctool/internal/cmd/mem"
	"github.com/embeddedgo/cubemx/ioctool/internal/cmd/model"
	"github.com/embeddedgo/cubemx/ioctool/internal/cmd/params"
)

type tool struct {
	descr string
	main  func(args []string)
}

var tools = map[string]tool{
	"af":      {af.Descr, af.Main},
	"check":   {check.Descr, check.Main},
	"feature": {feature.Descr, feature.Main},
	"mem":     {mem.Descr, mem.Main},
	"model":   {model.Descr, model.Main},
	"params":  {params.Descr, params.Main},
}

func printToolList() {
	names := slices.Sorted(maps.Keys(tools))
	maxLen := 0
	for _, k := range names {
		if maxLen < len(k) {
			maxLen = len(k)
		}
	}
	uw := os.Stderr
	uw.WriteString("Usage:\n  ioctool [LOG OPTIONS] COMMAND [ARGUMENTS]\n\n")
	uw.WriteString("Available commands:\n")
	for _, name := range names {
		fmt.Fprintf(uw, "  %*s  %s\n", maxLen, name, tools[name].descr)
	}
	uw.WriteString("\nLog options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Set("logtostderr", "true")
	flag.Usage = printToolList
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) == 0 {
		printToolList()
		return
	}
	tool, ok := tools[args[0]]
	if !ok {
		printToolList()
		glog.Flush()
		os.Exit(1)
	}
	tool.main(args)
}
