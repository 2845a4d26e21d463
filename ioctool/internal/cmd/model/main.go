// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/golang/glog"

	"github.com/embeddedgo/cubemx/export"
	"github.com/embeddedgo/cubemx/gpio"
	"github.com/embeddedgo/cubemx/ioctool/internal/settings"
	"github.com/embeddedgo/cubemx/ioctool/internal/util"
	"github.com/embeddedgo/cubemx/model"
)

const Descr = "resolve .ioc files and print the hardware model"

func Main(args []string) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.Usage = func() {
		os.Stderr.WriteString("Usage:\n  model [OPTIONS] [IOC...]\nOptions:\n")
		fs.PrintDefaults()
	}
	format := fs.String(
		"format", "",
		"output format: "+strings.Join(export.Formats, ", ")+" (default yaml)",
	)
	settingsFile := fs.String("settings", "", "Pkl settings file")
	fs.Parse(args[1:])

	ctx := context.Background()
	cfg, err := settings.Read(ctx, *settingsFile)
	util.FatalErr("settings", err)
	if *format == "" {
		*format = cfg.Format
	}
	if !slices.Contains(export.Formats, *format) {
		util.Fatal("unknown format %q", *format)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = []string{util.IOCFile("")}
	}
	if *format == "proto" && len(names) > 1 {
		util.Fatal("proto output takes a single .ioc file")
	}
	texts := make([]string, len(names))
	for i, name := range names {
		b, err := os.ReadFile(name)
		util.FatalErr("", err)
		texts[i] = string(b)
	}
	models, err := model.ResolveAll(ctx, texts)
	util.FatalErr("resolve", err)

	for i, m := range models {
		glog.Infof("%s: %s (%s)", names[i], m.Chip, m.Family)
		if cfg.CheckAF {
			checkAF(names[i], m)
		}
		out, err := export.Marshal(m, *format)
		util.FatalErr("export", err)
		if i > 0 && *format == "yaml" {
			os.Stdout.WriteString("---\n")
		}
		os.Stdout.Write(out)
		if *format == "json" {
			fmt.Println()
		}
	}
}

func checkAF(name string, m *model.Model) {
	for _, pin := range m.Pins {
		if pin.Signal.Kind != gpio.Peripheral {
			continue
		}
		if _, err := pin.AlternateFunction(m.Family); err != nil {
			util.Warn("%s: %s: %v", name, pin.Register, err)
		}
	}
}
