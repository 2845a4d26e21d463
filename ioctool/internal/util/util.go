// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/embeddedgo/cubemx/ioc"
	"github.com/embeddedgo/cubemx/model"
)

func Warn(f string, args ...any) {
	glog.WarningDepth(1, fmt.Sprintf(f, args...))
}

func Fatal(f string, args ...any) {
	glog.ExitDepth(1, fmt.Sprintf(f, args...))
}

// FatalErr logs an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error()
	if what != "" {
		s = what + ": " + s
	}
	glog.ExitDepth(1, s)
}

// IOCFile returns name if it is not empty. Otherwise it returns the only
// .ioc file in the current working directory.
func IOCFile(name string) string {
	if name != "" {
		return name
	}
	names, err := filepath.Glob("*.ioc")
	FatalErr("", err)
	switch len(names) {
	case 0:
		Fatal("no .ioc file in the current directory")
	case 1:
		return names[0]
	}
	Fatal("more than one .ioc file in the current directory: %v", names)
	return ""
}

// ReadConfig reads and parses the named configuration file. Lines without a
// single '=' are reported as warnings, other ignored lines only in verbose
// mode.
func ReadConfig(name string) *ioc.Config {
	b, err := os.ReadFile(name)
	FatalErr("", err)
	cfg := ioc.Parse(string(b))
	for _, s := range cfg.Skipped() {
		switch s.Reason {
		case ioc.NoAssign, ioc.MultiAssign:
			Warn("%s:%d: %s: %s", name, s.Line, s.Reason, s.Text)
		default:
			glog.V(1).Infof("%s:%d: %s: %s", name, s.Line, s.Reason, s.Text)
		}
	}
	glog.V(1).Infof("%s: %d objects", name, cfg.Len())
	return cfg
}

// LoadModel reads the named configuration file and resolves it.
func LoadModel(name string) *model.Model {
	m, err := model.Resolve(ReadConfig(name))
	FatalErr(name, err)
	glog.V(1).Infof("%s: %s %s, %d pins", name, m.Family, m.Chip, len(m.Pins))
	return m
}
