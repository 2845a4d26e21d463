// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ioc parses the flat Object.Parameter=Value format of STM32CubeMX
// project files into a two-level mapping.
//
// The format has no escaping, quoting or nesting. A line is taken into
// account only if it contains exactly one '=' and its left side contains
// exactly one '.'. Every other non-empty line is ignored and reported by
// Config.Skipped.
package ioc

import (
	"strings"

	"github.com/embeddedgo/cubemx/internal/natsort"
)

// Section holds the parameters of one object. The zero Section is empty.
type Section struct {
	params map[string]string
}

// Get returns the raw value of the parameter key.
func (s Section) Get(key string) (string, bool) {
	v, ok := s.params[key]
	return v, ok
}

// Has reports whether the parameter key is present.
func (s Section) Has(key string) bool {
	_, ok := s.params[key]
	return ok
}

// Len returns the number of parameters.
func (s Section) Len() int { return len(s.params) }

// Keys returns the parameter names in natural order.
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s.params))
	for k := range s.params {
		keys = append(keys, k)
	}
	natsort.Strings(keys)
	return keys
}

// Reasons reported for ignored lines.
const (
	Comment      = "comment"
	NoAssign     = "no '='"
	MultiAssign  = "multiple '='"
	MalformedKey = "malformed key"
)

// Skipped describes an ignored input line.
type Skipped struct {
	Line   int // 1-based
	Text   string
	Reason string
}

// Config is the parsed content of a configuration file. It is never modified
// after Parse returns.
type Config struct {
	objects map[string]Section
	skipped []Skipped
}

// Parse splits text into objects and their parameters. Later lines override
// earlier ones for the same object and parameter.
func Parse(text string) *Config {
	cfg := &Config{objects: make(map[string]Section)}
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		name, value, reason := splitLine(line)
		if reason != "" {
			cfg.skipped = append(cfg.skipped, Skipped{n + 1, line, reason})
			continue
		}
		obj, param, ok := strings.Cut(name, ".")
		if !ok || strings.Contains(param, ".") {
			cfg.skipped = append(cfg.skipped, Skipped{n + 1, line, MalformedKey})
			continue
		}
		sec, ok := cfg.objects[obj]
		if !ok {
			sec = Section{params: make(map[string]string)}
			cfg.objects[obj] = sec
		}
		sec.params[param] = value
	}
	return cfg
}

func splitLine(line string) (name, value, reason string) {
	name, value, ok := strings.Cut(line, "=")
	switch {
	case !ok && strings.HasPrefix(line, "#"):
		return "", "", Comment
	case !ok:
		return "", "", NoAssign
	case strings.Contains(value, "="):
		return "", "", MultiAssign
	}
	return name, value, ""
}

// Object returns the section of the named object.
func (c *Config) Object(name string) (Section, bool) {
	s, ok := c.objects[name]
	return s, ok
}

// Value returns the raw value of object.param.
func (c *Config) Value(object, param string) (string, bool) {
	return c.objects[object].Get(param)
}

// Objects returns all object names in natural order.
func (c *Config) Objects() []string {
	names := make([]string, 0, len(c.objects))
	for name := range c.objects {
		names = append(names, name)
	}
	natsort.Strings(names)
	return names
}

// Len returns the number of objects.
func (c *Config) Len() int { return len(c.objects) }

// Skipped returns the ignored lines in input order.
func (c *Config) Skipped() []Skipped {
	return append([]Skipped(nil), c.skipped...)
}
