// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export renders a model in formats usable outside Go.
//
// All formats are built from the same generic tree (see Tree). Options that
// are not set in the configuration are left out.
package export

import (
	"errors"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/gpio"
	"github.com/embeddedgo/cubemx/model"
	"github.com/embeddedgo/cubemx/param"
	"github.com/embeddedgo/cubemx/rcc"
)

type object = map[string]any

func setOpt[T any](o object, key string, v param.Option[T]) {
	if x, ok := v.Get(); ok {
		o[key] = x
	}
}

// setStr is setOpt for string kinds, which are exported as plain strings.
func setStr[T ~string](o object, key string, v param.Option[T]) {
	if x, ok := v.Get(); ok {
		o[key] = string(x)
	}
}

// Tree returns the model as nested map[string]any and []any values holding
// strings, bools and uint32 numbers. The AF index of a peripheral pin is
// included if the lookup database knows it.
func Tree(m *model.Model) map[string]any {
	return object{
		"version": m.Version,
		"family":  string(m.Family),
		"chip":    m.Chip,
		"rcc":     rccTree(m.RCC),
		"ports":   ports(m.Ports),
		"pins":    pins(m),
		"spi":     spis(m),
		"i2c":     i2cs(m),
		"usart":   usarts(m),
	}
}

func rccTree(rc *rcc.Config) object {
	o := object{"source": rc.Clock.Source.String()}
	if rc.Clock.Source == rcc.HSE {
		o["bypass"] = rc.Clock.Bypass
		o["hse_freq"] = rc.Clock.Freq
	}
	setOpt(o, "sysclk_freq", rc.SYSCLK)
	setOpt(o, "hclk_freq", rc.HCLK)
	setOpt(o, "apb1_freq", rc.APB1)
	return o
}

func ports(ps []gpio.Port) []any {
	l := make([]any, len(ps))
	for i, p := range ps {
		l[i] = p.String()
	}
	return l
}

func pins(m *model.Model) []any {
	l := make([]any, len(m.Pins))
	for i, p := range m.Pins {
		o := object{
			"name":     p.Name(),
			"port":     p.Port.String(),
			"register": p.Register,
			"signal":   p.Signal.String(),
		}
		setOpt(o, "label", p.Label)
		setStr(o, "pin_state", p.PinState)
		setStr(o, "pull", p.Pull)
		setStr(o, "speed", p.Speed)
		setStr(o, "output_mode", p.OutputMode)
		if p.Signal.Kind == gpio.Peripheral {
			if af, err := p.AlternateFunction(m.Family); err == nil {
				o["af"] = uint32(af)
			}
		}
		l[i] = o
	}
	return l
}

func spis(m *model.Model) []any {
	l := make([]any, len(m.SPIs))
	for i, c := range m.SPIs {
		o := object{
			"name":      c.Name,
			"prescaler": string(c.Prescaler),
			"baud_rate": uint32(c.BaudRate),
		}
		setStr(o, "phase", c.Phase)
		setStr(o, "polarity", c.Polarity)
		l[i] = o
	}
	return l
}

func i2cs(m *model.Model) []any {
	l := make([]any, len(m.I2Cs))
	for i, c := range m.I2Cs {
		o := object{"name": c.Name}
		setStr(o, "mode", c.Mode)
		l[i] = o
	}
	return l
}

func usarts(m *model.Model) []any {
	l := make([]any, len(m.USARTs))
	for i, c := range m.USARTs {
		o := object{"name": c.Name}
		setOpt(o, "baud_rate", c.BaudRate)
		l[i] = o
	}
	return l
}

// Struct returns the model as a protobuf Struct.
func Struct(m *model.Model) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(Tree(m))
	if err != nil {
		return nil, &errcode.E{C: errcode.Error, Msg: "cannot build struct", Err: err}
	}
	return st, nil
}

// JSON returns the protobuf JSON encoding of the model.
func JSON(m *model.Model) ([]byte, error) {
	st, err := Struct(m)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
}

// Proto returns the binary protobuf encoding of the model. Identical models
// always give identical bytes.
func Proto(m *model.Model) ([]byte, error) {
	st, err := Struct(m)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(st)
}

// YAML returns the model as a YAML document with sorted keys.
func YAML(m *model.Model) ([]byte, error) {
	return yaml.Marshal(Tree(m))
}

// Decode parses the output of Proto back into a tree. Numbers come back as
// float64.
func Decode(b []byte) (map[string]any, error) {
	st := new(structpb.Struct)
	if err := proto.Unmarshal(b, st); err != nil {
		return nil, &errcode.E{C: errcode.Error, Msg: "cannot decode model", Err: err}
	}
	return st.AsMap(), nil
}

// Formats lists the names accepted by Marshal.
var Formats = []string{"yaml", "json", "proto"}

// ErrFormat is returned by Marshal for unknown format names.
var ErrFormat = errors.New("unknown export format")

// Marshal encodes the model in the named format.
func Marshal(m *model.Model, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return YAML(m)
	case "json":
		return JSON(m)
	case "proto":
		return Proto(m)
	}
	return nil, ErrFormat
}
