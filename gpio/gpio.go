// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpio resolves the pin objects of a configuration (PA9, PF0-OSC_IN,
// ...) into typed pins.
package gpio

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/embeddedgo/cubemx/db"
	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/internal/natsort"
	"github.com/embeddedgo/cubemx/ioc"
	"github.com/embeddedgo/cubemx/param"
)

// Port is a GPIO port letter ('A' to 'K').
type Port byte

func (p Port) String() string { return "GPIO" + string(p) }

// Letter returns the port letter as a string.
func (p Port) Letter() string { return string(p) }

type SignalKind int

const (
	Input SignalKind = iota
	Output
	Analog
	Peripheral
)

func (k SignalKind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	case Analog:
		return "analog"
	case Peripheral:
		return "peripheral"
	}
	return ""
}

// Signal is the role of a pin. Function is set for Peripheral signals only.
type Signal struct {
	Kind     SignalKind
	Function string
}

// ParseSignal never fails: every string that is not one of the plain GPIO
// roles names a peripheral function.
func ParseSignal(s string) (Signal, error) {
	switch s {
	case "GPIO_Input":
		return Signal{Kind: Input}, nil
	case "GPIO_Output":
		return Signal{Kind: Output}, nil
	case "GPIO_Analog":
		return Signal{Kind: Analog}, nil
	}
	return Signal{Kind: Peripheral, Function: s}, nil
}

func (s Signal) String() string {
	if s.Kind == Peripheral {
		return s.Function
	}
	return s.Kind.String()
}

type (
	PinState   string
	Pull       string
	Speed      string
	OutputMode string
)

var (
	PinStateEnum = param.Define[PinState](
		"PinStateType", "GPIO_PIN_SET", "GPIO_PIN_RESET",
	)
	PullEnum = param.DefineWithDefault[Pull](
		"PullType", "GPIO_NOPULL",
		"GPIO_PULLUP", "GPIO_PULLDOWN", "GPIO_NOPULL",
	)
	SpeedEnum = param.DefineWithDefault[Speed](
		"SpeedType", "GPIO_SPEED_FREQ_LOW",
		"GPIO_SPEED_FREQ_LOW", "GPIO_SPEED_FREQ_MEDIUM",
		"GPIO_SPEED_FREQ_HIGH", "GPIO_SPEED_FREQ_VERY_HIGH",
	)
	OutputModeEnum = param.DefineWithDefault[OutputMode](
		"ModeOutputType", "GPIO_MODE_OUTPUT_PP",
		"GPIO_MODE_OUTPUT_OD", "GPIO_MODE_OUTPUT_PP",
	)
)

// Pin is a configured GPIO pin.
type Pin struct {
	Port       Port
	Register   string // e.g. "pa9"
	Signal     Signal
	Label      param.Option[string]
	PinState   param.Option[PinState]
	Pull       param.Option[Pull]
	Speed      param.Option[Speed]
	OutputMode param.Option[OutputMode]
}

// Name returns the identifier the pin is known by: its label, the lower-cased
// peripheral function or the register name prefixed by its role.
func (p *Pin) Name() string {
	if label, ok := p.Label.Get(); ok {
		return label
	}
	switch p.Signal.Kind {
	case Peripheral:
		return strings.ToLower(p.Signal.Function)
	case Analog:
		return "adc_" + p.Register
	}
	return "gpio_" + p.Register
}

// AlternateFunction returns the AF index that routes the pin's peripheral
// function to it.
func (p *Pin) AlternateFunction(f db.Family) (db.AF, error) {
	if p.Signal.Kind != Peripheral {
		return 0, &errcode.E{
			C:     errcode.UnknownLookupEntry,
			Value: p.Register,
			Msg:   "not a peripheral pin",
		}
	}
	return db.AlternateFunction(f, p.Signal.Function, p.Register)
}

// Signals of the HSE oscillator pins. Such pins belong to the clock
// configuration and are not reported as GPIOs.
const (
	OscIn  = "RCC_OSC_IN"
	OscOut = "RCC_OSC_OUT"
)

var pinName = regexp.MustCompile(`^P[A-K]\d{1,2}`)

// ParseName derives the port and the register name from a pin name such as
// "PA11".
func ParseName(name string) (Port, string, error) {
	if len(name) < 3 || name[0] != 'P' || name[1] < 'A' || name[1] > 'K' {
		return 0, "", &errcode.E{C: errcode.MalformedPinName, Value: name}
	}
	n, err := strconv.ParseUint(name[2:], 10, 8)
	if err != nil {
		return 0, "", &errcode.E{
			C:     errcode.MalformedPinName,
			Value: name,
			Msg:   "could not parse pin number",
		}
	}
	port := Port(name[1])
	return port, fmt.Sprintf("p%c%d", name[1]+'a'-'A', n), nil
}

type entry struct {
	name   string // matched pin name
	object string
	sec    ioc.Section
}

// Resolve returns the ports in use and the pins in natural order of their
// names.
func Resolve(cfg *ioc.Config) ([]Port, []*Pin, error) {
	var entries []entry
	for _, obj := range cfg.Objects() {
		if m := pinName.FindString(obj); m != "" {
			sec, _ := cfg.Object(obj)
			entries = append(entries, entry{m, obj, sec})
		}
	}
	sort.SliceStable(entries, func(i, k int) bool {
		if c := natsort.Compare(entries[i].name, entries[k].name); c != 0 {
			return c < 0
		}
		return entries[i].object < entries[k].object
	})

	var (
		ports []Port
		pins  []*Pin
		seen  = make(map[string]string)
	)
	for _, e := range entries {
		pin, err := newPin(e.name, e.sec)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", e.object, err)
		}
		if pin.Signal.Kind == Peripheral &&
			(pin.Signal.Function == OscIn || pin.Signal.Function == OscOut) {
			continue
		}
		if prev, ok := seen[pin.Register]; ok {
			return nil, nil, &errcode.E{
				C:     errcode.MalformedPinName,
				Value: e.object,
				Msg:   "pin " + pin.Register + " already defined by " + prev,
			}
		}
		seen[pin.Register] = e.object
		if n := len(ports); n == 0 || ports[n-1] != pin.Port {
			ports = append(ports, pin.Port)
		}
		pins = append(pins, pin)
	}
	return ports, pins, nil
}

func newPin(name string, sec ioc.Section) (*Pin, error) {
	port, reg, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	pin := &Pin{Port: port, Register: reg}
	if pin.Signal, err = param.Mandatory(sec, "Signal", ParseSignal); err != nil {
		return nil, err
	}
	if pin.Label, err = param.Optional(sec, "GPIO_Label", param.String); err != nil {
		return nil, err
	}
	if pin.PinState, err = PinStateEnum.Optional(sec, "PinState"); err != nil {
		return nil, err
	}
	if pin.Pull, err = PullEnum.Optional(sec, "GPIO_PuPd"); err != nil {
		return nil, err
	}
	if pin.Speed, err = SpeedEnum.Optional(sec, "GPIO_Speed"); err != nil {
		return nil, err
	}
	pin.OutputMode, err = OutputModeEnum.Optional(sec, "GPIO_ModeDefaultOutputPP")
	if err != nil {
		return nil, err
	}
	return pin, nil
}
