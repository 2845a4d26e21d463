// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"errors"
	"slices"
	"testing"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/ioc"
)

type color string

var colorEnum = DefineWithDefault[color]("testColor", "RED", "RED", "GREEN", "BLUE")

type shape string

var shapeEnum = Define[shape]("testShape", "CIRCLE", "SQUARE")

func section(t *testing.T, text string) ioc.Section {
	t.Helper()
	sec, ok := ioc.Parse(text).Object("Obj")
	if !ok {
		t.Fatalf("no Obj in %q", text)
	}
	return sec
}

func keyOf(err error) (key, value string) {
	var e *errcode.E
	if errors.As(err, &e) {
		return e.Key, e.Value
	}
	return "", ""
}

func TestEnumMandatory(t *testing.T) {
	sec := section(t, "Obj.Color=GREEN\nObj.Bad=green\nObj.Shape=SQUARE")

	if c, err := colorEnum.Mandatory(sec, "Color"); err != nil || c != "GREEN" {
		t.Fatalf("Mandatory(Color) = %q, %v", c, err)
	}

	_, err := colorEnum.Mandatory(sec, "Missing")
	if !errors.Is(err, errcode.MissingKey) {
		t.Fatalf("Mandatory(Missing) err = %v, want MissingKey", err)
	}
	if k, _ := keyOf(err); k != "Missing" {
		t.Fatalf("MissingKey names %q", k)
	}

	// no case folding
	_, err = colorEnum.Mandatory(sec, "Bad")
	if !errors.Is(err, errcode.InvalidEnumValue) {
		t.Fatalf("Mandatory(Bad) err = %v, want InvalidEnumValue", err)
	}
	if k, v := keyOf(err); k != "Bad" || v != "green" {
		t.Fatalf("InvalidEnumValue names %q=%q", k, v)
	}
}

func TestEnumOptional(t *testing.T) {
	sec := section(t, "Obj.Color=BLUE\nObj.Shape= CIRCLE")

	o, err := colorEnum.Optional(sec, "Color")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := o.Get(); !ok || v != "BLUE" {
		t.Fatalf("Optional(Color) = %q, %v", v, ok)
	}

	o, err = colorEnum.Optional(sec, "Other")
	if err != nil || o.IsSet() {
		t.Fatalf("absent key: %v, set=%v", err, o.IsSet())
	}
	if got := colorEnum.Or(o); got != "RED" {
		t.Fatalf("default = %q, want RED", got)
	}

	// leading space is not trimmed
	if _, err := shapeEnum.Optional(sec, "Shape"); !errors.Is(err, errcode.InvalidEnumValue) {
		t.Fatalf("Optional(Shape) err = %v, want InvalidEnumValue", err)
	}
	if got := shapeEnum.Or(Option[shape]{}); got != "" {
		t.Fatalf("enum without default returned %q", got)
	}
	if _, ok := shapeEnum.Default(); ok {
		t.Fatal("testShape has no default")
	}
}

func TestInts(t *testing.T) {
	sec := section(t, "Obj.Freq=48000000\nObj.Neg=-1\nObj.Text=8MHz\nObj.Big=300")

	f, err := MandatoryInt[uint32](sec, "Freq")
	if err != nil || f != 48000000 {
		t.Fatalf("MandatoryInt(Freq) = %d, %v", f, err)
	}
	if n, err := MandatoryInt[int](sec, "Neg"); err != nil || n != -1 {
		t.Fatalf("MandatoryInt[int](Neg) = %d, %v", n, err)
	}
	for _, key := range []string{"Neg", "Text"} {
		_, err := MandatoryInt[uint32](sec, key)
		if !errors.Is(err, errcode.InvalidInteger) {
			t.Errorf("MandatoryInt(%s) err = %v, want InvalidInteger", key, err)
		}
	}
	if _, err := MandatoryInt[uint8](sec, "Big"); !errors.Is(err, errcode.InvalidInteger) {
		t.Errorf("uint8 overflow err = %v", err)
	}
	if _, err := MandatoryInt[uint32](sec, "Nope"); !errors.Is(err, errcode.MissingKey) {
		t.Errorf("missing int err = %v", err)
	}

	o, err := OptionalInt[uint32](sec, "Nope")
	if err != nil || o.IsSet() {
		t.Fatalf("OptionalInt(Nope) = %v, %v", o, err)
	}
	_, err = OptionalInt[uint32](sec, "Text")
	if !errors.Is(err, errcode.InvalidInteger) {
		t.Fatalf("OptionalInt(Text) err = %v", err)
	}
	if k, v := keyOf(err); k != "Text" || v != "8MHz" {
		t.Fatalf("InvalidInteger names %q=%q", k, v)
	}
}

func TestRegistry(t *testing.T) {
	d, ok := Lookup("testColor")
	if !ok {
		t.Fatal("testColor not registered")
	}
	if got := d.Strings(); !slices.Equal(got, []string{"RED", "GREEN", "BLUE"}) {
		t.Fatalf("variants = %v", got)
	}
	if def, ok := d.DefaultString(); !ok || def != "RED" {
		t.Fatalf("default = %q, %v", def, ok)
	}
	names := make([]string, 0)
	for _, d := range Enums() {
		names = append(names, d.Name())
	}
	if !slices.IsSorted(names) || !slices.Contains(names, "testShape") {
		t.Fatalf("Enums() = %v", names)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on duplicate definition")
		}
	}()
	Define[shape]("testShape", "TRIANGLE")
}

func TestBadDefaultPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on invalid default")
		}
	}()
	DefineWithDefault[shape]("testBadDefault", "HEXAGON", "CIRCLE")
}
