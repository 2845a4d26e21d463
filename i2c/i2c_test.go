// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i2c

import (
	"errors"
	"testing"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/gpio"
	"github.com/embeddedgo/cubemx/ioc"
)

func resolve(t *testing.T, text string) ([]*Controller, error) {
	t.Helper()
	cfg := ioc.Parse(text)
	_, pins, err := gpio.Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return Resolve(cfg, pins)
}

func TestResolve(t *testing.T) {
	i2cs, err := resolve(t, `
PB11.Signal=I2C2_SDA
PB10.Signal=I2C2_SCL
PA10.Signal=I2C1_SDA
PA9.Signal=I2C1_SCL
PB7.Signal=I2C1_SDA
I2C1.I2C_Speed_Mode=I2C_Fast
PA1.Signal=GPIO_Input
`)
	if err != nil {
		t.Fatal(err)
	}
	if len(i2cs) != 2 {
		t.Fatalf("controllers = %+v", i2cs)
	}
	// pin order: PA10 (I2C1) before PB11 (I2C2); PB7 is a duplicate
	if i2cs[0].Name != "I2C1" || i2cs[1].Lower() != "i2c2" {
		t.Fatalf("controllers = %s, %s", i2cs[0].Name, i2cs[1].Name)
	}
	if v, ok := i2cs[0].Mode.Get(); !ok || v != "I2C_Fast" {
		t.Errorf("I2C1 mode = %q, %v", v, ok)
	}
	if i2cs[1].Mode.IsSet() || ModeEnum.Or(i2cs[1].Mode) != "I2C_Standard" {
		t.Errorf("I2C2 mode = %v", i2cs[1].Mode)
	}
}

func TestResolveNoSDA(t *testing.T) {
	// an I2C object alone does not define a controller
	i2cs, err := resolve(t, "PA9.Signal=I2C1_SCL\nI2C1.I2C_Speed_Mode=I2C_Fast")
	if err != nil || len(i2cs) != 0 {
		t.Fatalf("got %v, %v", i2cs, err)
	}
}

func TestResolveBadMode(t *testing.T) {
	_, err := resolve(t, "PA10.Signal=I2C1_SDA\nI2C1.I2C_Speed_Mode=Fast")
	if !errors.Is(err, errcode.InvalidEnumValue) {
		t.Fatalf("err = %v, want InvalidEnumValue", err)
	}
	if want := `I2C1: invalid_enum_value: I2C_Speed_Mode="Fast" (invalid I2CSpeedMode)`; err.Error() != want {
		t.Fatalf("err = %q, want %q", err, want)
	}
}
