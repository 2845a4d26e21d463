// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usart resolves the USART1 to USART8 objects of a configuration.
package usart

import (
	"fmt"
	"strings"

	"github.com/embeddedgo/cubemx/ioc"
	"github.com/embeddedgo/cubemx/param"
)

const MaxUSARTs = 8

type Controller struct {
	Name     string
	BaudRate param.Option[uint32]
}

func (c *Controller) Lower() string { return strings.ToLower(c.Name) }

// Resolve returns the controllers of the USART objects present in cfg.
func Resolve(cfg *ioc.Config) ([]*Controller, error) {
	var usarts []*Controller
	for i := 1; i <= MaxUSARTs; i++ {
		name := fmt.Sprintf("USART%d", i)
		sec, ok := cfg.Object(name)
		if !ok {
			continue
		}
		br, err := param.OptionalInt[uint32](sec, "BaudRate")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		usarts = append(usarts, &Controller{Name: name, BaudRate: br})
	}
	return usarts, nil
}
