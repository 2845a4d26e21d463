// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package param

import (
	"fmt"
	"sort"
	"sync"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/ioc"
)

// Enum is a closed set of string variants with an optional default.
type Enum[T ~string] struct {
	name     string
	variants []T
	def      T
	hasDef   bool
}

// Define declares and registers an enum without a default variant.
func Define[T ~string](name string, variants ...T) *Enum[T] {
	e := &Enum[T]{name: name, variants: variants}
	register(e)
	return e
}

// DefineWithDefault declares and registers an enum whose default is def. It
// panics if def is not one of the variants.
func DefineWithDefault[T ~string](name string, def T, variants ...T) *Enum[T] {
	e := &Enum[T]{name: name, variants: variants, def: def, hasDef: true}
	if !e.valid(string(def)) {
		panic(fmt.Sprintf("param: default %q is not a variant of %s", def, name))
	}
	register(e)
	return e
}

func (e *Enum[T]) Name() string { return e.name }

// Variants returns the variants in declaration order.
func (e *Enum[T]) Variants() []T { return append([]T(nil), e.variants...) }

// Default returns the default variant, if declared.
func (e *Enum[T]) Default() (T, bool) { return e.def, e.hasDef }

func (e *Enum[T]) valid(s string) bool {
	for _, v := range e.variants {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Parse converts s to a variant.
func (e *Enum[T]) Parse(s string) (T, error) {
	if !e.valid(s) {
		var zero T
		return zero, &errcode.E{
			C:     errcode.InvalidEnumValue,
			Value: s,
			Msg:   "invalid " + e.name,
		}
	}
	return T(s), nil
}

func (e *Enum[T]) Mandatory(sec ioc.Section, key string) (T, error) {
	return Mandatory(sec, key, e.Parse)
}

func (e *Enum[T]) Optional(sec ioc.Section, key string) (Option[T], error) {
	return Optional(sec, key, e.Parse)
}

// Or returns the value of o if set, the default variant otherwise. Enums
// without a default return the zero value for an unset o.
func (e *Enum[T]) Or(o Option[T]) T {
	return o.Or(e.def)
}

// Descriptor is the type-erased view of an enum kept in the registry.
type Descriptor interface {
	Name() string
	Strings() []string
	DefaultString() (string, bool)
}

func (e *Enum[T]) Strings() []string {
	ss := make([]string, len(e.variants))
	for i, v := range e.variants {
		ss[i] = string(v)
	}
	return ss
}

func (e *Enum[T]) DefaultString() (string, bool) { return string(e.def), e.hasDef }

var (
	mu    sync.RWMutex
	enums = map[string]Descriptor{}
)

func register(d Descriptor) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := enums[d.Name()]; exists {
		panic(fmt.Sprintf("param: enum %q already defined", d.Name()))
	}
	enums[d.Name()] = d
}

// Lookup returns the registered enum of the given name.
func Lookup(name string) (Descriptor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := enums[name]
	return d, ok
}

// Enums returns all registered enums sorted by name.
func Enums() []Descriptor {
	mu.RLock()
	ds := make([]Descriptor, 0, len(enums))
	for _, d := range enums {
		ds = append(ds, d)
	}
	mu.RUnlock()
	sort.Slice(ds, func(i, k int) bool { return ds[i].Name() < ds[k].Name() })
	return ds
}
