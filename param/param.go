// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package param turns raw string parameters of an ioc.Section into typed
// values.
//
// Mandatory parsers fail with errcode.MissingKey if the key is absent.
// Optional parsers return an unset Option instead. In both cases a value
// that is present but cannot be parsed is an error (errcode.InvalidEnumValue
// or errcode.InvalidInteger) that names the key and the raw value. Values are
// compared exactly: no trimming, no case folding.
package param

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/embeddedgo/cubemx/errcode"
	"github.com/embeddedgo/cubemx/ioc"
)

// Option is a value that may be absent from the configuration.
type Option[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Option[T] { return Option[T]{v, true} }

// Get returns the value and whether it is set.
func (o Option[T]) Get() (T, bool) { return o.v, o.ok }

func (o Option[T]) IsSet() bool { return o.ok }

// Or returns the value if set, def otherwise.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Mandatory parses the value of key with parse.
func Mandatory[T any](sec ioc.Section, key string, parse func(string) (T, error)) (T, error) {
	s, ok := sec.Get(key)
	if !ok {
		var zero T
		return zero, errcode.Missing(key)
	}
	v, err := parse(s)
	if err != nil {
		return v, errcode.WithKey(err, key)
	}
	return v, nil
}

// Optional parses the value of key with parse if it is present.
func Optional[T any](sec ioc.Section, key string, parse func(string) (T, error)) (Option[T], error) {
	s, ok := sec.Get(key)
	if !ok {
		return Option[T]{}, nil
	}
	v, err := parse(s)
	if err != nil {
		return Option[T]{}, errcode.WithKey(err, key)
	}
	return Some(v), nil
}

// String accepts any value.
func String(s string) (string, error) { return s, nil }

// ParseInt parses a decimal integer that fits in T.
func ParseInt[T constraints.Integer](s string) (T, error) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if ^zero < 0 {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, intErr(s, err)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return zero, intErr(s, err)
	}
	return T(v), nil
}

func intErr(s string, err error) error {
	msg := "not an integer"
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		msg = "out of range"
	}
	return &errcode.E{C: errcode.InvalidInteger, Value: s, Msg: msg}
}

func MandatoryInt[T constraints.Integer](sec ioc.Section, key string) (T, error) {
	return Mandatory(sec, key, ParseInt[T])
}

func OptionalInt[T constraints.Integer](sec ioc.Section, key string) (Option[T], error) {
	return Optional(sec, key, ParseInt[T])
}
