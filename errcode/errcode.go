// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errcode defines the error taxonomy shared by the configuration
// parser, the lookup database and the peripheral resolvers.
package errcode

import (
	"errors"
	"strconv"
	"strings"
)

// Code is a stable error identifier. It is comparable and implements error so
// it can be used directly as the target of errors.Is.
type Code string

func (c Code) Error() string { return string(c) }

const (
	MissingKey            Code = "missing_key"
	InvalidEnumValue      Code = "invalid_enum_value"
	InvalidInteger        Code = "invalid_integer"
	UnsupportedFamily     Code = "unsupported_family"
	UnknownLookupEntry    Code = "unknown_lookup_entry"
	FormatVersionMismatch Code = "format_version_mismatch"
	MalformedPinName      Code = "malformed_pin_name"
	InvalidImage          Code = "invalid_image"
	ImageOverflow         Code = "image_overflow"

	Error Code = "error" // generic fallback
)

// E is a leaf error that carries the offending key and raw value.
type E struct {
	C     Code
	Key   string
	Value string
	Msg   string
	Err   error
}

func (e *E) Error() string {
	var b strings.Builder
	b.WriteString(string(e.C))
	if e.Key != "" {
		b.WriteString(": ")
		b.WriteString(e.Key)
		if e.C != MissingKey {
			b.WriteByte('=')
			b.WriteString(strconv.Quote(e.Value))
		}
	} else if e.Value != "" {
		b.WriteString(": ")
		b.WriteString(strconv.Quote(e.Value))
	}
	if e.Msg != "" {
		b.WriteString(" (")
		b.WriteString(e.Msg)
		b.WriteByte(')')
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is reports whether target is the code of e.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Missing returns a MissingKey error for key.
func Missing(key string) error {
	return &E{C: MissingKey, Key: key}
}

// Invalid returns an error of code c for the raw value of key.
func Invalid(c Code, key, value, msg string) error {
	return &E{C: c, Key: key, Value: value, Msg: msg}
}

// Of extracts the outermost Code from an error chain, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return ""
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch x := e.(type) {
		case Code:
			return x
		case *E:
			return x.C
		}
	}
	return Error
}

// WithKey sets the key of the first *E found in err if it has none. It is
// used by the generic parsers, which know the key only after the value
// parser has failed.
func WithKey(err error, key string) error {
	var e *E
	if errors.As(err, &e) && e.Key == "" {
		e.Key = key
	}
	return err
}
