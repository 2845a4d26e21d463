// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"os/exec"
	"testing"
)

func TestReadDefault(t *testing.T) {
	s, err := Read(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Format != "yaml" || s.CheckAF {
		t.Fatalf("default settings = %+v", s)
	}
}

func TestReadFile(t *testing.T) {
	if _, err := exec.LookPath("pkl"); err != nil {
		t.Skip("pkl not installed")
	}
	s, err := Read(context.Background(), "testdata/json.pkl")
	if err != nil {
		t.Fatal(err)
	}
	if s.Format != "json" || !s.CheckAF {
		t.Fatalf("settings = %+v", s)
	}
}
