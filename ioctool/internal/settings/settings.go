// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import "context"

// Default returns the settings used when no settings file is given.
func Default() *Settings {
	return &Settings{Format: "yaml"}
}

// Read evaluates the settings file at path. An empty path gives the default
// settings.
func Read(ctx context.Context, path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFromPath(ctx, path)
}
