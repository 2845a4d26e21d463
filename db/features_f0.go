// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

// featuresF0 lists the stm32f0xx-hal features. Each name is also its own
// pattern (see compileFeatures). The specific x4/x6/x8/xb/xc variants must
// precede the bare line name they share a prefix with.
var featuresF0 = []string{
	"stm32f030x4",
	"stm32f030x6",
	"stm32f030x8",
	"stm32f030xc",
	"stm32f030",
	"stm32f031",
	"stm32f038",
	"stm32f042",
	"stm32f048",
	"stm32f051",
	"stm32f058",
	"stm32f070x6",
	"stm32f070xb",
	"stm32f070",
	"stm32f071",
	"stm32f072",
	"stm32f078",
	"stm32f091",
	"stm32f098",
}
