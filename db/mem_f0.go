// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

var memF0 = map[string]MemSize{
	"STM32F030C6Tx": {32, 4},
	"STM32F030C8Tx": {64, 8},
	"STM32F030CCTx": {256, 32},
	"STM32F030F4Px": {16, 4},
	"STM32F030K6Tx": {32, 4},
	"STM32F030R8Tx": {64, 8},
	"STM32F030RCTx": {256, 32},
	"STM32F031C4Tx": {16, 4},
	"STM32F031C6Tx": {32, 4},
	"STM32F031E6Yx": {32, 4},
	"STM32F031F4Px": {16, 4},
	"STM32F031F6Px": {32, 4},
	"STM32F031G4Ux": {16, 4},
	"STM32F031G6Ux": {32, 4},
	"STM32F031K4Ux": {16, 4},
	"STM32F031K6Tx": {32, 4},
	"STM32F031K6Ux": {32, 4},
	"STM32F038C6Tx": {32, 4},
	"STM32F038E6Yx": {32, 4},
	"STM32F038F6Px": {32, 4},
	"STM32F038G6Ux": {32, 4},
	"STM32F038K6Ux": {32, 4},
	"STM32F042C4Tx": {16, 6},
	"STM32F042C4Ux": {16, 6},
	"STM32F042C6Tx": {32, 6},
	"STM32F042C6Ux": {32, 6},
	"STM32F042F4Px": {16, 6},
	"STM32F042F6Px": {32, 6},
	"STM32F042G4Ux": {16, 6},
	"STM32F042G6Ux": {32, 6},
	"STM32F042K4Tx": {16, 6},
	"STM32F042K4Ux": {16, 6},
	"STM32F042K6Tx": {32, 6},
	"STM32F042K6Ux": {32, 6},
	"STM32F042T6Yx": {32, 6},
	"STM32F048C6Ux": {32, 6},
	"STM32F048G6Ux": {32, 6},
	"STM32F048T6Yx": {32, 6},
	"STM32F051C4Tx": {16, 8},
	"STM32F051C4Ux": {16, 8},
	"STM32F051C6Tx": {32, 8},
	"STM32F051C6Ux": {32, 8},
	"STM32F051C8Tx": {64, 8},
	"STM32F051C8Ux": {64, 8},
	"STM32F051K4Tx": {16, 8},
	"STM32F051K4Ux": {16, 8},
	"STM32F051K6Tx": {32, 8},
	"STM32F051K6Ux": {32, 8},
	"STM32F051K8Tx": {64, 8},
	"STM32F051K8Ux": {64, 8},
	"STM32F051R4Tx": {16, 8},
	"STM32F051R6Tx": {32, 8},
	"STM32F051R8Tx": {64, 8},
	"STM32F051T8Yx": {64, 8},
	"STM32F058C8Ux": {64, 8},
	"STM32F058R8Hx": {64, 8},
	"STM32F058R8Tx": {64, 8},
	"STM32F058T8Yx": {64, 8},
	"STM32F070C6Tx": {32, 6},
	"STM32F070CBTx": {128, 16},
	"STM32F070F6Px": {32, 6},
	"STM32F070RBTx": {128, 16},
	"STM32F071C8Tx": {64, 16},
	"STM32F071C8Ux": {64, 16},
	"STM32F071CBTx": {128, 16},
	"STM32F071CBUx": {128, 16},
	"STM32F071CBYx": {128, 16},
	"STM32F071RBTx": {128, 16},
	"STM32F071V8Hx": {64, 16},
	"STM32F071V8Tx": {64, 16},
	"STM32F071VBHx": {128, 16},
	"STM32F071VBTx": {128, 16},
	"STM32F072C8Tx": {64, 16},
	"STM32F072C8Ux": {64, 16},
	"STM32F072CBTx": {128, 16},
	"STM32F072CBUx": {128, 16},
	"STM32F072CBYx": {128, 16},
	"STM32F072R8Tx": {64, 16},
	"STM32F072RBHx": {128, 16},
	"STM32F072RBIx": {128, 16},
	"STM32F072RBTx": {128, 16},
	"STM32F072V8Hx": {64, 16},
	"STM32F072V8Tx": {64, 16},
	"STM32F072VBHx": {128, 16},
	"STM32F072VBTx": {128, 16},
	"STM32F078CBTx": {128, 16},
	"STM32F078CBUx": {128, 16},
	"STM32F078CBYx": {128, 16},
	"STM32F078RBHx": {128, 16},
	"STM32F078RBTx": {128, 16},
	"STM32F078VBHx": {128, 16},
	"STM32F078VBTx": {128, 16},
	"STM32F091CBTx": {128, 32},
	"STM32F091CBUx": {128, 32},
	"STM32F091CCTx": {256, 32},
	"STM32F091CCUx": {256, 32},
	"STM32F091RBTx": {128, 32},
	"STM32F091RCHx": {256, 32},
	"STM32F091RCTx": {256, 32},
	"STM32F091RCYx": {256, 32},
	"STM32F091VBTx": {128, 32},
	"STM32F091VCHx": {256, 32},
	"STM32F091VCTx": {256, 32},
	"STM32F098CCUx": {256, 32},
	"STM32F098RCHx": {256, 32},
	"STM32F098RCTx": {256, 32},
	"STM32F098RCYx": {256, 32},
	"STM32F098VCHx": {256, 32},
	"STM32F098VCTx": {256, 32},
}
