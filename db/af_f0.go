// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

// afF0 maps a peripheral function to the AF index of every pin that can
// carry it.
var afF0 = map[string]map[string]AF{
	"I2C1_SCL": {
		"pa9": 4, "pa11": 5, "pb6": 1, "pb8": 1, "pb10": 1, "pb13": 5, "pf1": 1,
	},
	"I2C1_SDA": {
		"pa10": 4, "pa12": 5, "pb7": 1, "pb9": 1, "pb11": 1, "pb14": 5, "pf0": 1,
	},
	"I2C2_SCL": {
		"pa11": 5, "pb10": 1, "pb13": 5,
	},
	"I2C2_SDA": {
		"pa12": 5, "pb11": 1, "pb14": 5,
	},
	"SPI1_MISO": {
		"pa6": 0, "pb4": 0, "pb14": 0, "pe14": 1,
	},
	"SPI1_MOSI": {
		"pa7": 0, "pb5": 0, "pb15": 0, "pe15": 1,
	},
	"SPI1_SCK": {
		"pa5": 0, "pb3": 0, "pb13": 0, "pe13": 1,
	},
	"SPI2_MISO": {
		"pb14": 0, "pc2": 1, "pd3": 1,
	},
	"SPI2_MOSI": {
		"pb15": 0, "pc3": 1, "pd4": 1,
	},
	"SPI2_SCK": {
		"pb10": 5, "pb13": 0, "pd1": 1,
	},
	"USART1_RX": {
		"pa3": 1, "pa10": 1, "pa15": 1, "pb7": 0,
	},
	"USART1_TX": {
		"pa2": 1, "pa9": 1, "pa14": 1, "pb6": 0,
	},
	"USART2_RX": {
		"pa3": 1, "pa15": 1, "pd6": 0,
	},
	"USART2_TX": {
		"pa2": 1, "pa14": 1, "pd5": 0,
	},
	"USART3_RX": {
		"pb11": 4, "pc5": 1, "pc11": 1, "pd9": 0,
	},
	"USART3_TX": {
		"pb10": 4, "pc4": 1, "pc10": 1, "pd8": 0,
	},
	"USART4_RX": {
		"pa1": 4, "pc11": 0, "pe9": 1,
	},
	"USART4_TX": {
		"pa0": 4, "pc10": 0, "pe8": 1,
	},
	"USART5_RX": {
		"pb4": 4, "pd2": 2, "pe11": 1,
	},
	"USART5_TX": {
		"pb3": 4, "pc12": 2, "pe10": 1,
	},
	"USART6_RX": {
		"pa5": 5, "pc1": 2, "pf10": 1,
	},
	"USART6_TX": {
		"pa4": 5, "pc0": 2, "pf9": 1,
	},
	"USART7_RX": {
		"pc1": 1, "pc7": 1, "pf3": 1,
	},
	"USART7_TX": {
		"pc0": 1, "pc6": 1, "pf2": 1,
	},
	"USART8_RX": {
		"pc3": 2, "pc9": 1, "pd14": 0,
	},
	"USART8_TX": {
		"pc2": 2, "pc8": 1, "pd13": 0,
	},
}
