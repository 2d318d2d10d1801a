// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package format renders card numbers for display, either grouped for
// readability or masked down to the trailing digits.
package format

import "strings"

// DefaultVisibleDigits is how many trailing digits Mask leaves readable.
const DefaultVisibleDigits = 4

// Number formats a card number into digit groups separated by spaces.
func Number(number string) string {
	return NumberWithSeparator(number, " ")
}

// NumberWithSeparator formats a card number into digit groups joined by sep.
// Any existing formatting in the input is stripped first. 15-digit numbers
// (AMEX) use the 4-6-5 layout, 14-digit numbers (Diners Club) use 4-6-4,
// and every other length is grouped in fours from the left with a possibly
// shorter final group.
func NumberWithSeparator(number, sep string) string {
	clean := digitsOnly(number)
	if clean == "" {
		return ""
	}

	switch len(clean) {
	case 15:
		return clean[:4] + sep + clean[4:10] + sep + clean[10:]
	case 14:
		return clean[:4] + sep + clean[4:10] + sep + clean[10:]
	}

	var groups []string
	for i := 0; i < len(clean); i += 4 {
		end := i + 4
		if end > len(clean) {
			end = len(clean)
		}
		groups = append(groups, clean[i:end])
	}
	return strings.Join(groups, sep)
}

// Mask masks a card number leaving the default number of trailing digits
// visible.
func Mask(number string) string {
	return MaskVisible(number, DefaultVisibleDigits)
}

// MaskVisible masks a card number with '*' leaving the last visible digits
// readable. The masked layout tracks the display grouping for the common
// lengths:
//
//	16 digits: **** **** **** 1111
//	15 digits: **** ****** *0005
//	14 digits: **** ****** 1234
//
// Other lengths fall back to a generic walk in groups of four where the
// group containing the visibility boundary renders its masked characters
// first. Input shorter than the visible count is returned unchanged.
func MaskVisible(number string, visible int) string {
	clean := digitsOnly(number)
	if clean == "" {
		return ""
	}

	length := len(clean)
	if length < visible {
		return clean
	}

	visiblePart := clean[length-visible:]

	switch length {
	case 15:
		return "**** ****** *" + visiblePart
	case 14:
		return "**** ****** " + visiblePart
	case 16:
		return "**** **** **** " + visiblePart
	}

	remaining := length - visible
	var groups []string
	for i := 0; i < length; i += 4 {
		size := 4
		if length-i < size {
			size = length - i
		}
		switch {
		case remaining >= size:
			groups = append(groups, strings.Repeat("*", size))
			remaining -= size
		case remaining > 0:
			groups = append(groups, strings.Repeat("*", remaining)+clean[i+remaining:i+size])
			remaining = 0
		default:
			groups = append(groups, clean[i:i+size])
		}
	}
	return strings.Join(groups, " ")
}

// digitsOnly strips every non-digit character from s.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
