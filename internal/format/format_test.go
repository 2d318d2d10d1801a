// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"strings"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"standard 16", "4111111111111111", "4111 1111 1111 1111"},
		{"amex 15", "378282246310005", "3782 822463 10005"},
		{"diners 14", "30000000000004", "3000 000000 0004"},
		{"visa 13", "4111111111111", "4111 1111 1111 1"},
		{"unionpay 19", "6200000000000000005", "6200 0000 0000 0000 005"},
		{"already formatted", "4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"dashed input", "4111-1111-1111-1111", "4111 1111 1111 1111"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.number); got != tt.want {
				t.Errorf("Number(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestNumberWithSeparator(t *testing.T) {
	if got := NumberWithSeparator("4111111111111111", "-"); got != "4111-1111-1111-1111" {
		t.Errorf("NumberWithSeparator = %q", got)
	}
	if got := NumberWithSeparator("378282246310005", "-"); got != "3782-822463-10005" {
		t.Errorf("NumberWithSeparator amex = %q", got)
	}
}

func TestNumber_IdempotentUnderReformatting(t *testing.T) {
	numbers := []string{"4111111111111111", "378282246310005", "30000000000004", "62000000000000005"}
	for _, n := range numbers {
		once := Number(n)
		twice := Number(once)
		if once != twice {
			t.Errorf("Number not idempotent for %q: %q vs %q", n, once, twice)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"standard 16", "4111111111111111", "**** **** **** 1111"},
		{"amex 15", "378282246310005", "**** ****** *0005"},
		{"diners 14", "30000000000004", "**** ****** 0004"},
		{"visa 13", "4111111111111", "**** **** *111 1"},
		{"unionpay 19", "6200000000000000005", "**** **** **** ***0 005"},
		{"formatted input", "4111 1111 1111 1111", "**** **** **** 1111"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.number); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestMaskVisible_SuffixAlwaysVerbatim(t *testing.T) {
	numbers := []string{"4111111111111111", "378282246310005", "30000000000004", "4111111111111"}
	for _, n := range numbers {
		masked := MaskVisible(n, 4)
		flat := strings.ReplaceAll(masked, " ", "")
		if !strings.HasSuffix(flat, n[len(n)-4:]) {
			t.Errorf("MaskVisible(%q, 4) = %q, suffix does not match last 4 digits", n, masked)
		}
	}
}

func TestMaskVisible_ShortInputUnchanged(t *testing.T) {
	if got := MaskVisible("123", 4); got != "123" {
		t.Errorf("MaskVisible(short) = %q, want unchanged input", got)
	}
}

func TestMaskVisible_CustomVisibleCount(t *testing.T) {
	// 12 digits, 6 visible: masked prefix of 6 spans one and a half groups.
	if got := MaskVisible("123456789012", 6); got != "**** **78 9012" {
		t.Errorf("MaskVisible(12 digits, 6) = %q, want %q", got, "**** **78 9012")
	}
}
