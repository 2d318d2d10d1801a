// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// delimiters matches one or more of the field separators accepted between
// the number, expiry, and CVV. Runs of mixed separators collapse to a
// single split point.
var delimiters = regexp.MustCompile(`[|: ]+`)

// Parse tokenizes a raw card string into an immutable Card record.
//
// Accepted shapes:
//
//	NUMBER|MM/YY|CVV       (also MM-YY, MM/YYYY, MM-YYYY)
//	NUMBER|MM|YYYY|CVV     (also 2-digit years)
//
// with `|`, `:` or space as field separators. The expiry month is
// canonicalized to two digits and the year to four (2-digit years are taken
// as 2000+YY). Parse validates structure only; use IsValid or Validate on
// the returned record for Luhn, expiry, and CVV checks. On failure Parse
// returns a *Error and never a partially built record.
func Parse(raw string) (*Card, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, newError(ErrEmptyInput, "card string cannot be empty")
	}

	var parts []string
	for _, p := range delimiters.Split(trimmed, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	var number, month, year, cvv string
	switch len(parts) {
	case 3:
		number, cvv = parts[0], parts[2]
		var err error
		month, year, err = splitCombinedExpiry(parts[1])
		if err != nil {
			return nil, err
		}
	case 4:
		number, month, year, cvv = parts[0], parts[1], parts[2], parts[3]
	default:
		return nil, newError(ErrInvalidCardFormat,
			"invalid card string format: expected NUMBER|MM|YYYY|CVV or NUMBER|MM/YY|CVV")
	}

	month, err := canonicalMonth(month)
	if err != nil {
		return nil, err
	}
	year, err = canonicalYear(year)
	if err != nil {
		return nil, err
	}

	if !isDigits(number) {
		return nil, newError(ErrInvalidCardNumber, "card number must contain only digits")
	}
	if !isDigits(cvv) {
		return nil, newError(ErrInvalidCVV, "CVV must contain only digits")
	}

	return &Card{number: number, month: month, year: year, cvv: cvv}, nil
}

// splitCombinedExpiry splits a combined MM/YY-style token on its internal
// separator. Only `/` and `-` are recognized.
func splitCombinedExpiry(token string) (month, year string, err error) {
	var sep string
	switch {
	case strings.Contains(token, "/"):
		sep = "/"
	case strings.Contains(token, "-"):
		sep = "-"
	default:
		return "", "", newError(ErrInvalidExpiryFormat, "invalid expiry date format: use MM/YY or MM/YYYY")
	}

	parts := strings.Split(token, sep)
	if len(parts) != 2 {
		return "", "", newError(ErrInvalidExpiryFormat, "invalid expiry date format: use MM/YY or MM/YYYY")
	}
	return parts[0], parts[1], nil
}

// canonicalMonth validates the month token and zero-pads it to two digits.
func canonicalMonth(month string) (string, error) {
	m, err := strconv.Atoi(month)
	if err != nil {
		return "", newError(ErrInvalidExpiryFormat, "invalid month %q: must be numeric", month)
	}
	if m < 1 || m > 12 {
		return "", newError(ErrInvalidExpiryFormat, "invalid month %q: must be 01-12", month)
	}
	return fmt.Sprintf("%02d", m), nil
}

// canonicalYear expands a 2-character year token to 2000+YY and keeps
// 4-character tokens as-is. Any other length is rejected.
func canonicalYear(year string) (string, error) {
	switch len(year) {
	case 2:
		return "20" + year, nil
	case 4:
		return year, nil
	default:
		return "", newError(ErrInvalidExpiryFormat, "invalid year %q: use YY or YYYY format", year)
	}
}

// isDigits reports whether s is non-empty and consists only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
