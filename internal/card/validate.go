// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

import (
	"strconv"
	"time"

	"cardparse/internal/issuer"
	"cardparse/internal/luhn"
)

// How far outside the current year an expiry year may fall before it is
// rejected outright, independent of the month comparison.
const (
	maxYearsPast   = 10
	maxYearsFuture = 20
)

// ValidNumber reports whether the card number passes the Luhn checksum.
// Empty or non-digit input is invalid, never an error.
func ValidNumber(number string) bool {
	return luhn.Valid(number)
}

// ValidExpiry reports whether the month/year pair is a well-formed expiry
// that has not passed as of now. The card stays valid through the last
// calendar day of its expiry month; the comparison ignores time of day.
// Years below 100 are taken as 2000+YY. Years more than maxYearsPast behind
// or maxYearsFuture ahead of now are rejected. Malformed input yields false.
//
// The current date is an explicit parameter so the check stays deterministic
// under test; production callers pass time.Now().
func ValidExpiry(month, year string, now time.Time) bool {
	m, err := strconv.Atoi(month)
	if err != nil {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}

	if y < 100 {
		y += 2000
	}
	if m < 1 || m > 12 {
		return false
	}
	if y < now.Year()-maxYearsPast || y > now.Year()+maxYearsFuture {
		return false
	}

	// Day 0 of the following month normalizes to the last day of the expiry
	// month, which also covers December and leap-year February.
	lastDay := time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return !lastDay.Before(today)
}

// ValidCVV reports whether the CVV has the right length for the issuer of
// the associated card number: 4 digits for AMEX, 3 for everything else.
// Empty or non-digit input is invalid.
func ValidCVV(cvv, number string) bool {
	if !isDigits(cvv) {
		return false
	}
	return len(cvv) == issuer.Detect(number).CVVLength()
}

// IsValid reports whether the record passes all three field checks: Luhn on
// the number, expiry not in the past, and issuer-appropriate CVV length.
// It never returns an error; use Validate for diagnostics.
func (c *Card) IsValid() bool {
	return c.IsValidAt(time.Now())
}

// IsValidAt is IsValid evaluated against an explicit current date.
func (c *Card) IsValidAt(now time.Time) bool {
	return ValidNumber(c.number) &&
		ValidExpiry(c.month, c.year, now) &&
		ValidCVV(c.cvv, c.number)
}

// Validate checks the same three fields as IsValid but returns the typed
// error of the first failing check, in the fixed order number, expiry, CVV.
func (c *Card) Validate() error {
	return c.ValidateAt(time.Now())
}

// ValidateAt is Validate evaluated against an explicit current date.
func (c *Card) ValidateAt(now time.Time) error {
	if !ValidNumber(c.number) {
		return newError(ErrInvalidCardNumber, "card number failed Luhn validation")
	}
	if !ValidExpiry(c.month, c.year, now) {
		return newError(ErrInvalidExpiryFormat, "card has expired or expiry date is invalid")
	}
	if !ValidCVV(c.cvv, c.number) {
		return newError(ErrInvalidCVV, "invalid CVV length: expected %d digits for %s",
			c.Issuer().CVVLength(), c.Issuer())
	}
	return nil
}
