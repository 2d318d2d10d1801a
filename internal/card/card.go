// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package card parses delimited payment-card strings into validated,
// immutable records and exposes display and validity queries over them.
package card

import (
	"fmt"

	"cardparse/internal/format"
	"cardparse/internal/issuer"
)

// Card is an immutable payment-card record produced by Parse. The expiry
// month is always two digits and the year four; the number and CVV are
// digit strings. All queries are derived from these four fields, so a Card
// is safe to share between goroutines.
type Card struct {
	number string
	month  string
	year   string
	cvv    string
}

// Number returns the raw card number, digits only.
func (c *Card) Number() string {
	return c.number
}

// FormattedNumber returns the number grouped for display,
// e.g. "4111 1111 1111 1111".
func (c *Card) FormattedNumber() string {
	return format.Number(c.number)
}

// MaskedNumber returns the number masked down to the last four digits,
// e.g. "**** **** **** 1111".
func (c *Card) MaskedNumber() string {
	return format.Mask(c.number)
}

// Month returns the 2-digit expiry month.
func (c *Card) Month() string {
	return c.month
}

// Year returns the 4-digit expiry year.
func (c *Card) Year() string {
	return c.year
}

// CVV returns the CVV code.
func (c *Card) CVV() string {
	return c.cvv
}

// Expiry returns the expiry in MM/YY form.
func (c *Card) Expiry() string {
	return c.month + "/" + c.year[2:]
}

// ExpiryFull returns the expiry in MM/YYYY form.
func (c *Card) ExpiryFull() string {
	return c.month + "/" + c.year
}

// Issuer classifies the card number into its issuing network. The result is
// recomputed on each call; the number never changes, so callers may cache it
// freely.
func (c *Card) Issuer() issuer.Issuer {
	return issuer.Detect(c.number)
}

// Details returns the canonical key-value view of the record. The key set
// is a fixed contract consumed verbatim by the CLI and output formatters.
func (c *Card) Details() map[string]any {
	return map[string]any{
		"number":           c.number,
		"formatted_number": c.FormattedNumber(),
		"masked_number":    c.MaskedNumber(),
		"expiry":           c.Expiry(),
		"expiry_month":     c.month,
		"expiry_year":      c.year,
		"cvv":              c.cvv,
		"card_type":        c.Issuer().String(),
		"is_valid":         c.IsValid(),
	}
}

// String renders a safe one-line summary with the number masked.
func (c *Card) String() string {
	return fmt.Sprintf("%s %s (exp: %s)", c.Issuer(), c.MaskedNumber(), c.Expiry())
}
