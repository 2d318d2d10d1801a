// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package issuer classifies payment card numbers into their issuing network
// based on numeric prefix and length conventions.
package issuer

import (
	"regexp"
	"strings"
)

// Issuer identifies a payment card network.
type Issuer string

// The closed set of recognized issuers.
const (
	Visa       Issuer = "Visa"
	MasterCard Issuer = "MasterCard"
	AMEX       Issuer = "AMEX"
	Discover   Issuer = "Discover"
	JCB        Issuer = "JCB"
	DinersClub Issuer = "Diners Club"
	UnionPay   Issuer = "UnionPay"
	Unknown    Issuer = "Unknown"
)

// rule pairs an issuer with the anchored pattern its numbers must match.
// Rules are evaluated in order and the first match wins, so the slice order
// is part of the classification contract.
type rule struct {
	issuer  Issuer
	pattern *regexp.Regexp
}

var rules = []rule{
	// Visa: starts with 4, length 13 or 16. The 13-digit variant is a legacy
	// format that real issuers still produce; it is kept on purpose.
	{Visa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	// MasterCard: 51-55, length 16.
	{MasterCard, regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
	// American Express: 34 or 37, length 15.
	{AMEX, regexp.MustCompile(`^3[47][0-9]{13}$`)},
	// Discover: 6011, 644-649 or 65, length 16.
	{Discover, regexp.MustCompile(`^6(?:011|4[4-9][0-9]|5[0-9]{2})[0-9]{12}$`)},
	// JCB: 2131, 1800 or 35xxx, length 16.
	{JCB, regexp.MustCompile(`^(?:2131|1800|35[0-9]{3})[0-9]{11}$`)},
	// Diners Club: 300-305, 36 or 38, length 14.
	{DinersClub, regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`)},
	// UnionPay: 62, length 16-19.
	{UnionPay, regexp.MustCompile(`^62[0-9]{14,17}$`)},
}

// Detect returns the issuer for a card number, or Unknown when no pattern
// matches. Non-digit characters (spaces, dashes, other formatting) are
// stripped before matching, so formatted input is accepted. Detect is a pure
// function and never fails.
func Detect(number string) Issuer {
	n := digitsOnly(number)
	if n == "" {
		return Unknown
	}

	for _, r := range rules {
		if r.pattern.MatchString(n) {
			return r.issuer
		}
	}

	return Unknown
}

// CVVLength returns the CVV length convention for the issuer: 4 digits for
// American Express, 3 for everything else including Unknown.
func (i Issuer) CVVLength() int {
	if i == AMEX {
		return 4
	}
	return 3
}

// String returns the display name of the issuer.
func (i Issuer) String() string {
	return string(i)
}

// All returns the recognized issuers in classification priority order,
// excluding Unknown.
func All() []Issuer {
	all := make([]Issuer, 0, len(rules))
	for _, r := range rules {
		all = append(all, r.issuer)
	}
	return all
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
