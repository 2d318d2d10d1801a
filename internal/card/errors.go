// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

import "fmt"

// ErrorKind distinguishes the categories of card parsing and validation
// failures. Every kind is a user-input problem, never a system fault.
type ErrorKind string

const (
	// ErrEmptyInput reports a missing or blank card string.
	ErrEmptyInput ErrorKind = "empty_input"
	// ErrInvalidCardFormat reports a delimiter split that yields neither 3
	// nor 4 fields.
	ErrInvalidCardFormat ErrorKind = "invalid_card_format"
	// ErrInvalidExpiryFormat reports a malformed or out-of-range expiry.
	ErrInvalidExpiryFormat ErrorKind = "invalid_expiry_format"
	// ErrInvalidCardNumber reports a card number with non-digit characters
	// or one that fails the Luhn check.
	ErrInvalidCardNumber ErrorKind = "invalid_card_number"
	// ErrInvalidCVV reports a CVV with non-digit characters or the wrong
	// length for the card's issuer.
	ErrInvalidCVV ErrorKind = "invalid_cvv"
)

// Error is the typed error returned by Parse and Validate. Callers can
// dispatch on Kind or use errors.As to recover it from a wrapped chain.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match two card errors by kind regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
