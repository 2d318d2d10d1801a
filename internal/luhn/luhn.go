// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package luhn implements the Luhn checksum used to validate payment card
// numbers. It is shared by the card validator and the test-number generator.
package luhn

// Valid reports whether a digit string passes the Luhn checksum.
// Starting from the rightmost digit, every second digit is doubled
// (subtracting 9 when the result exceeds 9) and the total must be a
// multiple of 10. Empty or non-digit input is invalid; the check never
// returns an error.
//
// Note: a string of all zeros sums to zero and therefore passes. That
// matches the algorithm definition and is intentionally not special-cased.
func Valid(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	isDouble := false

	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')

		if isDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isDouble = !isDouble
	}

	return sum%10 == 0
}

// CheckDigit returns the digit that, appended to the given partial number,
// makes the whole string pass Valid. The input must be digits only;
// CheckDigit returns -1 otherwise.
func CheckDigit(partial string) int {
	sum := 0
	isDouble := true // appended check digit occupies the undoubled position

	for i := len(partial) - 1; i >= 0; i-- {
		c := partial[i]
		if c < '0' || c > '9' {
			return -1
		}
		digit := int(c - '0')

		if isDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isDouble = !isDouble
	}

	return (10 - sum%10) % 10
}
