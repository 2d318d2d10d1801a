// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"cardparse/internal/binlookup"
	"cardparse/internal/card"
	"cardparse/internal/formatters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_PlainOutput(t *testing.T) {
	c, err := card.Parse("4111111111111111|12|2030|123")
	require.NoError(t, err)

	out, err := NewFormatter().Format(c, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "Card Number: 4111 1111 1111 1111")
	assert.Contains(t, out, "Expiry Date: 12/30")
	assert.Contains(t, out, "CVV: 123")
	assert.Contains(t, out, "Card Type: Visa")
	assert.Contains(t, out, "Valid:")
}

func TestFormat_MaskedOutput(t *testing.T) {
	c, err := card.Parse("4111111111111111|12|2030|123")
	require.NoError(t, err)

	out, err := NewFormatter().Format(c, formatters.FormatterOptions{NoColor: true, Masked: true})
	require.NoError(t, err)

	assert.Contains(t, out, "**** **** **** 1111")
	assert.False(t, strings.Contains(out, "4111 1111 1111 1111"),
		"masked output must not contain the formatted full number")
}

func TestFormat_BINDetailsBlock(t *testing.T) {
	c, err := card.Parse("4111111111111111|12|2030|123")
	require.NoError(t, err)

	out, err := NewFormatter().Format(c, formatters.FormatterOptions{
		NoColor: true,
		BIN: &binlookup.Details{
			Bank:    "Test Bank",
			Scheme:  "visa",
			Country: "United States",
			Kind:    "Credit",
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "BIN Details:")
	assert.Contains(t, out, "Test Bank")
	assert.Contains(t, out, "visa")
}

func TestFormatterRegistered(t *testing.T) {
	f, ok := formatters.Get("text")
	require.True(t, ok)
	assert.Equal(t, ".txt", f.FileExtension())
}
