// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FourFieldForm(t *testing.T) {
	c, err := Parse("4111111111111111|12|2030|123")
	require.NoError(t, err)

	assert.Equal(t, "4111111111111111", c.Number())
	assert.Equal(t, "12", c.Month())
	assert.Equal(t, "2030", c.Year())
	assert.Equal(t, "123", c.CVV())
}

func TestParse_CombinedExpiryForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		month string
		year  string
	}{
		{"slash with 2-digit year", "4111111111111111|12/30|123", "12", "2030"},
		{"slash with 4-digit year", "4111111111111111|12/2030|123", "12", "2030"},
		{"dash separator", "4111111111111111|12-30|123", "12", "2030"},
		{"dash with 4-digit year", "4111111111111111|12-2030|123", "12", "2030"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.month, c.Month())
			assert.Equal(t, tt.year, c.Year())
		})
	}
}

func TestParse_DelimiterVariants(t *testing.T) {
	inputs := []string{
		"4111111111111111|12|2030|123",
		"4111111111111111:12:2030:123",
		"4111111111111111 12 2030 123",
		"4111111111111111 | 12 | 2030 | 123",
		"4111111111111111||12||2030||123",
		"  4111111111111111|12|2030|123  ",
	}

	for _, input := range inputs {
		c, err := Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "4111111111111111", c.Number())
		assert.Equal(t, "123", c.CVV())
	}
}

func TestParse_MonthCanonicalization(t *testing.T) {
	c, err := Parse("4111111111111111|1|2030|123")
	require.NoError(t, err)
	assert.Equal(t, "01", c.Month())

	c, err = Parse("4111111111111111|09|2030|123")
	require.NoError(t, err)
	assert.Equal(t, "09", c.Month())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"empty string", "", ErrEmptyInput},
		{"whitespace only", "   ", ErrEmptyInput},
		{"too few fields", "4111111111111111|12", ErrInvalidCardFormat},
		{"too many fields", "4111111111111111|12|2030|123|extra", ErrInvalidCardFormat},
		{"combined expiry without separator", "4111111111111111|1230|123", ErrInvalidExpiryFormat},
		{"combined expiry with too many parts", "4111111111111111|12/20/30|123", ErrInvalidExpiryFormat},
		{"month out of range high", "4111111111111111|13|2030|123", ErrInvalidExpiryFormat},
		{"month out of range low", "4111111111111111|0|2030|123", ErrInvalidExpiryFormat},
		{"month not numeric", "4111111111111111|ab|2030|123", ErrInvalidExpiryFormat},
		{"year wrong length", "4111111111111111|12|203|123", ErrInvalidExpiryFormat},
		{"number with letters", "411111111111111x|12|2030|123", ErrInvalidCardNumber},
		{"cvv with letters", "4111111111111111|12|2030|12x", ErrInvalidCVV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, c)

			var cardErr *Error
			require.True(t, errors.As(err, &cardErr), "expected *card.Error, got %T", err)
			assert.Equal(t, tt.kind, cardErr.Kind)
		})
	}
}

func TestParse_NumberKeepsEmbeddedFormattingOut(t *testing.T) {
	// Separators inside the number field are not stripped at tokenization
	// time; a dashed number splits the combined-expiry detection instead.
	_, err := Parse("4111-1111-1111-1111|12|2030|123")
	require.Error(t, err)
}

func TestErrorIs_MatchesByKind(t *testing.T) {
	_, err := Parse("")
	assert.True(t, errors.Is(err, &Error{Kind: ErrEmptyInput}))
	assert.False(t, errors.Is(err, &Error{Kind: ErrInvalidCVV}))
}
