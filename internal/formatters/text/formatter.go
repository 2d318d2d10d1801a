// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"cardparse/internal/card"
	"cardparse/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements human-readable text output.
type Formatter struct {
	label *color.Color
	good  *color.Color
	bad   *color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		label: color.New(color.FgCyan),
		good:  color.New(color.FgGreen),
		bad:   color.New(color.FgRed),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(c *card.Card, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder

	number := c.FormattedNumber()
	if options.Masked {
		number = c.MaskedNumber()
	}

	fmt.Fprintf(&sb, "%s %s\n", f.label.Sprint("Card Number:"), number)
	fmt.Fprintf(&sb, "%s %s\n", f.label.Sprint("Expiry Date:"), c.Expiry())
	fmt.Fprintf(&sb, "%s %s\n", f.label.Sprint("CVV:"), c.CVV())
	fmt.Fprintf(&sb, "%s %s\n", f.label.Sprint("Card Type:"), c.Issuer())

	valid := c.IsValid()
	validColor := f.bad
	if valid {
		validColor = f.good
	}
	fmt.Fprintf(&sb, "%s %s\n", f.label.Sprint("Valid:"), validColor.Sprintf("%t", valid))

	if options.Verbose {
		fmt.Fprintf(&sb, "%s %s\n", f.label.Sprint("Expiry (full):"), c.ExpiryFull())
		fmt.Fprintf(&sb, "%s %s\n", f.label.Sprint("Masked Number:"), c.MaskedNumber())
	}

	if options.BIN != nil {
		bin := options.BIN
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "%s\n", f.label.Sprint("BIN Details:"))
		fmt.Fprintf(&sb, "  Bank:     %s\n", bin.Bank)
		fmt.Fprintf(&sb, "  Product:  %s\n", bin.Name)
		fmt.Fprintf(&sb, "  Scheme:   %s\n", bin.Scheme)
		fmt.Fprintf(&sb, "  Brand:    %s\n", bin.Brand)
		fmt.Fprintf(&sb, "  Country:  %s %s\n", bin.Country, bin.CountryEmoji)
		fmt.Fprintf(&sb, "  Currency: %s\n", bin.Currency)
		fmt.Fprintf(&sb, "  Type:     %s (%s)\n", bin.Type, bin.Kind)
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
