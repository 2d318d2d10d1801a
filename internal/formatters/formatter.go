// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders a parsed card record in the supported output
// formats. Concrete formatters live in subpackages and register themselves
// with the default registry during init.
package formatters

import (
	"fmt"
	"sort"
	"strings"

	"cardparse/internal/binlookup"
	"cardparse/internal/card"
)

// FormatterOptions defines configuration options for formatters.
type FormatterOptions struct {
	Masked  bool // Whether to replace the full number with its masked form
	NoColor bool // Whether to disable colored output
	Verbose bool // Whether to display detailed information

	// BIN is optional issuer metadata to include when available.
	BIN *binlookup.Details
}

// Formatter is implemented by every output format.
type Formatter interface {
	// Format renders the card record according to the formatter's output format.
	Format(c *card.Card, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Record is the serialized view of a card shared by the structured
// formatters. Its key set is the fixed external contract.
type Record struct {
	Number          string             `json:"number" yaml:"number"`
	FormattedNumber string             `json:"formatted_number" yaml:"formatted_number"`
	MaskedNumber    string             `json:"masked_number" yaml:"masked_number"`
	Expiry          string             `json:"expiry" yaml:"expiry"`
	ExpiryMonth     string             `json:"expiry_month" yaml:"expiry_month"`
	ExpiryYear      string             `json:"expiry_year" yaml:"expiry_year"`
	CVV             string             `json:"cvv" yaml:"cvv"`
	CardType        string             `json:"card_type" yaml:"card_type"`
	IsValid         bool               `json:"is_valid" yaml:"is_valid"`
	BIN             *binlookup.Details `json:"bin_details,omitempty" yaml:"bin_details,omitempty"`
}

// BuildRecord converts a card into its serialized view. With masked set,
// the number field carries the masked rendering instead of the raw digits.
func BuildRecord(c *card.Card, options FormatterOptions) Record {
	r := Record{
		Number:          c.Number(),
		FormattedNumber: c.FormattedNumber(),
		MaskedNumber:    c.MaskedNumber(),
		Expiry:          c.Expiry(),
		ExpiryMonth:     c.Month(),
		ExpiryYear:      c.Year(),
		CVV:             c.CVV(),
		CardType:        c.Issuer().String(),
		IsValid:         c.IsValid(),
		BIN:             options.BIN,
	}
	if options.Masked {
		r.Number = r.MaskedNumber
	}
	return r
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted.
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns all formatter names in the default registry.
func List() []string {
	return DefaultRegistry.List()
}

// Export renders the card with the named formatter from the default
// registry.
func Export(format string, c *card.Card, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(List(), ", "))
	}
	return formatter.Format(c, options)
}
