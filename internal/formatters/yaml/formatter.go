// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"

	"cardparse/internal/card"
	"cardparse/internal/formatters"

	yamlv3 "gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting.
type Formatter struct{}

// NewFormatter creates a new YAML formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration-friendly consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(c *card.Card, options formatters.FormatterOptions) (string, error) {
	record := formatters.BuildRecord(c, options)

	data, err := yamlv3.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}

	return strings.TrimRight(string(data), "\n"), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
