// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cardgen

import (
	"testing"

	"cardparse/internal/issuer"
	"cardparse/internal/luhn"
)

func TestGenerate_AllIssuers(t *testing.T) {
	wantLengths := map[issuer.Issuer]int{
		issuer.Visa:       16,
		issuer.MasterCard: 16,
		issuer.AMEX:       15,
		issuer.Discover:   16,
		issuer.JCB:        16,
		issuer.DinersClub: 14,
		issuer.UnionPay:   16,
	}

	for iss, wantLen := range wantLengths {
		for i := 0; i < 20; i++ {
			number, err := Generate(iss)
			if err != nil {
				t.Fatalf("Generate(%s) error: %v", iss, err)
			}
			if len(number) != wantLen {
				t.Fatalf("Generate(%s) = %q, want length %d", iss, number, wantLen)
			}
			if !luhn.Valid(number) {
				t.Fatalf("Generate(%s) = %q, fails Luhn", iss, number)
			}
			if got := issuer.Detect(number); got != iss {
				t.Fatalf("Generate(%s) = %q, classified as %s", iss, number, got)
			}
		}
	}
}

func TestGenerate_UnsupportedIssuer(t *testing.T) {
	if _, err := Generate(issuer.Unknown); err == nil {
		t.Error("expected error for Unknown issuer")
	}
	if _, err := Generate(issuer.Issuer("Maestro")); err == nil {
		t.Error("expected error for unrecognized issuer name")
	}
}

func TestGenerateSeeded_Reproducible(t *testing.T) {
	a, err := GenerateSeeded(issuer.Visa, 42)
	if err != nil {
		t.Fatalf("GenerateSeeded error: %v", err)
	}
	b, err := GenerateSeeded(issuer.Visa, 42)
	if err != nil {
		t.Fatalf("GenerateSeeded error: %v", err)
	}
	if a != b {
		t.Errorf("same seed produced different numbers: %q vs %q", a, b)
	}

	c, err := GenerateSeeded(issuer.Visa, 43)
	if err != nil {
		t.Fatalf("GenerateSeeded error: %v", err)
	}
	if a == c {
		t.Error("different seeds produced the same number")
	}

	if !luhn.Valid(a) {
		t.Errorf("seeded number %q fails Luhn", a)
	}
}

func TestSupported(t *testing.T) {
	names := Supported()
	if len(names) != 7 {
		t.Fatalf("Supported() returned %d types, want 7", len(names))
	}
	// Sorted output is part of the error-message contract.
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Supported() not sorted: %v", names)
		}
	}
}
