// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cardgen generates synthetic card numbers that pass the Luhn check,
// for test fixtures and demos. The numbers carry real issuer prefixes but
// are not connected to any account and must never be used in transactions.
package cardgen

import (
	"crypto/rand"
	"fmt"
	mathrand "math/rand"
	"sort"
	"strings"

	"cardparse/internal/issuer"
	"cardparse/internal/luhn"
)

// prefixes lists the IIN prefixes eligible for each issuer. generate picks
// one at random, fills with random digits, and appends the Luhn check digit.
var prefixes = map[issuer.Issuer][]string{
	issuer.Visa:       {"4"},
	issuer.MasterCard: {"51", "52", "53", "54", "55"},
	issuer.AMEX:       {"34", "37"},
	issuer.Discover:   {"6011", "644", "645", "646", "647", "648", "649", "65"},
	issuer.JCB:        {"3528", "3529", "353", "354", "355", "356", "357", "358"},
	issuer.DinersClub: {"300", "301", "302", "303", "304", "305", "36", "38"},
	issuer.UnionPay:   {"62"},
}

// lengths is the conventional total length generated per issuer.
var lengths = map[issuer.Issuer]int{
	issuer.Visa:       16,
	issuer.MasterCard: 16,
	issuer.AMEX:       15,
	issuer.Discover:   16,
	issuer.JCB:        16,
	issuer.DinersClub: 14,
	issuer.UnionPay:   16,
}

// Generate returns a Luhn-valid synthetic card number for the issuer, using
// crypto/rand for the digit fill. Unsupported issuers (including Unknown)
// yield an error naming the supported set.
func Generate(iss issuer.Issuer) (string, error) {
	opts, ok := prefixes[iss]
	if !ok {
		return "", fmt.Errorf("unsupported card type %q: supported types: %s",
			iss, strings.Join(Supported(), ", "))
	}

	idx, err := randomIndex(len(opts))
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	prefix := opts[idx]

	fill, err := randomDigits(lengths[iss] - 1 - len(prefix))
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}

	body := prefix + fill
	return body + fmt.Sprintf("%d", luhn.CheckDigit(body)), nil
}

// GenerateSeeded is Generate with a deterministic math/rand source, for
// reproducible fixtures.
func GenerateSeeded(iss issuer.Issuer, seed int64) (string, error) {
	opts, ok := prefixes[iss]
	if !ok {
		return "", fmt.Errorf("unsupported card type %q: supported types: %s",
			iss, strings.Join(Supported(), ", "))
	}

	r := mathrand.New(mathrand.NewSource(seed))
	prefix := opts[r.Intn(len(opts))]

	var sb strings.Builder
	sb.WriteString(prefix)
	for sb.Len() < lengths[iss]-1 {
		sb.WriteByte('0' + byte(r.Intn(10)))
	}

	body := sb.String()
	return body + fmt.Sprintf("%d", luhn.CheckDigit(body)), nil
}

// Supported returns the generatable card type names, sorted.
func Supported() []string {
	names := make([]string, 0, len(prefixes))
	for iss := range prefixes {
		names = append(names, iss.String())
	}
	sort.Strings(names)
	return names
}

// randomDigits produces count unbiased random digit characters. Bytes are
// rejection-sampled below 250 so the mod-10 reduction stays uniform.
func randomDigits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}

	const threshold = 250 // 256 - (256 % 10)
	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 32)

	for sb.Len() < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			if buf[i] < threshold {
				sb.WriteByte('0' + buf[i]%10)
			}
		}
	}
	return sb.String(), nil
}

// randomIndex picks an unbiased index in [0, n) from crypto/rand.
func randomIndex(n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}

	threshold := 256 - (256 % n)
	buf := make([]byte, 1)
	for {
		if _, err := rand.Read(buf); err != nil {
			return 0, err
		}
		if int(buf[0]) < threshold {
			return int(buf[0]) % n, nil
		}
	}
}
