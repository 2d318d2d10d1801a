// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package binlookup resolves issuer metadata for a card number prefix via
// the public binlist.net API. It is an optional collaborator: core parsing
// and validation never depend on it, and every lookup failure degrades to
// a "no result" answer instead of an error.
package binlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public BIN database endpoint.
const DefaultBaseURL = "https://lookup.binlist.net"

// DefaultTimeout bounds a lookup when the caller's context carries no
// earlier deadline.
const DefaultTimeout = 10 * time.Second

// binLength is how many leading digits identify the issuing institution.
const binLength = 6

// Details is the issuer metadata returned for a BIN prefix.
type Details struct {
	Bank         string `json:"bank"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Country      string `json:"country"`
	CountryEmoji string `json:"emoji"`
	Scheme       string `json:"scheme"`
	Type         string `json:"type"`
	Currency     string `json:"currency"`
	Kind         string `json:"bin"` // "Credit" or "Debit"
}

// Client is the lookup capability consumed by callers that want issuer
// metadata. A nil *Details with a nil error means "no result".
type Client interface {
	Lookup(ctx context.Context, number string) (*Details, error)
}

// HTTPClient implements Client against a binlist-compatible HTTP endpoint.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewClient builds an HTTPClient. An empty baseURL selects DefaultBaseURL,
// a zero timeout selects DefaultTimeout, and a nil logger discards debug
// output.
func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// binListResponse mirrors the wire shape of a binlist.net answer.
type binListResponse struct {
	Name   string `json:"name"`
	Scheme string `json:"scheme"`
	Type   string `json:"type"`
	Brand  string `json:"brand"`
	Bank   *struct {
		Name string `json:"name"`
	} `json:"bank"`
	Country *struct {
		Name     string `json:"name"`
		Emoji    string `json:"emoji"`
		Currency string `json:"currency"`
	} `json:"country"`
}

// Lookup fetches issuer metadata for the card number's leading BIN digits.
// Non-digit characters in the number are ignored. A number shorter than six
// digits, a BIN the service does not know (404), rate limiting (429), any
// other non-200 status, a network or timeout failure, and a malformed body
// all return (nil, nil): the lookup is unavailable, not broken.
func (c *HTTPClient) Lookup(ctx context.Context, number string) (*Details, error) {
	clean := digitsOnly(number)
	if len(clean) < binLength {
		return nil, nil
	}
	bin := clean[:binLength]

	url := fmt.Sprintf("%s/%s", c.baseURL, bin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Debugf("bin lookup: building request failed: %v", err)
		return nil, nil
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cardparse/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debugf("bin lookup: request for %s failed: %v", bin, err)
		return nil, nil
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		c.log.Debugf("bin lookup: %s not in database", bin)
		return nil, nil
	case http.StatusTooManyRequests:
		c.log.Debug("bin lookup: rate limited")
		return nil, nil
	default:
		c.log.Debugf("bin lookup: unexpected status %d for %s", resp.StatusCode, bin)
		return nil, nil
	}

	var body binListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Debugf("bin lookup: decoding response for %s failed: %v", bin, err)
		return nil, nil
	}

	return body.toDetails(), nil
}

func (r *binListResponse) toDetails() *Details {
	d := &Details{
		Name:     orUnknown(r.Name),
		Brand:    orUnknown(r.Brand),
		Scheme:   orUnknown(r.Scheme),
		Type:     orUnknown(r.Type),
		Bank:     "Unknown",
		Country:  "Unknown",
		Currency: "Unknown",
		Kind:     "Debit",
	}
	if r.Bank != nil {
		d.Bank = orUnknown(r.Bank.Name)
	}
	if r.Country != nil {
		d.Country = orUnknown(r.Country.Name)
		d.CountryEmoji = r.Country.Emoji
		d.Currency = orUnknown(r.Country.Currency)
	}
	if r.Type == "credit" {
		d.Kind = "Credit"
	}
	return d
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
