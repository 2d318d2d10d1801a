// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"cardparse/internal/binlookup"
	"cardparse/internal/card"
	"cardparse/internal/config"
	"cardparse/internal/formatters"
	_ "cardparse/internal/formatters/json"
	_ "cardparse/internal/formatters/text"
	_ "cardparse/internal/formatters/yaml"
	"cardparse/internal/version"
)

// configFlags holds command line flag values
type configFlags struct {
	outputFormat string
	jsonOutput   bool
	masked       bool
	quiet        bool
	noColor      bool
	verbose      bool
	debug        bool
	lookup       bool
	configFile   string
	showVersion  bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format        string
	masked        bool
	quiet         bool
	noColor       bool
	verbose       bool
	debug         bool
	lookup        bool
	lookupURL     string
	lookupTimeout time.Duration
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := &configFlags{}

	flag.StringVar(&flags.outputFormat, "format", "", "Output format: text, json, or yaml")
	flag.BoolVar(&flags.jsonOutput, "json", false, "Shorthand for -format json")
	flag.BoolVar(&flags.masked, "masked", false, "Show masked card number instead of full number")
	flag.BoolVar(&flags.quiet, "quiet", false, "Only validate: exit 0 if valid, 1 otherwise, no output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.verbose, "verbose", false, "Show detailed information")
	flag.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&flags.lookup, "lookup", false, "Fetch issuer metadata for the card's BIN prefix")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.Usage = printUsage
	flag.Parse()

	if flags.showVersion {
		fmt.Println(version.Info())
		return 0
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one card string argument is required")
		printUsage()
		return 1
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)
	final := resolveConfiguration(cfg, flags)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if final.debug {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := card.Parse(flag.Arg(0))
	if err != nil {
		return reportParseError(err, final)
	}

	if final.quiet {
		if c.IsValid() {
			return 0
		}
		return 1
	}

	options := formatters.FormatterOptions{
		Masked:  final.masked,
		NoColor: final.noColor,
		Verbose: final.verbose,
	}

	if final.lookup {
		client := binlookup.NewClient(final.lookupURL, final.lookupTimeout, log)
		ctx, cancel := context.WithTimeout(context.Background(), final.lookupTimeout)
		defer cancel()

		details, _ := client.Lookup(ctx, c.Number())
		if details == nil {
			log.Debug("bin lookup returned no result")
		}
		options.BIN = details
	}

	out, err := formatters.Export(final.format, c, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(out)

	if c.IsValid() {
		return 0
	}
	return 1
}

// resolveConfiguration resolves final configuration values from the config
// file and command line flags; flags win when explicitly set.
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	final.format = "text"
	if cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}
	if flags.jsonOutput {
		final.format = "json"
	}

	final.masked = cfg.Defaults.Masked
	if isFlagSet("masked") {
		final.masked = flags.masked
	}

	final.quiet = cfg.Defaults.Quiet
	if isFlagSet("quiet") {
		final.quiet = flags.quiet
	}

	final.noColor = cfg.Defaults.NoColor
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}
	// Piped output gets no color regardless of settings.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		final.noColor = true
	}

	final.debug = cfg.Defaults.Debug
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	final.verbose = flags.verbose

	final.lookup = cfg.Lookup.Enabled
	if isFlagSet("lookup") {
		final.lookup = flags.lookup
	}
	final.lookupURL = cfg.Lookup.URL
	final.lookupTimeout = time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second
	if final.lookupTimeout <= 0 {
		final.lookupTimeout = binlookup.DefaultTimeout
	}

	return final
}

// reportParseError renders a construction failure in the selected output
// mode and always maps it to exit code 1.
func reportParseError(err error, final *finalConfiguration) int {
	if final.quiet {
		return 1
	}
	if final.format == "json" {
		data, merr := json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
		if merr == nil {
			fmt.Println(string(data))
			return 1
		}
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// isFlagSet reports whether the named flag appeared on the command line.
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: cardparse [options] "CARD_STRING"

Parse, validate, and format payment card strings.

Accepted card string forms:
  NUMBER|MM|YYYY|CVV     e.g. "4111111111111111|12|2030|123"
  NUMBER|MM/YY|CVV       e.g. "4111111111111111|12/30|123"
  with '|', ':' or space as field separators.

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Exit codes:
  0  card parsed and is valid (or parsed, in -quiet mode with a valid card)
  1  parse failure or validation failure
`)
}
