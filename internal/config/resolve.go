// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Resolve turns a command-line argument vector into a resolved Config.
// The draft starts from the layered defaults (built-ins, then an optional
// config file, then PRAEDICTUS_* environment variables) and the argument
// vector is applied on top, so explicit arguments always win.
//
// Resolve never terminates the process. It returns either a fully
// validated configuration, a *UsageError when resolution short-circuited
// into usage text, or an *ArgumentError carrying the diagnostic for an
// invalid value or missing file.
func Resolve(args []string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	return resolveArgs(cfg, args)
}

// resolveArgs applies the argument vector on top of a draft configuration:
// one left-to-right scan of option tokens, then the positional contract,
// then the final invariant gate. The draft is mutated in place and
// returned once final.
func resolveArgs(cfg *Config, args []string) (*Config, error) {
	rest, err := scanOptions(cfg, args)
	if err != nil {
		return nil, err
	}

	// Exactly two or three positionals: model file, old file, optional
	// test file. Anything else is a usage reminder, not a failure, and
	// no existence checks are attempted.
	if len(rest) < 2 || len(rest) > 3 {
		return nil, shortUsageError()
	}

	cfg.ModelFile = rest[0]
	if !fileExists(cfg.ModelFile) {
		return nil, &ArgumentError{
			Option:  "model-file",
			Value:   cfg.ModelFile,
			Message: fmt.Sprintf("Input model file %s does not exist.", cfg.ModelFile),
		}
	}

	cfg.TrainingFile = rest[1]
	if !fileExists(cfg.TrainingFile) {
		return nil, &ArgumentError{
			Option:  "old-file",
			Value:   cfg.TrainingFile,
			Message: fmt.Sprintf("Input old file %s does not exist.", cfg.TrainingFile),
		}
	}

	if len(rest) == 3 {
		cfg.TestFile = rest[2]
		if !fileExists(cfg.TestFile) {
			return nil, &ArgumentError{
				Option:  "test-file",
				Value:   cfg.TestFile,
				Message: fmt.Sprintf("Input test file %s does not exist.", cfg.TestFile),
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// scanOptions consumes option tokens from the front of args, applying
// each recognized option to cfg, and returns the remaining positional
// tokens. Scanning stops at the first token that is not option-like;
// "--" ends option scanning explicitly; a lone "-" is positional.
func scanOptions(cfg *Config, args []string) ([]string, error) {
	i := 0
	for i < len(args) {
		tok := args[i]
		if tok == "--" {
			i++
			break
		}
		if len(tok) < 2 || tok[0] != '-' {
			break
		}

		// One or two leading dashes, optional "=value" attached.
		name := strings.TrimPrefix(tok[1:], "-")
		name, attached, hasAttached := strings.Cut(name, "=")

		opt, ok := matchOption(name)
		if !ok {
			return nil, helpError()
		}

		var value string
		switch {
		case opt.hasValue && hasAttached:
			value = attached
		case opt.hasValue:
			i++
			if i == len(args) {
				// Value-taking option with nothing left to consume.
				return nil, helpError()
			}
			value = args[i]
		case hasAttached:
			// Flag option with an attached value.
			return nil, helpError()
		}

		if err := applyOption(cfg, opt.code, value); err != nil {
			return nil, err
		}
		i++
	}
	return args[i:], nil
}

// applyOption runs the per-option handler for a matched option.
func applyOption(cfg *Config, code optionCode, value string) error {
	switch code {
	case optIfmt:
		return cfg.setInputFormat(value)
	case optBinarize:
		cfg.Binarize = true
	case optOutfile:
		cfg.OutputFile = value
	case optNrcmds:
		n, err := parseCount("nrcmds", value)
		if err != nil {
			return err
		}
		cfg.RecommendationCount = n
	case optDbglvl:
		n, err := parseCount("dbglvl", value)
		if err != nil {
			return err
		}
		cfg.DebugLevel = n
	case optHelp:
		return helpError()
	}
	return nil
}

// parseCount parses a numeric option value. A value that is not an
// integer is rejected with its own diagnostic; a negative integer gets
// the dedicated non-negative diagnostic.
func parseCount(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ArgumentError{
			Option:  name,
			Value:   value,
			Message: fmt.Sprintf("The -%s parameter is not an integer.", name),
		}
	}
	if n < 0 {
		return 0, &ArgumentError{
			Option:  name,
			Value:   value,
			Message: fmt.Sprintf("The -%s parameter should be non-negative.", name),
		}
	}
	return n, nil
}

// fileExists reports whether path names an existing filesystem entry.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
