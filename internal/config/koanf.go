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

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"praedictus.yaml",
	"/etc/praedictus/config.yaml",
}

// ConfigPathEnvVar is the environment variable that overrides the config
// file path.
const ConfigPathEnvVar = "PRAEDICTUS_CONFIG"

// overlay is the shape of the optional YAML config file and of the
// PRAEDICTUS_* environment variables. Only option-backed settings appear
// here: the positional paths (model, old, test) are part of the
// invocation contract and are never sourced from a file or the
// environment. The input format appears by its symbolic name, exactly as
// it would on the command line.
type overlay struct {
	InputFormat         string `koanf:"input_format"`
	Binarize            bool   `koanf:"binarize"`
	OutputFile          string `koanf:"output_file"`
	RecommendationCount int    `koanf:"recommendation_count"`
	DebugLevel          int    `koanf:"debug_level"`
}

// Load builds the draft configuration from layered sources using Koanf v2:
//
//  1. Built-in defaults (Default)
//  2. Optional YAML config file (see DefaultConfigPaths, ConfigPathEnvVar)
//  3. PRAEDICTUS_* environment variables
//
// Later layers win. With no config file and no PRAEDICTUS_* variables set,
// the result is exactly Default(). Overlay values pass through the same
// handlers as command-line values, so an invalid format name or a negative
// count fails with the same diagnostic no matter where it was written.
func Load() (*Config, error) {
	cfg := Default()
	ov := &overlay{
		InputFormat:         cfg.InputFormat.String(),
		Binarize:            cfg.Binarize,
		OutputFile:          cfg.OutputFile,
		RecommendationCount: cfg.RecommendationCount,
		DebugLevel:          cfg.DebugLevel,
	}

	k := koanf.New(".")

	// Layer 1: defaults from the overlay struct.
	if err := k.Load(structs.Provider(ov, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file.
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables (highest overlay priority).
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := k.Unmarshal("", ov); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg.applyOverlay(ov)
}

// applyOverlay folds the layered overlay values into the draft through
// the same per-option handlers the argument scan uses.
func (c *Config) applyOverlay(ov *overlay) (*Config, error) {
	if err := c.setInputFormat(ov.InputFormat); err != nil {
		return nil, err
	}
	c.Binarize = ov.Binarize
	c.OutputFile = ov.OutputFile

	if ov.RecommendationCount < 0 {
		return nil, &ArgumentError{
			Option:  "nrcmds",
			Value:   strconv.Itoa(ov.RecommendationCount),
			Message: "The -nrcmds parameter should be non-negative.",
		}
	}
	c.RecommendationCount = ov.RecommendationCount

	if ov.DebugLevel < 0 {
		return nil, &ArgumentError{
			Option:  "dbglvl",
			Value:   strconv.Itoa(ov.DebugLevel),
			Message: "The -dbglvl parameter should be non-negative.",
		}
	}
	c.DebugLevel = ov.DebugLevel

	return c, nil
}

// findConfigFile searches for a config file: the ConfigPathEnvVar
// override first, then the default paths. Returns the first existing
// path, or empty string when there is none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransform maps PRAEDICTUS_* environment variable names to overlay
// keys. The variable names mirror the command-line option names.
// Unmapped variables return empty string and are skipped, so unrelated
// environment content never reaches the configuration.
func envTransform(key string) string {
	switch strings.ToLower(key) {
	case "praedictus_ifmt":
		return "input_format"
	case "praedictus_binarize":
		return "binarize"
	case "praedictus_outfile":
		return "output_file"
	case "praedictus_nrcmds":
		return "recommendation_count"
	case "praedictus_dbglvl":
		return "debug_level"
	}
	return ""
}
