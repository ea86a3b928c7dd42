// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// praedictusEnvVars is every environment variable the loader reads.
var praedictusEnvVars = []string{
	"PRAEDICTUS_IFMT",
	"PRAEDICTUS_BINARIZE",
	"PRAEDICTUS_OUTFILE",
	"PRAEDICTUS_NRCMDS",
	"PRAEDICTUS_DBGLVL",
	ConfigPathEnvVar,
}

// clearPraedictusEnv removes all loader environment variables so a test
// starts from the built-in defaults.
func clearPraedictusEnv(t *testing.T) {
	t.Helper()
	for _, key := range praedictusEnvVars {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
}

// setPraedictusEnv clears the loader environment and applies the given
// overrides for the duration of the test.
func setPraedictusEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	clearPraedictusEnv(t)
	for k, v := range vars {
		if err := os.Setenv(k, v); err != nil {
			t.Fatalf("Failed to set %s: %v", k, err)
		}
		t.Cleanup(func() { os.Unsetenv(k) })
	}
}

// chdirTemp moves the test into a fresh temporary directory so relative
// config paths resolve against a known-empty location.
func chdirTemp(t *testing.T) string {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

// writeConfigFile writes YAML content to name inside dir.
func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// TestEnvTransform verifies the environment-to-key mapping and that
// unrelated variables are dropped.
func TestEnvTransform(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "PRAEDICTUS_IFMT", want: "input_format"},
		{key: "PRAEDICTUS_BINARIZE", want: "binarize"},
		{key: "PRAEDICTUS_OUTFILE", want: "output_file"},
		{key: "PRAEDICTUS_NRCMDS", want: "recommendation_count"},
		{key: "PRAEDICTUS_DBGLVL", want: "debug_level"},
		{key: "praedictus_ifmt", want: "input_format"},
		{key: "PRAEDICTUS_CONFIG", want: ""},
		{key: "PATH", want: ""},
		{key: "HOME", want: ""},
	}

	for _, tt := range tests {
		if got := envTransform(tt.key); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// TestFindConfigFile covers the search order: explicit override first,
// then the default paths, then nothing.
func TestFindConfigFile(t *testing.T) {
	t.Run("no file anywhere", func(t *testing.T) {
		chdirTemp(t)
		clearPraedictusEnv(t)

		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("default path in working directory", func(t *testing.T) {
		dir := chdirTemp(t)
		clearPraedictusEnv(t)
		writeConfigFile(t, dir, "praedictus.yaml", "binarize: true\n")

		if got := findConfigFile(); got != "praedictus.yaml" {
			t.Errorf("findConfigFile() = %q, want praedictus.yaml", got)
		}
	})

	t.Run("env override wins over default path", func(t *testing.T) {
		dir := chdirTemp(t)
		writeConfigFile(t, dir, "praedictus.yaml", "binarize: true\n")
		override := writeConfigFile(t, dir, "custom.yaml", "binarize: false\n")
		setPraedictusEnv(t, map[string]string{ConfigPathEnvVar: override})

		if got := findConfigFile(); got != override {
			t.Errorf("findConfigFile() = %q, want %q", got, override)
		}
	})

	t.Run("missing env override falls back", func(t *testing.T) {
		dir := chdirTemp(t)
		writeConfigFile(t, dir, "praedictus.yaml", "binarize: true\n")
		setPraedictusEnv(t, map[string]string{
			ConfigPathEnvVar: filepath.Join(dir, "no-such.yaml"),
		})

		if got := findConfigFile(); got != "praedictus.yaml" {
			t.Errorf("findConfigFile() = %q, want praedictus.yaml", got)
		}
	})
}

// TestLoadDefaults verifies that with no config file and no environment
// overrides, Load returns exactly the built-in defaults.
func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	clearPraedictusEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

// TestLoadEnvOverlay verifies environment variables override defaults
// while untouched settings keep their default values.
func TestLoadEnvOverlay(t *testing.T) {
	chdirTemp(t)
	setPraedictusEnv(t, map[string]string{
		"PRAEDICTUS_IFMT":     "cluto",
		"PRAEDICTUS_NRCMDS":   "25",
		"PRAEDICTUS_BINARIZE": "true",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.InputFormat != FormatCLUTO {
		t.Errorf("InputFormat = %v, want cluto", cfg.InputFormat)
	}
	if cfg.RecommendationCount != 25 {
		t.Errorf("RecommendationCount = %d, want 25", cfg.RecommendationCount)
	}
	if !cfg.Binarize {
		t.Error("Binarize = false, want true")
	}
	if cfg.DebugLevel != 0 {
		t.Errorf("DebugLevel = %d, want default 0", cfg.DebugLevel)
	}
	if !cfg.ReadValues {
		t.Error("ReadValues = false, want default true")
	}
}

// TestLoadConfigFile verifies values are read from a YAML file named by
// the path override variable.
func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfigFile(t, dir, "run.yaml",
		"input_format: ijv\nrecommendation_count: 7\noutput_file: predictions.txt\n")
	setPraedictusEnv(t, map[string]string{ConfigPathEnvVar: path})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.InputFormat != FormatIJV {
		t.Errorf("InputFormat = %v, want ijv", cfg.InputFormat)
	}
	if cfg.RecommendationCount != 7 {
		t.Errorf("RecommendationCount = %d, want 7", cfg.RecommendationCount)
	}
	if cfg.OutputFile != "predictions.txt" {
		t.Errorf("OutputFile = %q, want predictions.txt", cfg.OutputFile)
	}
	if cfg.DebugLevel != 0 {
		t.Errorf("DebugLevel = %d, want default 0", cfg.DebugLevel)
	}
}

// TestLoadEnvOverridesFile verifies the environment layer beats the
// config file layer, key by key.
func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfigFile(t, dir, "run.yaml",
		"recommendation_count: 7\noutput_file: from-file.txt\n")
	setPraedictusEnv(t, map[string]string{
		ConfigPathEnvVar:    path,
		"PRAEDICTUS_NRCMDS": "9",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.RecommendationCount != 9 {
		t.Errorf("RecommendationCount = %d, want 9 from environment", cfg.RecommendationCount)
	}
	if cfg.OutputFile != "from-file.txt" {
		t.Errorf("OutputFile = %q, want from-file.txt from file", cfg.OutputFile)
	}
}

// TestLoadFormatCollapse verifies the no-ratings format collapses during
// overlay application exactly as it does on the command line.
func TestLoadFormatCollapse(t *testing.T) {
	chdirTemp(t)
	setPraedictusEnv(t, map[string]string{"PRAEDICTUS_IFMT": "csrnv"})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.InputFormat != FormatCSR {
		t.Errorf("InputFormat = %v, want csr", cfg.InputFormat)
	}
	if cfg.ReadValues {
		t.Error("ReadValues = true, want false after csrnv")
	}
}

// TestLoadInvalidOverlay verifies bad overlay values fail with the same
// diagnostics bad command-line values produce.
func TestLoadInvalidOverlay(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantMsg string
	}{
		{
			name:    "unknown format name",
			vars:    map[string]string{"PRAEDICTUS_IFMT": "bogus"},
			wantMsg: "Invalid -ifmt of bogus.",
		},
		{
			name:    "negative recommendation count",
			vars:    map[string]string{"PRAEDICTUS_NRCMDS": "-2"},
			wantMsg: "The -nrcmds parameter should be non-negative.",
		},
		{
			name:    "negative debug level",
			vars:    map[string]string{"PRAEDICTUS_DBGLVL": "-1"},
			wantMsg: "The -dbglvl parameter should be non-negative.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			setPraedictusEnv(t, tt.vars)

			_, err := Load()

			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("Load() error = %v, want *ArgumentError", err)
			}
			if argErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", argErr.Message, tt.wantMsg)
			}
		})
	}

	t.Run("unparseable numeric value", func(t *testing.T) {
		chdirTemp(t)
		setPraedictusEnv(t, map[string]string{"PRAEDICTUS_NRCMDS": "many"})

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})
}

// TestResolveArgvOverridesEnv verifies the full layering through Resolve:
// command-line values beat the environment, and environment values still
// apply when the command line is silent.
func TestResolveArgvOverridesEnv(t *testing.T) {
	dir := chdirTemp(t)
	model := writeTestFile(t, dir, "model.bin")
	old := writeTestFile(t, dir, "old.csr")
	setPraedictusEnv(t, map[string]string{
		"PRAEDICTUS_NRCMDS": "25",
		"PRAEDICTUS_IFMT":   "cluto",
	})

	cfg, err := Resolve([]string{"-nrcmds=3", model, old})
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}

	if cfg.RecommendationCount != 3 {
		t.Errorf("RecommendationCount = %d, want 3 from command line", cfg.RecommendationCount)
	}
	if cfg.InputFormat != FormatCLUTO {
		t.Errorf("InputFormat = %v, want cluto from environment", cfg.InputFormat)
	}
}
