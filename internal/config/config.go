// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

package config

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// InputFormat identifies the encoding convention of the interaction files.
type InputFormat int

// Input format codes. FormatCSRNoValues exists only while an invocation is
// being resolved: it is collapsed into FormatCSR with ReadValues off before
// a Config is returned, so it never appears in a resolved Config.
const (
	FormatCSR InputFormat = iota + 1
	FormatCLUTO
	FormatIJV
	FormatCSRNoValues
)

// Name returns the symbolic name used on the command line and in config
// files. It is the single exhaustive mapping over the closed format set;
// a code outside the set is an error, never a silent fallback.
func (f InputFormat) Name() (string, error) {
	switch f {
	case FormatCSR:
		return "csr", nil
	case FormatCLUTO:
		return "cluto", nil
	case FormatIJV:
		return "ijv", nil
	case FormatCSRNoValues:
		return "csrnv", nil
	}
	return "", fmt.Errorf("unknown input format code %d", int(f))
}

// String implements fmt.Stringer for logging and display.
func (f InputFormat) String() string {
	name, err := f.Name()
	if err != nil {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return name
}

// Valid reports whether f may appear in a resolved Config. The no-ratings
// CSR variant is recognized during resolution but never stored.
func (f InputFormat) Valid() bool {
	switch f {
	case FormatCSR, FormatCLUTO, FormatIJV:
		return true
	}
	return false
}

// MarshalJSON emits the symbolic name, so run descriptions carry "csr"
// rather than an opaque code.
func (f InputFormat) MarshalJSON() ([]byte, error) {
	name, err := f.Name()
	if err != nil {
		return nil, err
	}
	return json.Marshal(name)
}

// UnmarshalJSON accepts the symbolic names emitted by MarshalJSON.
func (f *InputFormat) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := parseInputFormat(name)
	if !ok {
		return fmt.Errorf("unknown input format %q", name)
	}
	*f = parsed
	return nil
}

// Config is the resolved configuration for one prediction run. It is
// populated during a single resolution pass and never mutated afterward;
// the caller that invoked resolution owns it exclusively.
type Config struct {
	// InputFormat selects the encoding of the input files.
	// Default: FormatCSR.
	InputFormat InputFormat `koanf:"-" json:"input_format" validate:"input_format"`

	// ReadValues controls whether rating values are read from the input.
	// Default: true. Selecting the csrnv format forces it false; nothing
	// turns it back on within one invocation.
	ReadValues bool `koanf:"-" json:"read_values"`

	// Binarize collapses non-zero ratings to a presence indicator
	// downstream. Default: false.
	Binarize bool `koanf:"binarize" json:"binarize"`

	// OutputFile is the path where predictions are written. Empty means
	// no prediction output is produced.
	OutputFile string `koanf:"output_file" json:"output_file,omitempty"`

	// TestFile is the optional file holding the hidden items for each
	// user. When present it has been confirmed to exist.
	TestFile string `koanf:"-" json:"test_file,omitempty"`

	// RecommendationCount is the number of items to recommend per user.
	// Default: 10.
	RecommendationCount int `koanf:"recommendation_count" json:"recommendation_count" validate:"gte=0"`

	// DebugLevel is the verbosity passed through to downstream
	// diagnostics. Default: 0.
	DebugLevel int `koanf:"debug_level" json:"debug_level" validate:"gte=0"`

	// ModelFile is the trained model to predict with. Confirmed to exist.
	ModelFile string `koanf:"-" json:"model_file" validate:"required"`

	// TrainingFile is the historical interaction file ("old file" in the
	// tool's usage). Confirmed to exist.
	TrainingFile string `koanf:"-" json:"training_file" validate:"required"`
}

// Default returns a Config populated with the built-in defaults. These are
// the values an invocation with no options, no config file and no
// environment overrides resolves to, before positional arguments.
func Default() *Config {
	return &Config{
		InputFormat:         FormatCSR,
		ReadValues:          true,
		Binarize:            false,
		OutputFile:          "",
		TestFile:            "",
		RecommendationCount: 10,
		DebugLevel:          0,
	}
}

// Clone returns a copy of the configuration. All fields are value types,
// so a shallow copy is a full copy.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

// setInputFormat resolves a symbolic format name into the configuration.
// Selecting the no-ratings variant stores plain CSR and clears ReadValues;
// the variant itself never survives. Both the argument scan and the
// file/environment overlay apply format names through here, so a bad name
// fails with the same diagnostic regardless of where it came from.
func (c *Config) setInputFormat(name string) error {
	f, ok := parseInputFormat(name)
	if !ok {
		return &ArgumentError{
			Option:  "ifmt",
			Value:   name,
			Message: fmt.Sprintf("Invalid -ifmt of %s.", name),
		}
	}
	if f == FormatCSRNoValues {
		c.InputFormat = FormatCSR
		c.ReadValues = false
		return nil
	}
	c.InputFormat = f
	return nil
}
