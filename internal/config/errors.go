// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

package config

// UsageKind distinguishes the two informational texts a resolution can
// short-circuit into.
type UsageKind int

const (
	// UsageHelp is the full help text, shown for -help, for any
	// unrecognized or malformed option, and for a value-taking option
	// with no value.
	UsageHelp UsageKind = iota + 1

	// UsageShort is the short usage reminder, shown when the positional
	// argument count is wrong.
	UsageShort
)

// UsageError reports that resolution ended by showing usage text instead
// of producing a configuration. It is an alternate successful completion,
// not a failure: callers print Text on standard output and exit zero.
type UsageError struct {
	Kind UsageKind
	Text string
}

func (e *UsageError) Error() string {
	if e.Kind == UsageShort {
		return "wrong number of arguments"
	}
	return "help requested"
}

// ArgumentError reports a fatal resolution failure: an invalid option
// value or a referenced file that does not exist. Message holds the exact
// diagnostic for the user; callers print it on standard error and exit
// non-zero.
type ArgumentError struct {
	// Option names what failed: an option ("ifmt", "nrcmds", "dbglvl")
	// or a positional role ("model-file", "old-file", "test-file").
	Option string

	// Value is the offending value or path.
	Value string

	// Message is the diagnostic shown to the user.
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}
