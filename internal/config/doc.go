// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

/*
Package config resolves a praedictus invocation into a validated run
configuration.

The resolver is a single sequential pass: tokenize the argument vector,
apply a handler per recognized option, consume the remaining tokens as
positional arguments, confirm the referenced files exist, validate, and
return. There is no recursion, no backtracking and no concurrent work; the
option table and the format name map are immutable package-level values.

# Resolution Layers

Resolve builds its draft from layered sources (highest priority last):

 1. Built-in defaults (Default)
 2. Optional YAML config file: $PRAEDICTUS_CONFIG, ./praedictus.yaml,
    /etc/praedictus/config.yaml
 3. PRAEDICTUS_* environment variables
 4. The command-line argument vector

Only option-backed settings can come from a file or the environment; the
model, old and test file paths are positional arguments only. With no
config file and no PRAEDICTUS_* variables, behavior is identical to the
built-in defaults.

# Option Syntax

Options are long-form with one or two leading dashes. A value-taking
option accepts "-name=value" or "-name value". An unambiguous prefix of
an option name matches that option ("-bin" selects -binarize). A literal
"--" ends option scanning; a lone "-" is a positional argument.

	-ifmt=<csr|csrnv|cluto|ijv>   input file format (csrnv: CSR, no ratings)
	-binarize                     binarize the ratings
	-outfile=<path>               where predictions are written
	-nrcmds=<int>                 recommendations per user (default 10)
	-dbglvl=<int>                 debug verbosity (default 0)
	-help                         print the full help

# Outcomes

Resolve returns one of three results instead of terminating the process:

  - a fully populated *Config on success;
  - a *UsageError when resolution short-circuited into usage text
    (-help, an unrecognized or malformed option, or a wrong positional
    count) - an informational completion, printed on stdout with a zero
    exit;
  - a *ArgumentError for a validation failure (invalid format name,
    negative or non-integer count, missing input file) - a failure,
    printed on stderr with a non-zero exit.

# Example

	cfg, err := config.Resolve(os.Args[1:])
	if err != nil {
	    var usage *config.UsageError
	    if errors.As(err, &usage) {
	        fmt.Print(usage.Text)
	        os.Exit(0)
	    }
	    fmt.Fprintln(os.Stderr, err)
	    os.Exit(1)
	}
	// cfg.ModelFile, cfg.TrainingFile and cfg.TestFile exist on disk;
	// counts are non-negative; the format is one of the stored values.

# Thread Safety

A resolved Config is never mutated after Resolve returns and is safe for
concurrent reads. Resolution itself runs entirely on the calling
goroutine.
*/
package config
