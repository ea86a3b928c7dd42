// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

// Package main is the entry point for the praedictus command-line tool.
//
// praedictus is the invocation front end of a top-N prediction pipeline.
// It resolves the command line into a validated run configuration,
// confirms the referenced input files exist, and emits the resolved run
// description as JSON on standard output for the prediction engine to
// consume. It performs no prediction and reads no file contents itself.
//
// # Usage
//
//	praedictus [options] model-file old-file [test-file]
//
// Options:
//
//	-ifmt=<csr|csrnv|cluto|ijv>  input file format (default csr;
//	                             csrnv selects CSR without ratings)
//	-binarize                    binarize the ratings
//	-outfile=<path>              output file for the predictions
//	-nrcmds=<int>                recommendations per user (default 10)
//	-dbglvl=<int>                debug verbosity (default 0)
//	-help                        print the full help
//
// Option names accept one or two leading dashes, "-name=value" or
// "-name value", and unambiguous prefix abbreviation. A literal "--"
// ends option parsing.
//
// # Configuration
//
// Option defaults may be overridden, lowest priority first, by an
// optional YAML config file and by PRAEDICTUS_* environment variables;
// explicit command-line options always win:
//
//	PRAEDICTUS_IFMT, PRAEDICTUS_BINARIZE, PRAEDICTUS_OUTFILE,
//	PRAEDICTUS_NRCMDS, PRAEDICTUS_DBGLVL
//	PRAEDICTUS_CONFIG  config file path (otherwise ./praedictus.yaml,
//	                   then /etc/praedictus/config.yaml)
//
// The positional files are part of the invocation contract and are never
// taken from the environment or a config file.
//
// # Exit Behavior
//
//	0  success: run description JSON on stdout
//	0  -help, unknown option or wrong positional count: usage text on stdout
//	1  validation failure: diagnostic on stderr
//
// # Example
//
//	praedictus -ifmt=ijv -nrcmds=5 -outfile=out.txt model.bin old.ijv test.ijv
//
// Structured logs go to standard error; raise -dbglvl to see more of
// them. Standard output carries only usage text or the run description.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/praedictus/internal/config"
	"github.com/tomtom215/praedictus/internal/logging"
	"github.com/tomtom215/praedictus/internal/run"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain resolves the invocation and emits the run description. It
// returns the process exit code; main is the only caller that terminates
// the process.
func runMain(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Resolve(args)
	if err != nil {
		var usage *config.UsageError
		if errors.As(err, &usage) {
			// Help and usage reminders are informational completions.
			fmt.Fprint(stdout, usage.Text)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	logging.Init(logging.Config{
		Level:  logging.LevelForDebug(cfg.DebugLevel).String(),
		Format: "console",
		Output: stderr,
	})

	desc, err := run.Describe(cfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to describe run")
		return 1
	}

	logger := logging.With().Str("run_id", desc.RunID).Logger()
	logger.Info().
		Str("model_file", cfg.ModelFile).
		Str("training_file", cfg.TrainingFile).
		Str("test_file", cfg.TestFile).
		Int("recommendation_count", cfg.RecommendationCount).
		Msg("Configuration resolved")
	logger.Debug().
		Str("input_format", cfg.InputFormat.String()).
		Bool("read_values", cfg.ReadValues).
		Bool("binarize", cfg.Binarize).
		Str("output_file", cfg.OutputFile).
		Msg("Input handling options")

	if err := desc.WriteJSON(stdout); err != nil {
		logging.Error().Err(err).Msg("Failed to write run description")
		return 1
	}

	logger.Debug().Msg("Run description written")
	return 0
}
