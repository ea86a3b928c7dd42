// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

package config

import "strings"

// helpLines is the full help message, one entry per output line.
var helpLines = []string{
	" ",
	" Usage:",
	"   praedictus [options] model-file old-file [test-file]",
	" ",
	" Parameters:",
	"   model-file",
	"       The file that stores the trained model to predict with.",
	" ",
	"   old-file",
	"       The file that stores the historical information for each user.",
	" ",
	"   test-file",
	"       The file that stores the hidden items for each user.",
	" ",
	" Options:",
	"   -ifmt=string",
	"      Specifies the format of the input files. Available options are:",
	"        csr     -  CSR format [default].",
	"        csrnv   -  CSR format without ratings.",
	"        cluto   -  Format used by CLUTO.",
	"        ijv     -  One (row#, col#, val) per line.",
	" ",
	"   -binarize",
	"      Specifies that the ratings should be binarized.",
	" ",
	"   -outfile=string",
	"      Specifies the output file that will store the predictions.",
	"      If not specified, no output will be produced.",
	" ",
	"   -nrcmds=int",
	"      Specifies the number of items to recommend for each user.",
	"      The default value is 10.",
	" ",
	"   -dbglvl=int",
	"      Specifies the debug level. The default value is 0.",
	" ",
	"   -help",
	"      Prints this message.",
	" ",
}

// shortUsageLines is the usage reminder shown when the positional
// arguments are wrong.
var shortUsageLines = []string{
	" ",
	" Usage: praedictus [options] model-file old-file [test-file]",
	"   use 'praedictus -help' for a summary of the options.",
}

// HelpText returns the full help message.
func HelpText() string {
	return strings.Join(helpLines, "\n") + "\n"
}

// ShortUsage returns the short usage reminder.
func ShortUsage() string {
	return strings.Join(shortUsageLines, "\n") + "\n"
}

// helpError builds the help short circuit. Explicit -help, unknown
// options, ambiguous abbreviations and malformed option tokens all
// converge here.
func helpError() *UsageError {
	return &UsageError{Kind: UsageHelp, Text: HelpText()}
}

// shortUsageError builds the wrong-positional-count short circuit.
func shortUsageError() *UsageError {
	return &UsageError{Kind: UsageShort, Text: ShortUsage()}
}
