// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

package config

import "strings"

// optionCode is the symbolic code an option name resolves to.
type optionCode int

const (
	optIfmt optionCode = iota + 1
	optBinarize
	optOutfile
	optNrcmds
	optDbglvl
	optHelp
)

// option is one row of the option table: the long name and whether the
// option consumes a value token.
type option struct {
	name     string
	hasValue bool
	code     optionCode
}

// optionTable is the fixed set of recognized long options. It is built
// once and read-only for the life of the process.
var optionTable = []option{
	{name: "ifmt", hasValue: true, code: optIfmt},
	{name: "binarize", hasValue: false, code: optBinarize},
	{name: "outfile", hasValue: true, code: optOutfile},
	{name: "nrcmds", hasValue: true, code: optNrcmds},
	{name: "dbglvl", hasValue: true, code: optDbglvl},
	{name: "help", hasValue: false, code: optHelp},
}

// inputFormats maps symbolic format names to codes. It is consulted only
// while resolving a format name; csrnv maps to the parse-time variant
// that setInputFormat collapses into plain CSR.
var inputFormats = map[string]InputFormat{
	"csr":   FormatCSR,
	"csrnv": FormatCSRNoValues,
	"cluto": FormatCLUTO,
	"ijv":   FormatIJV,
}

// parseInputFormat looks up a symbolic format name.
func parseInputFormat(name string) (InputFormat, bool) {
	f, ok := inputFormats[name]
	return f, ok
}

// matchOption resolves an option name against the table. An exact match
// wins; otherwise a name that is an unambiguous prefix of exactly one
// table entry matches that entry. Unknown and ambiguous names both
// report no match, which the scanner turns into the help short circuit.
func matchOption(name string) (option, bool) {
	var (
		found option
		hits  int
	)
	for _, opt := range optionTable {
		if opt.name == name {
			return opt, true
		}
		if strings.HasPrefix(opt.name, name) {
			found = opt
			hits++
		}
	}
	if hits == 1 {
		return found, true
	}
	return option{}, false
}
