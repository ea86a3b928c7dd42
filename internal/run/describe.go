// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

// Package run assembles the handoff value for one prediction run.
//
// After resolution succeeds, Describe packages the resolved configuration
// with stat metadata for each verified input file under a short unique
// run identifier. The resulting Description is what the prediction engine
// (or an operator) consumes; the command shell emits it as JSON on
// standard output. Nothing here reads file contents: the input formats
// are opaque to the resolver and to its description.
package run

import (
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/praedictus/internal/config"
)

// FileInfo records stat metadata for a verified input file.
type FileInfo struct {
	// Path is the file path exactly as given on the command line.
	Path string `json:"path"`

	// SizeBytes is the file size at description time.
	SizeBytes int64 `json:"size_bytes"`

	// ModifiedAt is the file's last modification time.
	ModifiedAt time.Time `json:"modified_at"`
}

// Description is the downstream handoff for one prediction run: the
// resolved configuration plus verified-file metadata. The prediction
// engine consumes it without re-validating file existence or
// re-interpreting option syntax.
type Description struct {
	// RunID uniquely identifies this invocation.
	RunID string `json:"run_id"`

	// CreatedAt is when the description was assembled.
	CreatedAt time.Time `json:"created_at"`

	// Config is the run's own copy of the resolved configuration.
	Config *config.Config `json:"config"`

	// Model describes the model file.
	Model FileInfo `json:"model"`

	// Training describes the historical interaction file.
	Training FileInfo `json:"training"`

	// Test describes the optional test file; nil when none was given.
	Test *FileInfo `json:"test,omitempty"`
}

// Describe assembles the Description for a resolved configuration. The
// files were confirmed to exist during resolution; a stat failure here
// means one vanished in between, and is reported as an error.
func Describe(cfg *config.Config) (*Description, error) {
	model, err := statFile(cfg.ModelFile)
	if err != nil {
		return nil, fmt.Errorf("stat model file: %w", err)
	}

	training, err := statFile(cfg.TrainingFile)
	if err != nil {
		return nil, fmt.Errorf("stat old file: %w", err)
	}

	desc := &Description{
		RunID:     NewRunID(),
		CreatedAt: time.Now().UTC(),
		Config:    cfg.Clone(),
		Model:     model,
		Training:  training,
	}

	if cfg.TestFile != "" {
		test, err := statFile(cfg.TestFile)
		if err != nil {
			return nil, fmt.Errorf("stat test file: %w", err)
		}
		desc.Test = &test
	}

	return desc, nil
}

// statFile captures the metadata for one input file.
func statFile(path string) (FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Path:       path,
		SizeBytes:  fi.Size(),
		ModifiedAt: fi.ModTime().UTC(),
	}, nil
}

// NewRunID returns a short unique identifier for one prediction run.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// WriteJSON writes the description as indented JSON.
func (d *Description) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
