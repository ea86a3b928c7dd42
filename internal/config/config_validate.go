// Praedictus - Prediction Run Configuration Resolver
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/praedictus

package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/praedictus/internal/validation"
)

// formatRuleOnce guards registration of the input_format rule.
var formatRuleOnce sync.Once

// registerFormatRule installs the input_format rule on the shared
// validator: the stored format must be one of the surviving enum values.
// Safe to call repeatedly.
func registerFormatRule() {
	formatRuleOnce.Do(func() {
		v := validation.GetValidator()
		_ = v.RegisterValidation("input_format", func(fl validator.FieldLevel) bool {
			return InputFormat(fl.Field().Int()).Valid()
		})
	})
}

// Validate is the final gate over a resolved configuration. The
// per-option handlers and existence checks produce the user-facing
// diagnostics; this check enforces the struct invariants once more so an
// internally inconsistent Config can never be returned.
func (c *Config) Validate() error {
	registerFormatRule()
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %w", verr)
	}
	return nil
}
