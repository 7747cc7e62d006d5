// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks record store input before it reaches storage.
//
// A Validator accepts any supported model and an optional list of field
// names. With no names every rule of the model runs; with names only those
// rules run, which lets the save path check a partially filled item.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate returns the first rule violation of obj, restricted to fields
	// when any are given.
	Validate(context.Context, any, ...string) error
}
