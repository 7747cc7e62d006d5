// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the persisted session or runs the login flow, starts the
// background refresh while the collection screens are open, and starts over
// after a sign-out.
package client
