// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/gumi-collection/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until an account signs in or the user quits.
	LoginFlow(ctx context.Context) (models.Session, error)

	// MainLoop blocks until the user quits. logout reports a sign-out.
	MainLoop(ctx context.Context) (logout bool, err error)
}

// BackgroundWorker is started for every signed-in session and stopped when
// the session's main loop ends.
type BackgroundWorker interface {
	Run(ctx context.Context)
	Stop()
}
