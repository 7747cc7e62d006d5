// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/adapter"
	"github.com/MKhiriev/gumi-collection/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	var mapped error
	switch {
	case errors.Is(err, adapter.ErrNoToken):
		mapped = ErrNotSignedIn

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgItemNameRequired:
			mapped = ErrItemNameRequired
		case app.MsgNoFieldsToUpdate:
			mapped = ErrNoFieldsToUpdate
		case app.MsgInvalidImage:
			mapped = ErrInvalidImage
		case app.MsgImageTooLarge:
			mapped = ErrImageTooLarge
		default:
			mapped = ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			mapped = ErrWrongPassword
		case app.MsgTokenIsExpired:
			mapped = ErrTokenIsExpired
		default:
			mapped = ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgProfileNotFound:
			mapped = ErrProfileNotFound
		case app.MsgItemNotFound:
			mapped = ErrItemNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			mapped = ErrLoginAlreadyExists
		}
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return msg
}
