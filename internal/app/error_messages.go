// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the record store
// handlers and the client error mapper.
//
// Handlers write these strings as plain-text error bodies; the client maps
// them back to service errors, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when a body cannot be decoded or
	// fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the login/password pair does
	// not match an account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token has expired.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when the request context carries no
	// authenticated user.
	MsgNoUserIDProvided = "no user ID provided"

	MsgVersionIsNotSpecified = "version is not specified"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	// MsgLoginAlreadyExists is returned when registration hits a taken login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgItemNotFound is returned when an item id does not belong to the
	// current account.
	MsgItemNotFound = "item not found"

	// MsgItemConflict is returned when an upsert targets an id owned by
	// another account.
	MsgItemConflict = "item id is already taken"

	// MsgItemNameRequired is returned when an item is saved with a blank name.
	MsgItemNameRequired = "item name is required"

	// MsgNoFieldsToUpdate is returned for a PATCH without any known field.
	MsgNoFieldsToUpdate = "no fields to update"

	// MsgProfileNotFound signals that the account has no profile yet.
	MsgProfileNotFound = "profile not found"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInvalidImage is returned when an upload is not a decodable image.
	MsgInvalidImage = "invalid image"

	// MsgImageTooLarge is returned when an upload exceeds the size limit.
	MsgImageTooLarge = "image is too large"
)
