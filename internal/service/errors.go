package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrItemNameRequired is returned by NormalizeForSave for a blank name.
	ErrItemNameRequired = errors.New("item name is required")

	// ErrNoFieldsToUpdate is returned for a patch that changes nothing.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	ErrValidationNoUserID = errors.New("no user ID was given")

	// ErrInvalidImage is returned when an upload cannot be decoded.
	ErrInvalidImage = errors.New("invalid image")

	// ErrImageTooLarge is returned when an upload exceeds the size limit.
	ErrImageTooLarge = errors.New("image is too large")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	// ErrNotSignedIn is returned by session operations before sign-in.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrProfileNotFound is the client view of a missing profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrItemNotFound is the client view of a missing item.
	ErrItemNotFound = errors.New("item not found")

	ErrLoginAlreadyExists = errors.New("login already exists")
)
