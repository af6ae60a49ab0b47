package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no record exists for a chat.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a bad command argument; handlers turn it into a
	// usage hint instead of mutating settings.
	ErrValidation = errors.New("validation")

	// ErrUnsupportedUpload marks an attachment the bot cannot route to any
	// vendor endpoint.
	ErrUnsupportedUpload = errors.New("unsupported upload")
)
