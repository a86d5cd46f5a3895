// Package common defines sentinel errors shared by the storage and
// presentation layers of medikom. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorDuplicateAttachment is returned when the same path is attached
	// twice to one entry. Callers may ignore it.
	ErrorDuplicateAttachment = errors.New("attachment already exists")

	// Store initialization errors.
	ErrorInitialization = errors.New("store initialization failed")

	// Validation errors.
	ErrorInvalidKind = errors.New("invalid entry kind")
)
