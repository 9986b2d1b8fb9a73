package factory

import "errors"

var (
	// ErrUnknownKind is returned for labels outside the supported set.
	ErrUnknownKind = errors.New("factory: unknown animal kind")

	ErrCreatorNotFound = errors.New("factory: creator not found")
)
