package octuuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("octuuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("octuuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("octuuid: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("octuuid: invalid UUID variant (expected RFC 4122)")
)
