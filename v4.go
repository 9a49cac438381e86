package octuuid

import (
	"crypto/rand"
	"io"
)

// NewV4 generates a random (version 4) UUID from crypto/rand.
func NewV4() (UUID, error) {
	return newV4(rand.Reader)
}

// NewV4WithReader generates a version 4 UUID from a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewV4WithReader(r io.Reader) (UUID, error) {
	return newV4(r)
}

func newV4(r io.Reader) (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(r, uuid[:]); err != nil {
		return uuid, err
	}
	uuid.setVersionVariant(VersionRandom)
	return uuid, nil
}
