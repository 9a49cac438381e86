package octuuid

import "github.com/zeebo/xxh3"

// NewV8 generates a custom (version 8) UUID keyed by the XXH3-128 digest
// of payload. Unlike the name-based v3/v5 UUIDs it is not standardized
// beyond the version and variant fields, but it is deterministic and fast,
// which makes it useful for content-derived identifiers such as cache or
// dedup keys.
func NewV8(payload []byte) UUID {
	sum := xxh3.Hash128(payload)
	uuid := FromWords(sum.Hi, sum.Lo)
	uuid.setVersionVariant(VersionCustom)
	return uuid
}

// NewV8String is NewV8 over the UTF-8 bytes of payload.
func NewV8String(payload string) UUID {
	return NewV8([]byte(payload))
}
