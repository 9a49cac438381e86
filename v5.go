package octuuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// Namespace UUIDs defined by RFC 4122 Appendix C / RFC 9562 for name-based
// UUID generation.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NewV3 generates a name-based (version 3) UUID from the MD5 hash of the
// namespace UUID and name. The same namespace and name always produce the
// same UUID.
func NewV3(namespace UUID, name string) UUID {
	return hashUUID(md5.New(), namespace, name, VersionNameBasedMD5)
}

// NewV5 generates a name-based (version 5) UUID from the SHA-1 hash of the
// namespace UUID and name. The same namespace and name always produce the
// same UUID. V5 is preferred over V3 for new applications.
func NewV5(namespace UUID, name string) UUID {
	return hashUUID(sha1.New(), namespace, name, VersionNameBasedSHA1)
}

// hashUUID hashes namespace||name, keeps the leading 16 digest bytes, and
// stamps the version and variant fields.
func hashUUID(h hash.Hash, namespace UUID, name string, v Version) UUID {
	h.Write(namespace[:])
	h.Write([]byte(name))

	var uuid UUID
	copy(uuid[:], h.Sum(nil))
	uuid.setVersionVariant(v)
	return uuid
}
