// Package hashing provides content digests for stored payloads: a strong
// hex-encoded SHA-256 digest for stable external identification, and a fast
// 64-bit fingerprint for cheap change detection and deduplication.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object and returns a string
// representation of its hash. As an example, the Sha256 function is a
// HashFunc. This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update a hash.Hash with
// its contents. This is useful for hashing objects so that they can be easily
// compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hash of the given Hashable as a hex-encoded
// string. If the Hashable fails to update the hash, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

// Fingerprint returns a fast 64-bit XXH3 hash of the given bytes.
// Equal inputs always produce equal fingerprints, so unequal fingerprints
// prove unequal content. It is not cryptographically strong.
func Fingerprint(data []byte) uint64 {
	return xxh3.Hash(data)
}
