package fingerprint

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"
)

// Algorithm identifies the digest used for file fingerprints. Baselines and
// current fingerprints must be computed with the same algorithm; mixing them
// produces spurious mismatches.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA1   Algorithm = "sha1"
)

// ParseAlgorithm maps a configuration string to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sha256", "":
		return SHA256, nil
	case "sha1":
		return SHA1, nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", name)
	}
}

// New returns a fresh hash state for the algorithm.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New()
	default:
		return sha256.New()
	}
}

// HexLen reports the length of the algorithm's lowercase hex digest.
func (a Algorithm) HexLen() int {
	switch a {
	case SHA1:
		return sha1.Size * 2
	default:
		return sha256.Size * 2
	}
}

func (a Algorithm) String() string {
	return string(a)
}
