package contentcheck

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
)

// Algorithm names a content digest.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
	AlgorithmBLAKE3 Algorithm = "blake3"
)

// Algorithms lists the supported digests.
var Algorithms = []Algorithm{AlgorithmSHA256, AlgorithmSHA512, AlgorithmBLAKE3}

// ParseAlgorithm validates a digest name. The empty string means no digest.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return "", nil
	}
	for _, a := range Algorithms {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unsupported digest %q (want one of %v)", s, Algorithms)
}

// NewHasher returns a hash for a. The empty algorithm means sha256.
func (a Algorithm) NewHasher() (hash.Hash, error) {
	switch a {
	case "", AlgorithmSHA256:
		return sha256.New(), nil
	case AlgorithmSHA512:
		return sha512.New(), nil
	case AlgorithmBLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("unsupported digest %q (want one of %v)", string(a), Algorithms)
	}
}

// Sum returns the lowercase hex digest of content.
func (a Algorithm) Sum(content string) (string, error) {
	h, err := a.NewHasher()
	if err != nil {
		return "", err
	}
	_, _ = h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil)), nil
}
