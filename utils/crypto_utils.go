package utils

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// HashFunc turns a message into a 256-bit digest.
type HashFunc func(msg []byte) []byte

const (
	SHA256_ALGORITHM    = "sha256"
	SHA3_256_ALGORITHM  = "sha3-256"
	KECCAK256_ALGORITHM = "keccak256"
)

// Hash message using SHA256
func SHA256(msg []byte) []byte {
	digest := sha256.Sum256(msg)
	return digest[:]
}

// Hash message using the standardized SHA3-256.
func SHA3_256(msg []byte) []byte {
	digest := sha3.Sum256(msg)
	return digest[:]
}

// Hash message using the original Keccak-256, as Ethereum does.
func Keccak256(msg []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	return h.Sum(nil)
}

// GetHashFunc resolves a configured algorithm name. An empty name means SHA256.
func GetHashFunc(name string) (HashFunc, error) {
	switch name {
	case "", SHA256_ALGORITHM:
		return SHA256, nil
	case SHA3_256_ALGORITHM:
		return SHA3_256, nil
	case KECCAK256_ALGORITHM:
		return Keccak256, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", name)
	}
}
