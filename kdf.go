package dycrypt

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// SaltSize is the length of the per-layer KDF salt.
	SaltSize = 16

	// KeySize is the length of a derived key (256 bits).
	KeySize = 32

	// scrypt cost parameters. Fixed by the container format: they are not
	// stored alongside the data, so changing them breaks decryption of
	// previously produced containers.
	scryptN = 1 << 15 // CPU/memory cost
	scryptR = 8       // block size
	scryptP = 1       // parallelism
)

// DeriveKey derives a 32-byte key from a passphrase and a 16-byte salt
// using scrypt. The same inputs always produce the same key; different
// salts with the same passphrase produce independent keys.
//
// The derivation is deliberately memory- and CPU-expensive. Callers that
// no longer need the key should erase it with Zero.
func DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, &ValidationError{Field: "salt", Len: len(salt), Want: SaltSize}
	}

	key, err := scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, &KeyDerivationError{Err: err}
	}

	return key, nil
}

// GenerateSalt returns a fresh random KDF salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
