package dycrypt

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrAuthenticationFailed is returned when tag verification fails at
	// either cascade layer during decryption. A wrong passphrase, a
	// corrupted container and deliberate tampering are indistinguishable;
	// the error is deliberately uniform and never identifies the layer
	// that rejected the tag.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong passphrase or corrupted data")

	// ErrContainerTooShort is returned when a container is smaller than
	// the fixed header.
	ErrContainerTooShort = errors.New("container shorter than fixed header")
)

// ValidationError reports a fixed-length field with the wrong length,
// detected while packing a container.
type ValidationError struct {
	Field string
	Len   int
	Want  int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s length: got %d bytes, want %d", e.Field, e.Len, e.Want)
}

// KeyDerivationError reports a failure of the underlying key derivation
// primitive, e.g. when it cannot allocate its working memory.
type KeyDerivationError struct {
	Err error
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("key derivation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}
