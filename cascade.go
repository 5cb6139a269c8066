package dycrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// IVSize is the AEAD nonce length used by both stages.
	IVSize = 12

	// TagSize is the AEAD authentication tag length used by both stages.
	TagSize = 16
)

// stage is one link of the cascade: a named AEAD constructor taking a
// 32-byte key. Both stage AEADs use 12-byte nonces and 16-byte tags.
type stage struct {
	name     string
	makeAEAD func(key []byte) (cipher.AEAD, error)
}

// The cascade applies stages in order on encryption and in reverse order
// on decryption. The two constructions are deliberately different, so a
// structural weakness in one does not compromise the other.
var stages = []stage{
	{name: "aes-256-gcm", makeAEAD: newAESGCM},
	{name: "chacha20-poly1305", makeAEAD: chacha20poly1305.New},
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Result holds everything a single encryption produced: the per-layer
// KDF salts, AEAD nonces and authentication tags, and the final
// ciphertext. None of the metadata fields are secret; confidentiality
// rests entirely on the passphrase.
//
// Ciphertext is exactly as long as the original plaintext: the stage
// ciphers add no padding and the tags are carried out of band.
type Result struct {
	Salt1 []byte
	Salt2 []byte
	IV1   []byte
	IV2   []byte
	Tag1  []byte
	Tag2  []byte

	Ciphertext []byte
}

// Encrypt encrypts plaintext under the passphrase by running it through
// both cascade stages in order. Each stage derives its own key from a
// fresh random salt and uses a fresh random nonce, so two calls with
// identical inputs never produce related output.
//
// The passphrase is not retained beyond the call; derived keys are
// erased before it returns.
func Encrypt(passphrase, plaintext []byte) (*Result, error) {
	salts := make([][]byte, len(stages))
	ivs := make([][]byte, len(stages))
	tags := make([][]byte, len(stages))

	data := plaintext
	for i, s := range stages {
		salt, err := GenerateSalt()
		if err != nil {
			return nil, err
		}

		key, err := DeriveKey(passphrase, salt)
		if err != nil {
			return nil, err
		}

		iv := make([]byte, IVSize)
		if _, err := rand.Read(iv); err != nil {
			Zero(key)
			return nil, fmt.Errorf("failed to generate nonce: %w", err)
		}

		ciphertext, tag, err := sealStage(s, key, iv, data)
		Zero(key)
		if err != nil {
			return nil, err
		}

		salts[i], ivs[i], tags[i] = salt, iv, tag
		data = ciphertext
	}

	return &Result{
		Salt1:      salts[0],
		Salt2:      salts[1],
		IV1:        ivs[0],
		IV2:        ivs[1],
		Tag1:       tags[0],
		Tag2:       tags[1],
		Ciphertext: data,
	}, nil
}

// Decrypt reverses the cascade, outer layer first, verifying each
// stage's tag before touching the one below it. Any verification
// failure aborts the call with ErrAuthenticationFailed; the error never
// reveals which layer rejected the tag, and no intermediate bytes are
// returned. A wrong passphrase fails the same way as tampered data.
func Decrypt(passphrase []byte, res *Result) ([]byte, error) {
	salts := [][]byte{res.Salt1, res.Salt2}
	ivs := [][]byte{res.IV1, res.IV2}
	tags := [][]byte{res.Tag1, res.Tag2}

	data := res.Ciphertext
	for i := len(stages) - 1; i >= 0; i-- {
		key, err := DeriveKey(passphrase, salts[i])
		if err != nil {
			return nil, err
		}

		plaintext, err := openStage(stages[i], key, ivs[i], data, tags[i])
		Zero(key)
		if err != nil {
			return nil, err
		}

		data = plaintext
	}

	return data, nil
}

// sealStage runs one stage's AEAD encryption with empty associated data
// and splits the tag off the ciphertext, so both can be stored at fixed
// container offsets.
func sealStage(s stage, key, iv, plaintext []byte) (ciphertext, tag []byte, err error) {
	aead, err := s.makeAEAD(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s cipher: %w", s.name, err)
	}

	sealed := aead.Seal(nil, iv, plaintext, nil)
	return sealed[:len(plaintext)], sealed[len(plaintext):], nil
}

// openStage rejoins a stage's ciphertext and tag and runs the AEAD
// decryption. Tag verification failures all surface as the one uniform
// ErrAuthenticationFailed.
func openStage(s stage, key, iv, ciphertext, tag []byte) ([]byte, error) {
	if len(iv) != IVSize || len(tag) != TagSize {
		return nil, ErrAuthenticationFailed
	}

	aead, err := s.makeAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cipher: %w", s.name, err)
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Seal encrypts plaintext and packs the result into a single
// self-describing container blob.
func Seal(passphrase, plaintext []byte) ([]byte, error) {
	res, err := Encrypt(passphrase, plaintext)
	if err != nil {
		return nil, err
	}
	return Pack(res)
}

// Open unpacks a container blob and decrypts it with the passphrase.
func Open(passphrase, container []byte) ([]byte, error) {
	res, err := Unpack(container)
	if err != nil {
		return nil, err
	}
	return Decrypt(passphrase, res)
}
