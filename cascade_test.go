package dycrypt

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	passphrase := []byte("round trip passphrase")

	large := make([]byte, 4096)
	_, err := rand.Read(large)
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x00}},
		{"text", []byte("attack at dawn")},
		{"binary", large},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Encrypt(passphrase, tt.plaintext)
			require.NoError(t, err)

			got, err := Decrypt(passphrase, res)
			require.NoError(t, err)
			require.Equal(t, tt.plaintext, got)
		})
	}
}

func TestEncryptFieldLengths(t *testing.T) {
	t.Parallel()

	plaintext := []byte("some plaintext")
	res, err := Encrypt([]byte("pw"), plaintext)
	require.NoError(t, err)

	require.Len(t, res.Salt1, SaltSize)
	require.Len(t, res.Salt2, SaltSize)
	require.Len(t, res.IV1, IVSize)
	require.Len(t, res.IV2, IVSize)
	require.Len(t, res.Tag1, TagSize)
	require.Len(t, res.Tag2, TagSize)

	// The stage ciphers add no padding; tags travel out of band.
	require.Len(t, res.Ciphertext, len(plaintext))
}

func TestEncryptNonDeterministic(t *testing.T) {
	t.Parallel()

	passphrase := []byte("same passphrase")
	plaintext := []byte("same plaintext")

	a, err := Encrypt(passphrase, plaintext)
	require.NoError(t, err)
	b, err := Encrypt(passphrase, plaintext)
	require.NoError(t, err)

	require.NotEqual(t, a.Salt1, b.Salt1)
	require.NotEqual(t, a.Salt2, b.Salt2)
	require.NotEqual(t, a.IV1, b.IV1)
	require.NotEqual(t, a.IV2, b.IV2)
	require.NotEqual(t, a.Ciphertext, b.Ciphertext)
}

func TestDecryptWrongPassphrase(t *testing.T) {
	t.Parallel()

	res, err := Encrypt([]byte("right"), []byte("secret message"))
	require.NoError(t, err)

	_, err = Decrypt([]byte("wrong"), res)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestDecryptTamperDetection(t *testing.T) {
	t.Parallel()

	passphrase := []byte("tamper test passphrase")
	container, err := Seal(passphrase, []byte("integrity protected"))
	require.NoError(t, err)

	// One offset inside every container region, ciphertext included.
	regions := []struct {
		name   string
		offset int
	}{
		{"salt1", 3},
		{"salt2", 16 + 3},
		{"iv1", 32 + 5},
		{"iv2", 44 + 5},
		{"tag1", 56 + 7},
		{"tag2", 72 + 7},
		{"ciphertext", HeaderSize + 2},
	}

	for _, tt := range regions {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tampered := make([]byte, len(container))
			copy(tampered, container)
			tampered[tt.offset] ^= 0x01

			_, err := Open(passphrase, tampered)
			require.ErrorIs(t, err, ErrAuthenticationFailed)
		})
	}

	// The untouched container still opens.
	got, err := Open(passphrase, container)
	require.NoError(t, err)
	require.Equal(t, []byte("integrity protected"), got)
}

func TestSealOpenKnownScenario(t *testing.T) {
	t.Parallel()

	passphrase := []byte("CorrectHorseBatteryStaple")
	plaintext := []byte("attack at dawn")

	container, err := Seal(passphrase, plaintext)
	require.NoError(t, err)
	require.Len(t, container, HeaderSize+len(plaintext)) // 88 + 14

	got, err := Open(passphrase, container)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)

	_, err = Open([]byte("wrong"), container)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestSealEmptyPlaintext(t *testing.T) {
	t.Parallel()

	passphrase := []byte("pw")
	container, err := Seal(passphrase, nil)
	require.NoError(t, err)
	require.Len(t, container, HeaderSize)

	got, err := Open(passphrase, container)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestZero(t *testing.T) {
	t.Parallel()

	b := []byte{1, 2, 3, 4}
	Zero(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
}
