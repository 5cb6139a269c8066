package dycrypt

import "fmt"

// Container byte layout, offsets inclusive-exclusive:
//
//	[0,16)   salt1
//	[16,32)  salt2
//	[32,44)  iv1
//	[44,56)  iv2
//	[56,72)  tag1
//	[72,88)  tag2
//	[88,N)   payload (ciphertext)
//
// The header is not secret and not authenticated on its own; any
// modification is caught by tag verification during decryption.
const (
	salt1Off = 0
	salt2Off = salt1Off + SaltSize
	iv1Off   = salt2Off + SaltSize
	iv2Off   = iv1Off + IVSize
	tag1Off  = iv2Off + IVSize
	tag2Off  = tag1Off + TagSize

	// HeaderSize is the fixed container header length.
	HeaderSize = tag2Off + TagSize
)

// Pack serializes a Result into a single container blob. Every
// fixed-length field is validated before any bytes are written; a
// mismatch fails with a ValidationError naming the field. The payload
// may be any length, including zero.
func Pack(res *Result) ([]byte, error) {
	fields := []struct {
		name string
		b    []byte
		want int
	}{
		{"salt1", res.Salt1, SaltSize},
		{"salt2", res.Salt2, SaltSize},
		{"iv1", res.IV1, IVSize},
		{"iv2", res.IV2, IVSize},
		{"tag1", res.Tag1, TagSize},
		{"tag2", res.Tag2, TagSize},
	}

	for _, f := range fields {
		if len(f.b) != f.want {
			return nil, &ValidationError{Field: f.name, Len: len(f.b), Want: f.want}
		}
	}

	blob := make([]byte, 0, HeaderSize+len(res.Ciphertext))
	for _, f := range fields {
		blob = append(blob, f.b...)
	}
	blob = append(blob, res.Ciphertext...)

	return blob, nil
}

// Unpack slices a container blob back into its fields. It is a pure
// structural operation: no cryptographic validation happens here, that
// is deferred entirely to Decrypt. Fields are copied out, so the caller
// may reuse the input buffer.
func Unpack(blob []byte) (*Result, error) {
	if len(blob) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrContainerTooShort, len(blob), HeaderSize)
	}

	field := func(off, size int) []byte {
		b := make([]byte, size)
		copy(b, blob[off:off+size])
		return b
	}

	payload := make([]byte, len(blob)-HeaderSize)
	copy(payload, blob[HeaderSize:])

	return &Result{
		Salt1:      field(salt1Off, SaltSize),
		Salt2:      field(salt2Off, SaltSize),
		IV1:        field(iv1Off, IVSize),
		IV2:        field(iv2Off, IVSize),
		Tag1:       field(tag1Off, TagSize),
		Tag2:       field(tag2Off, TagSize),
		Ciphertext: payload,
	}, nil
}
