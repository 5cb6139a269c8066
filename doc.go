/*
Package dycrypt provides password-based authenticated encryption by
cascading two independent AEAD ciphers, AES-256-GCM followed by
ChaCha20-Poly1305, each keyed by its own scrypt pass over the same
passphrase with an independent random salt. Breaking either cipher or
either derived key alone recovers nothing.

Encrypt runs the cascade and returns every value needed to reverse it;
Pack serializes those values into a single self-describing blob with a
fixed 88-byte header. Seal and Open combine the two steps:

	container, err := dycrypt.Seal(passphrase, plaintext)
	...
	plaintext, err := dycrypt.Open(passphrase, container)

Decryption verifies the outer layer's authentication tag before touching
the inner layer. Any tampering with the ciphertext or any header field,
and any wrong passphrase, fails with the same ErrAuthenticationFailed;
the two cases are not distinguishable, by either layer or cause.

Data format

	(16 bytes) salt, layer 1
	(16 bytes) salt, layer 2
	(12 bytes) nonce, layer 1
	(12 bytes) nonce, layer 2
	(16 bytes) tag, layer 1
	(16 bytes) tag, layer 2
	(? bytes)  ciphertext, same length as the plaintext

The header fields are not secret; the salts and nonces must simply be
fresh for every encryption, which Encrypt guarantees. The scrypt cost
parameters are fixed by this format and are not stored in the container:
a future parameter change is a format break.

The whole message is processed in memory; this package is not suited to
inputs that do not fit there.
*/
package dycrypt
