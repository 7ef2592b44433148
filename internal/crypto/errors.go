package crypto

import "errors"

var (
	// ErrAuthentication is returned when an authenticated decryption
	// fails. At login this is the signal that distinguishes a wrong
	// password from a transport failure.
	ErrAuthentication = errors.New("authentication failed")

	// ErrBadKeySize is returned when a key of the wrong length is passed
	// to Seal or Open.
	ErrBadKeySize = errors.New("key must be 32 bytes")

	// ErrBadNonceSize is returned when a nonce of the wrong length is
	// passed to Open.
	ErrBadNonceSize = errors.New("nonce must be 24 bytes")

	// ErrBadSecretSize is returned when a secret of the wrong length is
	// passed to PublicKey.
	ErrBadSecretSize = errors.New("secret must be 32 bytes")
)
