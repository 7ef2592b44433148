package service

import "errors"

var (
	// ErrPasswordMismatch is returned when the password and its
	// confirmation differ. Detected locally, before any network call.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrSecretLossNotAccepted is returned when a recovery without a
	// recovery file was submitted without the explicit acknowledgement
	// that the old secret, and every device pairing under it, is lost.
	ErrSecretLossNotAccepted = errors.New("recovering without a recovery file discards the old secret; explicit confirmation required")

	// ErrNotLoggedIn is returned by operations that need the decrypted
	// secret while the session holds none.
	ErrNotLoggedIn = errors.New("not logged in")
)
