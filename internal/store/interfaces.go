package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore persists the non-secret credential material the client
// caches between runs, taking the place of the browser client's
// localStorage: the composite login salt and the password-derived secret
// key. The raw password and the decrypted secret are never stored.
type CredentialStore interface {
	// SaveCredentials upserts the cached material for email.
	SaveCredentials(ctx context.Context, email string, loginSalt, secretKey []byte) error

	// Credentials returns the cached material for email, or
	// [ErrNotFound] when no row exists.
	Credentials(ctx context.Context, email string) (loginSalt, secretKey []byte, err error)

	// Clear removes all cached credential rows. Called on logout and on
	// a failed silent refresh.
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
