// Package service orchestrates the credential workflows: it sequences
// salt fetches, key derivations, envelope operations, and API calls, and
// keeps the session and local credential cache consistent.
package service

import (
	"context"

	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService drives every flow that touches the account credential:
// registration, login, logout, password change, and recovery.
//
// Within one credential operation the stages are strictly sequential:
// salt fetch, then key derivation, then encryption, then submit. Each
// stage's output is the next stage's input.
type AuthService interface {
	// Register validates the password, generates the account secret,
	// builds the credential material, and creates the account.
	Register(ctx context.Context, name, email, password string) error

	// Login derives the login key over the stored composite salt,
	// authenticates, fetches and decrypts the secret, and establishes
	// the session. A wrong password surfaces as
	// [crypto.ErrAuthentication] or the server's 401.
	Login(ctx context.Context, email, password string) error

	// Resume re-establishes the session from the cached secret key
	// without a password prompt. It only succeeds while the server-side
	// session is still valid; on any failure the caller falls back to a
	// normal login.
	Resume(ctx context.Context) error

	// Logout invalidates the server session, wipes the local credential
	// cache, and broadcasts the logout.
	Logout(ctx context.Context) error

	// ChangePassword re-derives the old login key, builds a fresh salt
	// and credential for the new password, re-encrypts the existing
	// secret, and submits the swap. The secret itself never changes.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// StartRecovery asks the server to mail a recovery token.
	StartRecovery(ctx context.Context, email string) error

	// Recover completes a recovery. When params carry a recovery file
	// the old secret is restored and device pairings survive; without
	// one a brand-new secret is generated, which the caller must have
	// explicitly acknowledged via params.AcceptSecretLoss.
	Recover(ctx context.Context, params RecoverParams) error

	// RecoveryArtifact builds the downloadable recovery file for the
	// logged-in account. Returns the deterministic filename and the
	// serialized artifact.
	RecoveryArtifact(ctx context.Context) (filename string, data []byte, err error)
}

// RecoverParams carries everything the recovery form collects.
type RecoverParams struct {
	Email           string
	RecoveryKey     string
	NewPassword     string
	ConfirmPassword string

	// RecoveryFile is the raw content of an uploaded recovery file, or
	// nil when the user has none.
	RecoveryFile []byte

	// AcceptSecretLoss must be set when RecoveryFile is nil. Proceeding
	// without a file generates a new secret and irrecoverably
	// invalidates everything encrypted under the old one, so it
	// requires a separate, explicit acknowledgement.
	AcceptSecretLoss bool
}

// TokenService manages device authorization tokens and derives their
// long shareable form.
type TokenService interface {
	// Create mints a new token on the server and returns its record
	// together with the shareable string.
	Create(ctx context.Context, name string, useOnce bool) (models.AuthorizationToken, string, error)

	// List returns all tokens with decrypted names and shareable
	// strings. Share strings are memoized: the encoding is
	// deterministic, so a token already built is never re-derived.
	List(ctx context.Context) ([]TokenInfo, error)

	// Delete removes a token by id and drops it from the memo cache.
	Delete(ctx context.Context, id string) error
}

// TokenInfo is one authorization token as presented to the user.
type TokenInfo struct {
	models.AuthorizationToken

	// PlainName is the decrypted token name.
	PlainName string

	// Share is the long Base58 form handed to the device owner.
	Share string
}
