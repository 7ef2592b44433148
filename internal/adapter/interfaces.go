// Package adapter is the transport layer between the client and the
// remote-access server.
//
// The primary abstraction is [API], which decouples the service layer
// from HTTP details. The resty implementation ([NewRESTAdapter]) owns
// the session cookies, maps status codes to the sentinel errors in
// errors.go, and transparently retries a request once after a silent
// session refresh when it hits a 401.
package adapter

import (
	"context"
	"time"

	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_mock.go -package=mock

// API defines the remote-access server operations the client consumes.
// Implementations are responsible for serialization, cookie handling,
// and mapping transport errors to the sentinel values of this package.
type API interface {
	// GenerateSalt fetches fresh server-side random bytes, the server
	// half of a composite salt. Every credential operation fetches its
	// own; salt halves are never reused.
	GenerateSalt(ctx context.Context) ([]byte, error)

	// GetLoginSalt returns the composite login salt stored for email.
	// Returns [ErrBadRequest] (wrapped) when the user is unknown.
	GetLoginSalt(ctx context.Context, email string) ([]byte, error)

	// Register creates the account. Returns [ErrConflict] (wrapped) when
	// the email is already taken.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates with the derived login key. On success the
	// server sets the session cookies on the underlying client. Returns
	// [ErrUnauthorized] (wrapped) on a credential mismatch.
	Login(ctx context.Context, req models.LoginRequest) error

	// Logout invalidates the server-side session and drops the local
	// cookies.
	Logout(ctx context.Context) error

	// Me returns the identity of the logged-in account.
	Me(ctx context.Context) (models.User, error)

	// GetSecret fetches the still-encrypted secret triple. Decryption
	// happens in the caller.
	GetSecret(ctx context.Context) (models.EncryptedSecret, error)

	// UpdatePassword replaces the stored credential and re-encrypted
	// secret. Returns [ErrBadRequest] (wrapped) when the old login key
	// is wrong.
	UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error

	// StartRecovery asks the server to mail a recovery token to email.
	StartRecovery(ctx context.Context, email string) error

	// Recover completes an account recovery with the mailed recovery
	// key and the freshly built credential material.
	Recover(ctx context.Context, req models.RecoveryRequest) error

	// CreateAuthorizationToken asks the server to mint a new 32-byte
	// random device authorization token.
	CreateAuthorizationToken(ctx context.Context, req models.CreateAuthorizationTokenRequest) (models.AuthorizationToken, error)

	// GetAuthorizationTokens lists the account's authorization tokens.
	GetAuthorizationTokens(ctx context.Context) ([]models.AuthorizationToken, error)

	// DeleteAuthorizationToken removes one authorization token by id.
	DeleteAuthorizationToken(ctx context.Context, id string) error

	// Refresh silently renews the session cookies. It is the one
	// endpoint the 401 interceptor never touches.
	Refresh(ctx context.Context) error

	// SessionExpiry returns the expiry time of the current access token
	// cookie, or [ErrNoAccessToken] when no session is established.
	SessionExpiry() (time.Time, error)
}
