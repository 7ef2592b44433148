package service

import (
	"context"
	"fmt"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/adapter"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/crypto"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/recovery"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/session"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/store"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/validators"
	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

type authService struct {
	api      adapter.API
	keychain crypto.Keychain
	envelope *crypto.Envelope
	store    store.CredentialStore
	session  *session.Session
	logger   *logger.Logger
}

// NewAuthService constructs the [AuthService].
func NewAuthService(api adapter.API, keychain crypto.Keychain, credStore store.CredentialStore, sess *session.Session, log *logger.Logger) AuthService {
	return &authService{
		api:      api,
		keychain: keychain,
		envelope: crypto.NewEnvelope(keychain),
		store:    credStore,
		session:  sess,
		logger:   log,
	}
}

// credentialMaterial is the output of one full credential pipeline run.
// Every credential-creating flow (register, password change, recovery)
// builds one.
type credentialMaterial struct {
	loginKey    []byte
	salt        []byte
	sealed      []byte
	secretNonce []byte
}

// buildCredential runs the fixed credential pipeline for (password,
// secret): fetch a fresh server salt half, compose the salt, derive the
// login key from it, and seal the secret through the envelope. The
// login key and the envelope's cipher key deliberately share one
// composite salt per operation; they differ only in output length. The
// stages are strictly ordered; each consumes the previous one's output.
func (a *authService) buildCredential(ctx context.Context, password string, secret []byte) (*credentialMaterial, error) {
	serverSalt, err := a.api.GenerateSalt(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch salt half: %w", err)
	}
	salt, err := a.keychain.ComposeSalt(serverSalt)
	if err != nil {
		return nil, fmt.Errorf("compose salt: %w", err)
	}

	loginKey := a.keychain.DeriveLoginKey(password, salt)

	sealed, nonce, err := a.envelope.Encrypt(secret, password, salt)
	if err != nil {
		return nil, fmt.Errorf("seal secret: %w", err)
	}

	return &credentialMaterial{
		loginKey:    loginKey,
		salt:        salt,
		sealed:      sealed,
		secretNonce: nonce,
	}, nil
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, name, email, password string) error {
	if err := validators.Password(password); err != nil {
		return err
	}

	secret, err := a.keychain.GenerateSecret()
	if err != nil {
		return fmt.Errorf("generate secret: %w", err)
	}
	defer crypto.Wipe(secret)

	material, err := a.buildCredential(ctx, password, secret)
	if err != nil {
		return err
	}

	err = a.api.Register(ctx, models.RegisterRequest{
		Name:        name,
		Email:       email,
		LoginKey:    material.loginKey,
		LoginSalt:   material.salt,
		Secret:      material.sealed,
		SecretNonce: material.secretNonce,
		SecretSalt:  material.salt,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.logger.Info().Str("email", email).Msg("account registered")
	return nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, email, password string) error {
	loginSalt, err := a.api.GetLoginSalt(ctx, email)
	if err != nil {
		return fmt.Errorf("fetch login salt: %w", err)
	}

	loginKey := a.keychain.DeriveLoginKey(password, loginSalt)
	if err := a.api.Login(ctx, models.LoginRequest{Email: email, LoginKey: loginKey}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	encrypted, err := a.api.GetSecret(ctx)
	if err != nil {
		return fmt.Errorf("fetch secret: %w", err)
	}

	cipherKey := a.keychain.DeriveCipherKey(password, encrypted.SecretSalt)
	secret, err := a.keychain.Open(encrypted.Secret, encrypted.SecretNonce, cipherKey)
	if err != nil {
		crypto.Wipe(cipherKey)
		return fmt.Errorf("decrypt secret: %w", err)
	}
	defer crypto.Wipe(secret)

	publicKey, err := a.keychain.PublicKey(secret)
	if err != nil {
		crypto.Wipe(cipherKey)
		return fmt.Errorf("derive public key: %w", err)
	}

	user, err := a.api.Me(ctx)
	if err != nil {
		crypto.Wipe(cipherKey)
		return fmt.Errorf("fetch user info: %w", err)
	}

	// The derived cipher key, not the password, is what gets cached so
	// the secret can be re-opened without prompting again.
	if err := a.store.SaveCredentials(ctx, email, loginSalt, cipherKey); err != nil {
		a.logger.Warn().Err(err).Msg("credential cache write failed")
	}
	crypto.Wipe(cipherKey)

	a.session.SetLoggedIn(user, secret, publicKey)
	return nil
}

// Resume implements [AuthService]. It re-opens the stored secret with
// the cached secret key, so a still-valid server session survives a
// client restart without a password prompt. Any failure leaves the
// session as it was; the caller falls back to a normal login.
func (a *authService) Resume(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return fmt.Errorf("fetch user info: %w", err)
	}

	_, secretKey, err := a.store.Credentials(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("read credential cache: %w", err)
	}
	defer crypto.Wipe(secretKey)

	encrypted, err := a.api.GetSecret(ctx)
	if err != nil {
		return fmt.Errorf("fetch secret: %w", err)
	}

	secret, err := a.keychain.Open(encrypted.Secret, encrypted.SecretNonce, secretKey)
	if err != nil {
		return fmt.Errorf("decrypt secret: %w", err)
	}
	defer crypto.Wipe(secret)

	publicKey, err := a.keychain.PublicKey(secret)
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}

	a.session.SetLoggedIn(user, secret, publicKey)
	a.logger.Info().Str("email", user.Email).Msg("session resumed from cache")
	return nil
}

// Logout implements [AuthService]. Local state is cleared even when the
// server call fails; an unreachable server must not leave key material
// behind.
func (a *authService) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)

	if clearErr := a.store.Clear(ctx); clearErr != nil {
		a.logger.Warn().Err(clearErr).Msg("credential cache clear failed")
	}
	a.session.Logout()

	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ChangePassword implements [AuthService].
func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := validators.Password(newPassword); err != nil {
		return err
	}

	user := a.session.User()
	secret := a.session.Secret()
	if secret == nil {
		return ErrNotLoggedIn
	}
	defer crypto.Wipe(secret)

	oldLoginSalt, err := a.api.GetLoginSalt(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("fetch old login salt: %w", err)
	}
	oldLoginKey := a.keychain.DeriveLoginKey(oldPassword, oldLoginSalt)

	material, err := a.buildCredential(ctx, newPassword, secret)
	if err != nil {
		return err
	}

	err = a.api.UpdatePassword(ctx, models.UpdatePasswordRequest{
		OldLoginKey:        oldLoginKey,
		NewLoginKey:        material.loginKey,
		NewLoginSalt:       material.salt,
		NewSecretNonce:     material.secretNonce,
		NewSecretSalt:      material.salt,
		NewEncryptedSecret: material.sealed,
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	// The envelope never exposes its key, so the cache entry for session
	// resume needs one more derivation over the new salt.
	cipherKey := a.keychain.DeriveCipherKey(newPassword, material.salt)
	if err := a.store.SaveCredentials(ctx, user.Email, material.salt, cipherKey); err != nil {
		a.logger.Warn().Err(err).Msg("credential cache write failed")
	}
	crypto.Wipe(cipherKey)

	a.logger.Info().Msg("password changed")
	return nil
}

// StartRecovery implements [AuthService]. The session enters recovery
// only once the server has accepted the request; a failed call must not
// cost a logged-in session its keys.
func (a *authService) StartRecovery(ctx context.Context, email string) error {
	if err := a.api.StartRecovery(ctx, email); err != nil {
		return fmt.Errorf("start recovery: %w", err)
	}

	a.session.EnterRecovery()
	return nil
}

// Recover implements [AuthService]. All local validation runs before
// the first network call.
func (a *authService) Recover(ctx context.Context, params RecoverParams) error {
	if params.NewPassword != params.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := validators.Password(params.NewPassword); err != nil {
		return err
	}

	var secret []byte
	reused := false

	switch {
	case params.RecoveryFile != nil:
		restored, err := recovery.Restore(params.RecoveryFile)
		if err != nil {
			return err
		}
		secret = restored
		reused = true
	case params.AcceptSecretLoss:
		fresh, err := a.keychain.GenerateSecret()
		if err != nil {
			return fmt.Errorf("generate secret: %w", err)
		}
		secret = fresh
	default:
		return ErrSecretLossNotAccepted
	}
	defer crypto.Wipe(secret)

	material, err := a.buildCredential(ctx, params.NewPassword, secret)
	if err != nil {
		return err
	}

	err = a.api.Recover(ctx, models.RecoveryRequest{
		RecoveryKey:        params.RecoveryKey,
		NewLoginKey:        material.loginKey,
		NewLoginSalt:       material.salt,
		NewSecretNonce:     material.secretNonce,
		NewSecretSalt:      material.salt,
		NewEncryptedSecret: material.sealed,
		ReusedSecret:       reused,
	})
	if err != nil {
		return fmt.Errorf("recover: %w", err)
	}

	a.session.Expire()
	a.logger.Info().Bool("reused_secret", reused).Msg("account recovered")
	return nil
}

// RecoveryArtifact implements [AuthService].
func (a *authService) RecoveryArtifact(_ context.Context) (string, []byte, error) {
	secret := a.session.Secret()
	if secret == nil {
		return "", nil, ErrNotLoggedIn
	}
	defer crypto.Wipe(secret)

	email := a.session.User().Email
	data, err := recovery.Serialize(recovery.Build(secret, email))
	if err != nil {
		return "", nil, err
	}

	return recovery.Filename(email), data, nil
}
