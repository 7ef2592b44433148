package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/adapter"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/crypto"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/session"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/token"
	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

type tokenService struct {
	api      adapter.API
	keychain crypto.Keychain
	session  *session.Session
	logger   *logger.Logger

	// shareCache memoizes built share strings by token id. The encoding
	// is a pure function of its inputs, so one derivation per token is
	// enough; the Argon2 binding hash makes re-deriving needlessly
	// expensive.
	mu         sync.Mutex
	shareCache map[string]string
}

// NewTokenService constructs the [TokenService].
func NewTokenService(api adapter.API, keychain crypto.Keychain, sess *session.Session, log *logger.Logger) TokenService {
	return &tokenService{
		api:        api,
		keychain:   keychain,
		session:    sess,
		logger:     log,
		shareCache: make(map[string]string),
	}
}

// Create implements [TokenService].
func (t *tokenService) Create(ctx context.Context, name string, useOnce bool) (models.AuthorizationToken, string, error) {
	publicKey := t.session.PublicKey()
	if publicKey == nil {
		return models.AuthorizationToken{}, "", ErrNotLoggedIn
	}

	// The name is sealed to the account's public key: the server stores
	// opaque bytes, and the name stays readable after password changes
	// because only the secret, which never changes, can open it.
	sealedName, err := t.keychain.SealAnonymous([]byte(name), publicKey)
	if err != nil {
		return models.AuthorizationToken{}, "", fmt.Errorf("seal token name: %w", err)
	}

	created, err := t.api.CreateAuthorizationToken(ctx, models.CreateAuthorizationTokenRequest{
		UseOnce: useOnce,
		Name:    base64.StdEncoding.EncodeToString(sealedName),
	})
	if err != nil {
		return models.AuthorizationToken{}, "", fmt.Errorf("create authorization token: %w", err)
	}

	share, err := t.share(created)
	if err != nil {
		return models.AuthorizationToken{}, "", err
	}

	t.logger.Info().Str("token_id", created.ID).Bool("use_once", useOnce).Msg("authorization token created")
	return created, share, nil
}

// List implements [TokenService].
func (t *tokenService) List(ctx context.Context) ([]TokenInfo, error) {
	secret := t.session.Secret()
	if secret == nil {
		return nil, ErrNotLoggedIn
	}
	defer crypto.Wipe(secret)
	publicKey := t.session.PublicKey()

	tokens, err := t.api.GetAuthorizationTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authorization tokens: %w", err)
	}

	infos := make([]TokenInfo, 0, len(tokens))
	for _, tok := range tokens {
		info := TokenInfo{AuthorizationToken: tok}

		if sealedName, err := base64.StdEncoding.DecodeString(tok.Name); err == nil {
			if plain, err := t.keychain.OpenAnonymous(sealedName, publicKey, secret); err == nil {
				info.PlainName = string(plain)
			}
		}

		share, err := t.share(tok)
		if err != nil {
			return nil, err
		}
		info.Share = share

		infos = append(infos, info)
	}

	return infos, nil
}

// Delete implements [TokenService].
func (t *tokenService) Delete(ctx context.Context, id string) error {
	if err := t.api.DeleteAuthorizationToken(ctx, id); err != nil {
		return fmt.Errorf("delete authorization token: %w", err)
	}

	t.mu.Lock()
	delete(t.shareCache, id)
	t.mu.Unlock()

	return nil
}

// share returns the memoized share string for tok, building it on first
// use.
func (t *tokenService) share(tok models.AuthorizationToken) (string, error) {
	t.mu.Lock()
	if cached, ok := t.shareCache[tok.ID]; ok {
		t.mu.Unlock()
		return cached, nil
	}
	t.mu.Unlock()

	serverToken, err := base64.StdEncoding.DecodeString(tok.Token)
	if err != nil {
		return "", fmt.Errorf("decode server token: %w", err)
	}

	user := t.session.User()
	publicKey := t.session.PublicKey()
	if publicKey == nil {
		return "", ErrNotLoggedIn
	}

	share, err := token.Encode(serverToken, []byte(user.ID), publicKey, []byte(user.Email))
	if err != nil {
		return "", fmt.Errorf("encode authorization token: %w", err)
	}

	t.mu.Lock()
	t.shareCache[tok.ID] = share
	t.mu.Unlock()

	return share, nil
}
