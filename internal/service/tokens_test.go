package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/crypto"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/mock"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/session"
	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

func newTestTokenSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*tokenService,
	*mock.MockAPI,
	*mock.MockKeychain,
	*session.Session,
) {
	t.Helper()
	mockAPI := mock.NewMockAPI(ctrl)
	mockKeychain := mock.NewMockKeychain(ctrl)
	sess := session.NewSession(session.NewLocalBus(), logger.Nop())

	svc := NewTokenService(mockAPI, mockKeychain, sess, logger.Nop()).(*tokenService)

	return svc, mockAPI, mockKeychain, sess
}

// tokenTestUser establishes a session with fixed material whose sizes
// match what the share encoding demands.
func tokenTestUser(sess *session.Session) models.User {
	user := models.User{
		ID:    "a80d35cc-e6ee-41e3-b6e4-7e23d46b124e",
		Name:  "Warp Charger",
		Email: "user@example.com",
	}
	secret := make([]byte, 32)
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = byte(i + 1)
	}
	sess.SetLoggedIn(user, secret, publicKey)
	return user
}

func serverTokenB64() (raw []byte, encoded string) {
	raw = make([]byte, 32)
	for i := range raw {
		raw[i] = byte(0xA0 + i)
	}
	return raw, base64.StdEncoding.EncodeToString(raw)
}

func TestTokenService_Create_SealsNameAndBuildsShare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockKeychain, sess := newTestTokenSvc(t, ctrl)
	ctx := context.Background()
	tokenTestUser(sess)

	_, tokenB64 := serverTokenB64()
	sealedName := []byte("sealed-name-blob")

	var sentName string

	gomock.InOrder(
		mockKeychain.EXPECT().SealAnonymous([]byte("garage wallbox"), gomock.Any()).Return(sealedName, nil),
		mockAPI.EXPECT().CreateAuthorizationToken(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.CreateAuthorizationTokenRequest) (models.AuthorizationToken, error) {
				sentName = req.Name
				require.True(t, req.UseOnce)
				return models.AuthorizationToken{
					ID:      "tok-1",
					Token:   tokenB64,
					UseOnce: true,
					Name:    req.Name,
				}, nil
			}),
	)

	created, share, err := svc.Create(ctx, "garage wallbox", true)
	require.NoError(t, err)

	assert.Equal(t, "tok-1", created.ID)
	assert.Equal(t, base64.StdEncoding.EncodeToString(sealedName), sentName)
	assert.NotEmpty(t, share)
	for _, r := range share {
		assert.Contains(t, "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ", string(r))
	}
}

func TestTokenService_Create_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestTokenSvc(t, ctrl)

	_, _, err := svc.Create(context.Background(), "garage wallbox", false)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestTokenService_List_DecryptsNamesAndMemoizesShares(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockKeychain, sess := newTestTokenSvc(t, ctrl)
	ctx := context.Background()
	tokenTestUser(sess)

	_, tokenB64 := serverTokenB64()
	sealedName := []byte("sealed-name-blob")
	tokens := []models.AuthorizationToken{
		{ID: "tok-1", Token: tokenB64, Name: base64.StdEncoding.EncodeToString(sealedName)},
	}

	mockAPI.EXPECT().GetAuthorizationTokens(ctx).Return(tokens, nil).Times(2)
	mockKeychain.EXPECT().OpenAnonymous(sealedName, gomock.Any(), gomock.Any()).Return([]byte("garage wallbox"), nil).Times(2)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "garage wallbox", first[0].PlainName)
	assert.NotEmpty(t, first[0].Share)

	// Second listing decrypts names again but must reuse the cached
	// share string rather than re-running the slow encoding.
	second, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Share, second[0].Share)
}

func TestTokenService_List_KeepsOpaqueNameWhenDecryptFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockKeychain, sess := newTestTokenSvc(t, ctrl)
	ctx := context.Background()
	tokenTestUser(sess)

	_, tokenB64 := serverTokenB64()
	tokens := []models.AuthorizationToken{
		{ID: "tok-1", Token: tokenB64, Name: base64.StdEncoding.EncodeToString([]byte("garbage"))},
	}

	mockAPI.EXPECT().GetAuthorizationTokens(ctx).Return(tokens, nil)
	mockKeychain.EXPECT().OpenAnonymous(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, crypto.ErrAuthentication)

	infos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Empty(t, infos[0].PlainName)
	assert.NotEmpty(t, infos[0].Share)
}

func TestTokenService_List_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestTokenSvc(t, ctrl)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestTokenService_Delete_EvictsShareCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockKeychain, sess := newTestTokenSvc(t, ctrl)
	ctx := context.Background()
	tokenTestUser(sess)

	_, tokenB64 := serverTokenB64()
	sealedName := []byte("sealed-name-blob")
	tokens := []models.AuthorizationToken{
		{ID: "tok-1", Token: tokenB64, Name: base64.StdEncoding.EncodeToString(sealedName)},
	}

	mockAPI.EXPECT().GetAuthorizationTokens(ctx).Return(tokens, nil)
	mockKeychain.EXPECT().OpenAnonymous(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("garage wallbox"), nil)

	_, err := svc.List(ctx)
	require.NoError(t, err)
	svc.mu.Lock()
	_, cached := svc.shareCache["tok-1"]
	svc.mu.Unlock()
	require.True(t, cached)

	mockAPI.EXPECT().DeleteAuthorizationToken(ctx, "tok-1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "tok-1"))

	svc.mu.Lock()
	_, cached = svc.shareCache["tok-1"]
	svc.mu.Unlock()
	assert.False(t, cached)
}
