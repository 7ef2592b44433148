package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

func TestSession_InitialStateIsLoading(t *testing.T) {
	s := NewSession(NewLocalBus(), logger.Nop())
	defer s.Close()

	assert.Equal(t, Loading, s.State())
	assert.Nil(t, s.Secret())
	assert.Nil(t, s.PublicKey())
}

func TestSession_LoginStoresCopies(t *testing.T) {
	s := NewSession(NewLocalBus(), logger.Nop())
	defer s.Close()

	secret := []byte("secret-material-32-bytes-long!!!")
	pub := []byte("public-material-32-bytes-long!!!")
	s.SetLoggedIn(models.User{Email: "user@example.com"}, secret, pub)

	require.Equal(t, LoggedIn, s.State())
	assert.Equal(t, secret, s.Secret())
	assert.Equal(t, pub, s.PublicKey())
	assert.Equal(t, "user@example.com", s.User().Email)

	// Mutating the returned copy must not affect the session's copy.
	got := s.Secret()
	got[0] ^= 0xff
	assert.Equal(t, secret, s.Secret())
}

func TestSession_LogoutWipesAndBroadcasts(t *testing.T) {
	bus := NewLocalBus()
	s := NewSession(bus, logger.Nop())
	defer s.Close()

	var events []Event
	unsub := bus.Subscribe(func(e Event) { events = append(events, e) })
	defer unsub()

	s.SetLoggedIn(models.User{}, []byte("secret"), []byte("public"))
	s.Logout()

	assert.Equal(t, LoggedOut, s.State())
	assert.Nil(t, s.Secret())
	assert.Nil(t, s.PublicKey())
	assert.Equal(t, models.User{}, s.User())
	require.Equal(t, []Event{EventLogin, EventLogout}, events)
}

func TestSession_ExpireDoesNotBroadcast(t *testing.T) {
	bus := NewLocalBus()
	s := NewSession(bus, logger.Nop())
	defer s.Close()

	var events []Event
	unsub := bus.Subscribe(func(e Event) { events = append(events, e) })
	defer unsub()

	s.Expire()

	assert.Equal(t, LoggedOut, s.State())
	assert.Empty(t, events)
}

func TestLocalBus_DeliversToPublishersOwnSubscriber(t *testing.T) {
	bus := NewLocalBus()

	var events []Event
	unsub := bus.Subscribe(func(e Event) { events = append(events, e) })
	defer unsub()

	bus.Publish(EventLogin)

	// The bus delivers to every handler, the publisher's side included.
	// Ignoring self-events is the subscriber's job, done on state.
	require.Equal(t, []Event{EventLogin}, events)
}

func TestSession_PeerLogoutConvergesSibling(t *testing.T) {
	bus := NewLocalBus()
	a := NewSession(bus, logger.Nop())
	defer a.Close()
	b := NewSession(bus, logger.Nop())
	defer b.Close()

	a.SetLoggedIn(models.User{}, []byte("sa"), []byte("pa"))
	b.SetLoggedIn(models.User{}, []byte("sb"), []byte("pb"))

	a.Logout()

	assert.Equal(t, LoggedOut, a.State())
	assert.Equal(t, LoggedOut, b.State())
	assert.Nil(t, b.Secret())
}

func TestSession_PeerLoginForcesSiblingReload(t *testing.T) {
	bus := NewLocalBus()
	a := NewSession(bus, logger.Nop())
	defer a.Close()
	b := NewSession(bus, logger.Nop())
	defer b.Close()

	secret := []byte("only-a-holds-this")
	a.SetLoggedIn(models.User{}, secret, []byte("pub"))

	// The sibling must not have received the secret, only the need to
	// re-establish its own session.
	assert.Equal(t, Loading, b.State())
	assert.Nil(t, b.Secret())

	// The publisher keeps its own secret.
	assert.Equal(t, LoggedIn, a.State())
	assert.True(t, bytes.Equal(secret, a.Secret()))
}

func TestSession_EnterRecovery(t *testing.T) {
	s := NewSession(NewLocalBus(), logger.Nop())
	defer s.Close()

	s.SetLoggedIn(models.User{}, []byte("secret"), []byte("public"))
	s.EnterRecovery()

	assert.Equal(t, RecoveryPending, s.State())
	assert.True(t, s.InRecovery())
	assert.Nil(t, s.Secret())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "logged_in", LoggedIn.String())
	assert.Equal(t, "logged_out", LoggedOut.String())
	assert.Equal(t, "recovery_pending", RecoveryPending.String())
	assert.Equal(t, "unknown", State(42).String())
}
