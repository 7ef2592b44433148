package session

import (
	"sync"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/crypto"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

// Session is the explicit owner of the decrypted secret and derived
// public key. Both live only in memory and only while the state is
// LoggedIn; every transition away from LoggedIn wipes them. All methods
// are safe for concurrent use.
type Session struct {
	bus    Bus
	logger *logger.Logger

	mu        sync.RWMutex
	state     State
	user      models.User
	secret    []byte
	publicKey []byte

	unsubscribe func()
}

// NewSession constructs a Session in the Loading state and subscribes it
// to bus so peer logins and logouts converge this instance to the same
// state without extra network calls.
func NewSession(bus Bus, log *logger.Logger) *Session {
	s := &Session{
		bus:    bus,
		logger: log,
		state:  Loading,
	}
	s.unsubscribe = bus.Subscribe(s.onPeerEvent)
	return s
}

// Close detaches the session from its bus.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the identity of the logged-in account. Zero value when
// not logged in.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Secret returns a copy of the decrypted secret, or nil when not logged
// in. Callers must not retain the copy past the current operation.
func (s *Session) Secret() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.secret == nil {
		return nil
	}
	out := make([]byte, len(s.secret))
	copy(out, s.secret)
	return out
}

// PublicKey returns a copy of the public key derived from the secret at
// login, or nil when not logged in.
func (s *Session) PublicKey() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.publicKey == nil {
		return nil
	}
	out := make([]byte, len(s.publicKey))
	copy(out, s.publicKey)
	return out
}

// SetLoggedIn stores the decrypted secret and its public key, moves the
// session to LoggedIn, and announces the login to peers.
func (s *Session) SetLoggedIn(user models.User, secret, publicKey []byte) {
	s.mu.Lock()
	s.wipeLocked()
	s.user = user
	s.secret = append([]byte(nil), secret...)
	s.publicKey = append([]byte(nil), publicKey...)
	s.state = LoggedIn
	s.mu.Unlock()

	s.logger.Info().Str("state", LoggedIn.String()).Msg("session established")
	s.bus.Publish(EventLogin)
}

// Logout wipes all key material, moves to LoggedOut, and announces the
// logout to peers.
func (s *Session) Logout() {
	s.transitionOut()
	s.bus.Publish(EventLogout)
}

// Expire wipes all key material and moves to LoggedOut without
// broadcasting. Used when a silent refresh fails: every peer discovers
// the expiry through its own 401, so a broadcast would only duplicate
// transitions.
func (s *Session) Expire() {
	s.transitionOut()
}

// EnterRecovery moves the session to RecoveryPending. Silent refresh
// must be skipped in this state.
func (s *Session) EnterRecovery() {
	s.mu.Lock()
	s.wipeLocked()
	s.state = RecoveryPending
	s.mu.Unlock()

	s.logger.Info().Str("state", RecoveryPending.String()).Msg("entered recovery flow")
}

// InRecovery reports whether the session is in a recovery flow.
func (s *Session) InRecovery() bool {
	return s.State() == RecoveryPending
}

func (s *Session) transitionOut() {
	s.mu.Lock()
	s.wipeLocked()
	s.state = LoggedOut
	s.mu.Unlock()

	s.logger.Info().Str("state", LoggedOut.String()).Msg("session cleared")
}

// wipeLocked zeroes and drops the key material. Callers must hold mu.
func (s *Session) wipeLocked() {
	crypto.Wipe(s.secret)
	crypto.Wipe(s.publicKey)
	s.secret = nil
	s.publicKey = nil
	s.user = models.User{}
}

// onPeerEvent applies a sibling instance's transition locally. A peer
// logout drops keys without another broadcast; a peer login resets this
// instance to Loading so it re-establishes its own secret from scratch.
func (s *Session) onPeerEvent(event Event) {
	switch event {
	case EventLogout:
		s.mu.Lock()
		if s.state == LoggedOut {
			s.mu.Unlock()
			return
		}
		s.wipeLocked()
		s.state = LoggedOut
		s.mu.Unlock()
		s.logger.Info().Msg("peer logout applied")
	case EventLogin:
		s.mu.Lock()
		if s.state == LoggedIn {
			// This instance published the event or already holds its
			// own secret; nothing to reload.
			s.mu.Unlock()
			return
		}
		s.wipeLocked()
		s.state = Loading
		s.mu.Unlock()
		s.logger.Info().Msg("peer login observed, session reload required")
	}
}
