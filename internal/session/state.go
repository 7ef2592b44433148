// Package session tracks the client's login state and owns the only
// in-memory copy of the decrypted secret and its public key.
package session

// State is the session lifecycle state.
type State int

const (
	// Loading is the initial state before the first auth check resolves.
	Loading State = iota
	// LoggedIn means the session cookies are valid and the decrypted
	// secret is held in memory.
	LoggedIn
	// LoggedOut means there is no valid session; all key material has
	// been cleared.
	LoggedOut
	// RecoveryPending means the client is inside a password-recovery
	// flow; silent refresh is skipped so the recovery token stays the
	// only credential in play.
	RecoveryPending
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case LoggedIn:
		return "logged_in"
	case LoggedOut:
		return "logged_out"
	case RecoveryPending:
		return "recovery_pending"
	default:
		return "unknown"
	}
}
