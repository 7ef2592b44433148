package workers

import (
	"context"
	"time"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/adapter"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/session"
	"github.com/Tinkerforge/esp32-remote-access-client/internal/store"
)

const (
	defaultRefreshInterval = 30 * time.Second

	// refreshLeeway is how close to its expiry an access token may get
	// before the refresher renews it.
	refreshLeeway = time.Minute
)

// SessionRefresher keeps the session cookies alive by calling the
// refresh endpoint ahead of the access token's expiry. A failed refresh
// means the session is gone server-side: the local credential cache is
// cleared and the session expires without a broadcast, since every
// sibling instance will hit its own 401.
type SessionRefresher struct {
	api      adapter.API
	session  *session.Session
	store    store.CredentialStore
	logger   *logger.Logger
	interval time.Duration
}

// NewSessionRefresher constructs a refresher ticking at interval.
// Non-positive intervals fall back to 30 seconds.
func NewSessionRefresher(api adapter.API, sess *session.Session, credStore store.CredentialStore, log *logger.Logger, interval time.Duration) *SessionRefresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &SessionRefresher{
		api:      api,
		session:  sess,
		store:    credStore,
		logger:   log,
		interval: interval,
	}
}

// Run implements [Worker]. It blocks until ctx is cancelled.
func (r *SessionRefresher) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.tick(ctx)
		}
	}
}

func (r *SessionRefresher) tick(ctx context.Context) {
	// Recovery invalidates the session server-side on purpose; a
	// refresh attempt would only race the recovery flow.
	if r.session.InRecovery() {
		return
	}
	if r.session.State() != session.LoggedIn {
		return
	}

	if expiry, err := r.api.SessionExpiry(); err == nil && time.Until(expiry) > refreshLeeway {
		return
	}

	if err := r.api.Refresh(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("session refresh failed, session expired")
		if clearErr := r.store.Clear(ctx); clearErr != nil {
			r.logger.Warn().Err(clearErr).Msg("credential cache clear failed")
		}
		r.session.Expire()
		return
	}

	r.logger.Debug().Msg("session refreshed")
}
