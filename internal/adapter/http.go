package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Tinkerforge/esp32-remote-access-client/internal/logger"
	"github.com/Tinkerforge/esp32-remote-access-client/models"
)

// Config carries the transport settings of the REST adapter.
type Config struct {
	// BaseURL is the server base URL, e.g. "https://remote.example.com/api".
	BaseURL string
	// Timeout bounds every outbound request.
	Timeout time.Duration
}

// SkipRefreshFunc reports whether silent refresh must be skipped, e.g.
// while a recovery flow is active.
type SkipRefreshFunc func() bool

// ExpireFunc is invoked once when a silent refresh fails; it gives the
// owner a chance to clear session state and cached credentials.
type ExpireFunc func()

type restAdapter struct {
	client *resty.Client
	logger *logger.Logger

	skipRefresh SkipRefreshFunc
	onExpire    ExpireFunc

	// refreshGroup collapses concurrent 401-triggered refreshes into a
	// single flight so simultaneous requests cannot stampede the
	// refresh endpoint.
	refreshGroup singleflight.Group
}

// NewRESTAdapter constructs the resty-backed [API]. It normalises and
// validates baseURL, installs a cookie jar for the session cookies, and
// wires the 401 interceptor hooks. skipRefresh and onExpire may be nil.
func NewRESTAdapter(cfg Config, log *logger.Logger, skipRefresh SkipRefreshFunc, onExpire ExpireFunc) (API, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetTimeout(cfg.Timeout)

	if skipRefresh == nil {
		skipRefresh = func() bool { return false }
	}
	if onExpire == nil {
		onExpire = func() {}
	}

	return &restAdapter{
		client:      client,
		logger:      log,
		skipRefresh: skipRefresh,
		onExpire:    onExpire,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// do runs send, and on a 401 attempts exactly one silent refresh before
// retrying send once. The refresh endpoint itself never goes through
// here, which is what breaks the recursion.
func (a *restAdapter) do(ctx context.Context, send func() (*resty.Response, error)) (*resty.Response, error) {
	resp, err := send()
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, nil
	}

	if a.skipRefresh() {
		return resp, nil
	}

	if err := a.refresh(ctx); err != nil {
		a.logger.Debug().Err(err).Msg("silent refresh failed")
		a.onExpire()
		return resp, nil
	}

	retried, err := send()
	if err != nil {
		return nil, err
	}
	return retried, nil
}

// refresh renews the session cookies. Concurrent callers share a single
// flight, so a burst of 401s produces one request to the endpoint.
func (a *restAdapter) refresh(ctx context.Context) error {
	_, err, _ := a.refreshGroup.Do("refresh", func() (interface{}, error) {
		return nil, a.Refresh(ctx)
	})
	return err
}

// GenerateSalt implements [API].
func (a *restAdapter) GenerateSalt(ctx context.Context) ([]byte, error) {
	var salt models.Bytes

	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetResult(&salt).
			Get("/auth/generate_salt")
	})
	if err != nil {
		return nil, fmt.Errorf("generate salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return salt, nil
}

// GetLoginSalt implements [API].
func (a *restAdapter) GetLoginSalt(ctx context.Context, email string) ([]byte, error) {
	var salt models.Bytes

	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetQueryParam("email", email).
			SetResult(&salt).
			Get("/auth/get_login_salt")
	})
	if err != nil {
		return nil, fmt.Errorf("get login salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return salt, nil
}

// Register implements [API].
func (a *restAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/auth/register")
	})
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [API]. The session cookies land in the client's
// cookie jar; the response body is not used.
func (a *restAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [API].
func (a *restAdapter) Logout(ctx context.Context) error {
	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			Get("/user/logout")
	})
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Me implements [API].
func (a *restAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetResult(&user).
			Get("/user/me")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// GetSecret implements [API].
func (a *restAdapter) GetSecret(ctx context.Context) (models.EncryptedSecret, error) {
	var secret models.EncryptedSecret

	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetResult(&secret).
			Get("/user/get_secret")
	})
	if err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("get secret request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedSecret{}, err
	}

	return secret, nil
}

// UpdatePassword implements [API].
func (a *restAdapter) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Put("/user/update_password")
	})
	if err != nil {
		return fmt.Errorf("update password request: %w", err)
	}

	return mapHTTPError(resp)
}

// StartRecovery implements [API].
func (a *restAdapter) StartRecovery(ctx context.Context, email string) error {
	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetQueryParam("email", email).
			Post("/auth/start_recovery")
	})
	if err != nil {
		return fmt.Errorf("start recovery request: %w", err)
	}

	return mapHTTPError(resp)
}

// Recover implements [API].
func (a *restAdapter) Recover(ctx context.Context, req models.RecoveryRequest) error {
	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/auth/recovery")
	})
	if err != nil {
		return fmt.Errorf("recovery request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateAuthorizationToken implements [API].
func (a *restAdapter) CreateAuthorizationToken(ctx context.Context, req models.CreateAuthorizationTokenRequest) (models.AuthorizationToken, error) {
	var created models.AuthorizationToken

	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			SetResult(&created).
			Post("/user/create_authorization_token")
	})
	if err != nil {
		return models.AuthorizationToken{}, fmt.Errorf("create authorization token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthorizationToken{}, err
	}

	return created, nil
}

// GetAuthorizationTokens implements [API].
func (a *restAdapter) GetAuthorizationTokens(ctx context.Context) ([]models.AuthorizationToken, error) {
	var tokens []models.AuthorizationToken

	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetResult(&tokens).
			Get("/user/get_authorization_tokens")
	})
	if err != nil {
		return nil, fmt.Errorf("get authorization tokens request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tokens, nil
}

// DeleteAuthorizationToken implements [API].
func (a *restAdapter) DeleteAuthorizationToken(ctx context.Context, id string) error {
	resp, err := a.do(ctx, func() (*resty.Response, error) {
		return a.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(models.DeleteAuthorizationTokenRequest{ID: id}).
			Delete("/user/delete_authorization_token")
	})
	if err != nil {
		return fmt.Errorf("delete authorization token request: %w", err)
	}

	return mapHTTPError(resp)
}

// Refresh implements [API]. Deliberately bypasses do so a 401 here can
// never trigger another refresh.
func (a *restAdapter) Refresh(ctx context.Context) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/auth/jwt_refresh")
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}

	return mapHTTPError(resp)
}
