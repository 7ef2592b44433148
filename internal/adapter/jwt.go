package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoAccessToken is returned by SessionExpiry when no access token
// cookie is present, i.e. nobody is logged in.
var ErrNoAccessToken = errors.New("no access token cookie")

// SessionExpiry implements [API]. It peeks at the access token cookie
// without verifying its signature: the client has no verification key
// and does not need one. Only the exp claim matters, to schedule the
// next silent refresh before the token lapses.
func (a *restAdapter) SessionExpiry() (time.Time, error) {
	base, err := url.Parse(a.client.BaseURL)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse base url: %w", err)
	}

	for _, cookie := range a.client.GetClient().Jar.Cookies(base) {
		if cookie.Name != "access_token" {
			continue
		}

		token, _, err := jwt.NewParser().ParseUnverified(cookie.Value, jwt.MapClaims{})
		if err != nil {
			return time.Time{}, fmt.Errorf("parse access token: %w", err)
		}

		exp, err := token.Claims.GetExpirationTime()
		if err != nil || exp == nil {
			return time.Time{}, fmt.Errorf("access token has no expiry: %w", err)
		}
		return exp.Time, nil
	}

	return time.Time{}, ErrNoAccessToken
}
