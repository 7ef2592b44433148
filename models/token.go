package models

// CreateAuthorizationTokenRequest is the body of
// POST /user/create_authorization_token. Name arrives encrypted with the
// user's secret key so the server stores only opaque bytes.
type CreateAuthorizationTokenRequest struct {
	UseOnce bool   `json:"use_once"`
	Name    string `json:"name"`
}

// AuthorizationToken is the server-side record of one device
// authorization token. Token is the 32 random bytes in standard base64;
// the long shareable form is derived client-side and never stored.
type AuthorizationToken struct {
	ID         string `json:"id"`
	Token      string `json:"token"`
	UseOnce    bool   `json:"use_once"`
	Name       string `json:"name"`
	CreatedAt  int64  `json:"created_at"`
	LastUsedAt *int64 `json:"last_used_at"`
}

// DeleteAuthorizationTokenRequest is the body of
// DELETE /user/delete_authorization_token.
type DeleteAuthorizationTokenRequest struct {
	ID string `json:"id"`
}
