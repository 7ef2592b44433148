package models

// User holds the identity attributes the server exposes about the
// logged-in account via GET /user/me. The ID is the textual UUID the
// server assigned at registration; authorization token encoding depends
// on its exact 36-character form.
type User struct {
	// ID is the account UUID in canonical textual form.
	ID string `json:"id"`

	// Name is the display name chosen at registration.
	Name string `json:"name"`

	// Email is the account email address. It doubles as the login
	// identifier and is baked into shareable authorization tokens.
	Email string `json:"email"`

	// HasOldCharger reports whether any of the user's devices still runs
	// a firmware that predates the current pairing protocol.
	HasOldCharger bool `json:"has_old_charger"`
}

// RegisterRequest is the body of POST /auth/register. All cryptographic
// material is produced client-side; the server never sees the password.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginKey    Bytes  `json:"login_key"`
	LoginSalt   Bytes  `json:"login_salt"`
	Secret      Bytes  `json:"secret"`
	SecretNonce Bytes  `json:"secret_nonce"`
	SecretSalt  Bytes  `json:"secret_salt"`
}

// LoginRequest is the body of POST /auth/login. LoginKey is the Argon2id
// output over the stored composite login salt, not the password itself.
type LoginRequest struct {
	Email    string `json:"email"`
	LoginKey Bytes  `json:"login_key"`
}

// UpdatePasswordRequest is the body of PUT /user/update_password. The old
// login key proves knowledge of the current password; the new triple
// replaces the stored credential and re-encrypted secret in one step.
type UpdatePasswordRequest struct {
	OldLoginKey        Bytes `json:"old_login_key"`
	NewLoginKey        Bytes `json:"new_login_key"`
	NewLoginSalt       Bytes `json:"new_login_salt"`
	NewSecretNonce     Bytes `json:"new_secret_nonce"`
	NewSecretSalt      Bytes `json:"new_secret_salt"`
	NewEncryptedSecret Bytes `json:"new_encrypted_secret"`
}

// RecoveryRequest is the body of POST /auth/recovery. RecoveryKey is the
// UUID the server mailed out via start_recovery. ReusedSecret tells the
// server whether the old secret survived (a recovery file was supplied)
// or every device pairing must be invalidated.
type RecoveryRequest struct {
	RecoveryKey        string `json:"recovery_key"`
	NewLoginKey        Bytes  `json:"new_login_key"`
	NewLoginSalt       Bytes  `json:"new_login_salt"`
	NewSecretNonce     Bytes  `json:"new_secret_nonce"`
	NewSecretSalt      Bytes  `json:"new_secret_salt"`
	NewEncryptedSecret Bytes  `json:"new_encrypted_secret"`
	ReusedSecret       bool   `json:"reused_secret"`
}
