package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// Keychain owns all client-side cryptography of the zero-knowledge login
// scheme. It knows nothing about the network or storage; its only job is
// deriving, wrapping, and unwrapping keys.
//
// Credential creation (register, password change, recovery):
//
//	salt      = ComposeSalt(serverHalf)
//	loginKey  = DeriveLoginKey(password, salt)    // stored by the server
//	cipherKey = DeriveCipherKey(password, salt)   // never leaves the client
//	sealed    = Seal(secret, cipherKey)
//
// Login runs the same derivations over the salt fetched from the server
// and unwraps the stored secret with Open.
type Keychain interface {
	// ComposeSalt appends fresh local randomness to the server-issued
	// salt half. The result is what gets persisted alongside the
	// credential; the server half is never used on its own.
	ComposeSalt(serverSalt []byte) ([]byte, error)

	// DeriveLoginKey derives the 24-byte login key the server stores and
	// compares at login. Argon2id with fixed cost parameters; the salt
	// must be the composite salt the credential was created with.
	DeriveLoginKey(password string, salt []byte) []byte

	// DeriveCipherKey derives the 32-byte symmetric key that wraps the
	// user's secret. Same Argon2id parameters and, within one credential
	// operation, the same composite salt as DeriveLoginKey; only the
	// output length differs. Changing either length breaks every stored
	// credential.
	DeriveCipherKey(password string, salt []byte) []byte

	// GenerateSecret creates a fresh 32-byte X25519 private key. Called
	// once at registration and again only when an account is recovered
	// without a recovery file.
	GenerateSecret() ([]byte, error)

	// PublicKey recomputes the X25519 public key from secret. The public
	// key is never persisted; it is always rederived from the decrypted
	// secret.
	PublicKey(secret []byte) ([]byte, error)

	// Seal authenticated-encrypts plaintext with a fresh random nonce
	// under the given 32-byte key. Returns the ciphertext and the nonce.
	Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error)

	// Open authenticated-decrypts ciphertext. A failed authentication
	// tag (in practice, a wrong password producing a wrong key) returns
	// [ErrAuthentication].
	Open(ciphertext, nonce, key []byte) ([]byte, error)

	// SealAnonymous encrypts plaintext so that only the holder of the
	// secret matching publicKey can read it. Used for authorization
	// token names, which must stay readable across password changes.
	SealAnonymous(plaintext, publicKey []byte) ([]byte, error)

	// OpenAnonymous reverses SealAnonymous. Returns
	// [ErrAuthentication] when the material does not match.
	OpenAnonymous(ciphertext, publicKey, secret []byte) ([]byte, error)
}
