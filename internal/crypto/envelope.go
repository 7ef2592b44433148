package crypto

// Envelope is the password-level wrapper around the user's secret.
// It derives the 32-byte cipher key for a (password, salt) pair and
// seals or opens the secret with it, so callers never handle the
// intermediate key.
type Envelope struct {
	keychain Keychain
}

// NewEnvelope constructs an [Envelope] on top of keychain.
func NewEnvelope(keychain Keychain) *Envelope {
	return &Envelope{keychain: keychain}
}

// Encrypt derives the cipher key for (password, salt) and seals secret
// with a fresh nonce. Callers must pass a freshly composed salt; reusing
// a salt would reuse the derived key, and the only protection against a
// repeated (key, nonce) pair is the random nonce.
func (e *Envelope) Encrypt(secret []byte, password string, salt []byte) (ciphertext, nonce []byte, err error) {
	key := e.keychain.DeriveCipherKey(password, salt)
	defer Wipe(key)

	return e.keychain.Seal(secret, key)
}

// Decrypt derives the same cipher key and opens the sealed secret.
// Returns [ErrAuthentication] when the password does not match the one
// the envelope was sealed with.
func (e *Envelope) Decrypt(ciphertext, nonce []byte, password string, salt []byte) ([]byte, error) {
	key := e.keychain.DeriveCipherKey(password, salt)
	defer Wipe(key)

	return e.keychain.Open(ciphertext, nonce, key)
}
