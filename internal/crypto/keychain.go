package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

// Key and salt geometry of the credential scheme. These values are part
// of the stored-credential format shared with the existing browser
// client and must not change.
const (
	// LoginKeyLen is the length of the Argon2id output the server stores
	// as the login credential.
	LoginKeyLen = 24

	// CipherKeyLen is the length of the symmetric key that wraps the
	// user's secret.
	CipherKeyLen = 32

	// SecretLen is the length of the X25519 private key.
	SecretLen = 32

	// NonceLen is the secretbox nonce length.
	NonceLen = 24

	// LocalSaltLen is the number of locally generated random bytes
	// appended to the server-issued salt half.
	LocalSaltLen = 24
)

// keychain is the private implementation of [Keychain].
type keychain struct {
	// Argon2id tuning parameters. Chosen so a derivation finishes in
	// roughly one to two seconds on a weak mobile device; the server
	// stores only the derived output, so creation and verification must
	// use identical values.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeychain constructs a [Keychain] with the fixed Argon2id parameters
// of the credential scheme:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
func NewKeychain() Keychain {
	return &keychain{
		argonTime:    2,
		argonMemory:  19 * 1024, // 19 MiB
		argonThreads: 1,
	}
}

// ComposeSalt implements [Keychain]. It reads 24 random bytes from the
// OS CSPRNG and appends them to serverSalt, server half first. Returns
// an error if the random read fails.
func (k *keychain) ComposeSalt(serverSalt []byte) ([]byte, error) {
	salt := make([]byte, len(serverSalt)+LocalSaltLen)
	copy(salt, serverSalt)
	if _, err := io.ReadFull(rand.Reader, salt[len(serverSalt):]); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveLoginKey implements [Keychain].
func (k *keychain) DeriveLoginKey(password string, salt []byte) []byte {
	return k.derive(password, salt, LoginKeyLen)
}

// DeriveCipherKey implements [Keychain].
func (k *keychain) DeriveCipherKey(password string, salt []byte) []byte {
	return k.derive(password, salt, CipherKeyLen)
}

func (k *keychain) derive(password string, salt []byte, keyLen uint32) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		keyLen,
	)
}

// GenerateSecret implements [Keychain]. It reads 32 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (k *keychain) GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretLen)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// PublicKey implements [Keychain]. It multiplies the curve base point by
// secret.
func (k *keychain) PublicKey(secret []byte) ([]byte, error) {
	if len(secret) != SecretLen {
		return nil, ErrBadSecretSize
	}
	return curve25519.X25519(secret, curve25519.Basepoint)
}

// Seal implements [Keychain]. Every call generates a fresh random nonce;
// combined with the fresh salt every credential operation composes, a
// (key, nonce) pair is never reused.
func (k *keychain) Seal(plaintext, key []byte) ([]byte, []byte, error) {
	boxKey, err := toBoxKey(key)
	if err != nil {
		return nil, nil, err
	}

	var nonce [NonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, nil, err
	}

	ciphertext := secretbox.Seal(nil, plaintext, &nonce, boxKey)
	return ciphertext, nonce[:], nil
}

// Open implements [Keychain].
func (k *keychain) Open(ciphertext, nonce, key []byte) ([]byte, error) {
	boxKey, err := toBoxKey(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceLen {
		return nil, ErrBadNonceSize
	}

	var boxNonce [NonceLen]byte
	copy(boxNonce[:], nonce)

	plaintext, ok := secretbox.Open(nil, ciphertext, &boxNonce, boxKey)
	if !ok {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// SealAnonymous implements [Keychain]. The sender needs only the
// recipient's public key; an ephemeral key pair is folded into the
// ciphertext, so anything sealed this way survives password changes and
// can only be opened with the recipient's secret.
func (k *keychain) SealAnonymous(plaintext, publicKey []byte) ([]byte, error) {
	pub, err := toBoxKey(publicKey)
	if err != nil {
		return nil, err
	}
	return box.SealAnonymous(nil, plaintext, pub, rand.Reader)
}

// OpenAnonymous implements [Keychain].
func (k *keychain) OpenAnonymous(ciphertext, publicKey, secret []byte) ([]byte, error) {
	pub, err := toBoxKey(publicKey)
	if err != nil {
		return nil, err
	}
	priv, err := toBoxKey(secret)
	if err != nil {
		return nil, err
	}

	plaintext, ok := box.OpenAnonymous(nil, ciphertext, pub, priv)
	if !ok {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

func toBoxKey(key []byte) (*[CipherKeyLen]byte, error) {
	if len(key) != CipherKeyLen {
		return nil, ErrBadKeySize
	}
	var boxKey [CipherKeyLen]byte
	copy(boxKey[:], key)
	return &boxKey, nil
}

// Wipe overwrites b with zeros. Callers use it to scrub key material
// once an operation is finished; it is best effort since Go may have
// copied the slice during earlier operations.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
