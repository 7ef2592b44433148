package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestComposeSalt_AppendsLocalHalf(t *testing.T) {
	kc := NewKeychain()

	serverSalt := bytes.Repeat([]byte{0x42}, 24)
	salt, err := kc.ComposeSalt(serverSalt)
	if err != nil {
		t.Fatalf("ComposeSalt error: %v", err)
	}

	if len(salt) != len(serverSalt)+LocalSaltLen {
		t.Fatalf("salt length = %d, want %d", len(salt), len(serverSalt)+LocalSaltLen)
	}
	if !bytes.Equal(salt[:len(serverSalt)], serverSalt) {
		t.Fatalf("server half must come first")
	}
}

func TestComposeSalt_LocalHalfIsRandom(t *testing.T) {
	kc := NewKeychain()

	serverSalt := []byte("server-half")
	s1, err := kc.ComposeSalt(serverSalt)
	if err != nil {
		t.Fatalf("ComposeSalt error: %v", err)
	}
	s2, err := kc.ComposeSalt(serverSalt)
	if err != nil {
		t.Fatalf("ComposeSalt error: %v", err)
	}

	if bytes.Equal(s1, s2) {
		t.Fatalf("expected composed salts to differ, but they are equal")
	}
}

func TestComposeSalt_EmptyServerHalf(t *testing.T) {
	kc := NewKeychain()

	salt, err := kc.ComposeSalt(nil)
	if err != nil {
		t.Fatalf("ComposeSalt error: %v", err)
	}
	if len(salt) != LocalSaltLen {
		t.Fatalf("salt length = %d, want %d", len(salt), LocalSaltLen)
	}
}

func TestDeriveLoginKey_DeterministicAndSized(t *testing.T) {
	kc := NewKeychain()

	salt := bytes.Repeat([]byte{0xAB}, 48)
	k1 := kc.DeriveLoginKey("correct horse battery staple", salt)
	k2 := kc.DeriveLoginKey("correct horse battery staple", salt)

	if len(k1) != LoginKeyLen {
		t.Fatalf("login key length = %d, want %d", len(k1), LoginKeyLen)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("same password and salt must derive the same login key")
	}
}

func TestDeriveCipherKey_DiffersFromLoginKey(t *testing.T) {
	kc := NewKeychain()

	salt := bytes.Repeat([]byte{0xAB}, 48)
	login := kc.DeriveLoginKey("pass", salt)
	cipher := kc.DeriveCipherKey("pass", salt)

	if len(cipher) != CipherKeyLen {
		t.Fatalf("cipher key length = %d, want %d", len(cipher), CipherKeyLen)
	}
	// Argon2id output of a different length is a different key stream,
	// so the 24-byte login key must not be a prefix of the cipher key.
	if bytes.Equal(login, cipher[:LoginKeyLen]) {
		t.Fatalf("login key must not be a prefix of the cipher key")
	}
}

func TestDerive_SaltSensitivity(t *testing.T) {
	kc := NewKeychain()

	s1 := bytes.Repeat([]byte{0x01}, 48)
	s2 := bytes.Repeat([]byte{0x02}, 48)

	if bytes.Equal(kc.DeriveLoginKey("pass", s1), kc.DeriveLoginKey("pass", s2)) {
		t.Fatalf("different salts must derive different keys")
	}
}

func TestGenerateSecret_LengthAndRandomness(t *testing.T) {
	kc := NewKeychain()

	s1, err := kc.GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret error: %v", err)
	}
	s2, err := kc.GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret error: %v", err)
	}

	if len(s1) != SecretLen {
		t.Fatalf("secret length = %d, want %d", len(s1), SecretLen)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected secrets to differ, but they are equal")
	}
}

func TestPublicKey_DeterministicFromSecret(t *testing.T) {
	kc := NewKeychain()

	secret, err := kc.GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret error: %v", err)
	}

	p1, err := kc.PublicKey(secret)
	if err != nil {
		t.Fatalf("PublicKey error: %v", err)
	}
	p2, err := kc.PublicKey(secret)
	if err != nil {
		t.Fatalf("PublicKey error: %v", err)
	}

	if len(p1) != 32 {
		t.Fatalf("public key length = %d, want 32", len(p1))
	}
	if !bytes.Equal(p1, p2) {
		t.Fatalf("public key must be a pure function of the secret")
	}
}

func TestPublicKey_RejectsShortSecret(t *testing.T) {
	kc := NewKeychain()

	if _, err := kc.PublicKey([]byte("short")); !errors.Is(err, ErrBadSecretSize) {
		t.Fatalf("expected ErrBadSecretSize, got %v", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	kc := NewKeychain()

	key := bytes.Repeat([]byte{0x11}, CipherKeyLen)
	plaintext := []byte("the quick brown fox")

	ciphertext, nonce, err := kc.Seal(plaintext, key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if len(nonce) != NonceLen {
		t.Fatalf("nonce length = %d, want %d", len(nonce), NonceLen)
	}

	opened, err := kc.Open(ciphertext, nonce, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", opened, plaintext)
	}
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	kc := NewKeychain()

	key := bytes.Repeat([]byte{0x11}, CipherKeyLen)
	_, n1, err := kc.Seal([]byte("msg"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	_, n2, err := kc.Seal([]byte("msg"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if bytes.Equal(n1, n2) {
		t.Fatalf("expected fresh nonce per Seal call")
	}
}

func TestOpen_WrongKeyFailsAuthentication(t *testing.T) {
	kc := NewKeychain()

	key := bytes.Repeat([]byte{0x11}, CipherKeyLen)
	wrong := bytes.Repeat([]byte{0x22}, CipherKeyLen)

	ciphertext, nonce, err := kc.Seal([]byte("msg"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err := kc.Open(ciphertext, nonce, wrong); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestOpen_TamperedCiphertextFailsAuthentication(t *testing.T) {
	kc := NewKeychain()

	key := bytes.Repeat([]byte{0x11}, CipherKeyLen)
	ciphertext, nonce, err := kc.Seal([]byte("msg"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	ciphertext[0] ^= 0x01
	if _, err := kc.Open(ciphertext, nonce, key); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestSealAnonymous_RoundTrip(t *testing.T) {
	kc := NewKeychain()

	secret, err := kc.GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret error: %v", err)
	}
	pub, err := kc.PublicKey(secret)
	if err != nil {
		t.Fatalf("PublicKey error: %v", err)
	}

	sealed, err := kc.SealAnonymous([]byte("garage wallbox"), pub)
	if err != nil {
		t.Fatalf("SealAnonymous error: %v", err)
	}

	opened, err := kc.OpenAnonymous(sealed, pub, secret)
	if err != nil {
		t.Fatalf("OpenAnonymous error: %v", err)
	}
	if !bytes.Equal(opened, []byte("garage wallbox")) {
		t.Fatalf("round trip mismatch: got %q", opened)
	}
}

func TestOpenAnonymous_WrongSecret(t *testing.T) {
	kc := NewKeychain()

	secret, _ := kc.GenerateSecret()
	pub, _ := kc.PublicKey(secret)
	other, _ := kc.GenerateSecret()

	sealed, err := kc.SealAnonymous([]byte("name"), pub)
	if err != nil {
		t.Fatalf("SealAnonymous error: %v", err)
	}

	if _, err := kc.OpenAnonymous(sealed, pub, other); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}

func TestOpen_BadSizes(t *testing.T) {
	kc := NewKeychain()

	if _, err := kc.Open([]byte("ct"), make([]byte, NonceLen), []byte("short-key")); !errors.Is(err, ErrBadKeySize) {
		t.Fatalf("expected ErrBadKeySize, got %v", err)
	}
	if _, err := kc.Open([]byte("ct"), []byte("short"), make([]byte, CipherKeyLen)); !errors.Is(err, ErrBadNonceSize) {
		t.Fatalf("expected ErrBadNonceSize, got %v", err)
	}
}
