package token

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// Fixed geometry of the decoded token buffer. Device firmware splits the
// buffer at these offsets, so they are part of the wire format.
const (
	serverTokenLen = 32
	userIDLen      = 36
	pubKeyLen      = 32
	bindingHashLen = 32
)

// bindingSalt is the fixed all-zero salt of the binding hash. The hash
// is not a password hash: the salt is public on purpose. Its job is to
// tie the server token to one account and public key, and to make
// guessing which server token a given string encodes expensive.
var bindingSalt = make([]byte, 8)

// Encode derives the shareable authorization token string from the
// 32-byte server-issued random token, the 36-byte textual user UUID, the
// user's 32-byte X25519 public key, and the account email. The output is
// a pure function of its inputs: calling it twice with the same values
// yields the same string, which lets callers cache built tokens instead
// of re-deriving them.
func Encode(serverToken, userID, userPubKey, userEmail []byte) (string, error) {
	if len(serverToken) != serverTokenLen {
		return "", fmt.Errorf("server token must be %d bytes, got %d", serverTokenLen, len(serverToken))
	}
	if len(userID) != userIDLen {
		return "", fmt.Errorf("user id must be %d bytes, got %d", userIDLen, len(userID))
	}
	// The buffer carries the canonical textual form; firmware parses it
	// back out at a fixed offset.
	if _, err := uuid.Parse(string(userID)); err != nil {
		return "", fmt.Errorf("user id is not a valid uuid: %w", err)
	}
	if len(userPubKey) != pubKeyLen {
		return "", fmt.Errorf("public key must be %d bytes, got %d", pubKeyLen, len(userPubKey))
	}

	buf := make([]byte, 0, serverTokenLen+userIDLen+pubKeyLen+len(userEmail)+bindingHashLen)
	buf = append(buf, serverToken...)
	buf = append(buf, userID...)
	buf = append(buf, userPubKey...)
	buf = append(buf, userEmail...)

	// Same Argon2id cost as the credential derivations: 2 iterations,
	// 19 MiB, single thread.
	hash := argon2.IDKey(buf, bindingSalt, 2, 19*1024, 1, bindingHashLen)
	buf = append(buf, hash...)

	return EncodeBase58(buf), nil
}
