// Package recovery builds and validates the downloadable recovery
// artifact: the user's raw secret bound to their email by an integrity
// hash, independent of any password. Restoring it is the only way to
// keep existing device pairings alive through a forgotten password.
package recovery

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when an uploaded artifact cannot be
	// parsed or is missing required fields.
	ErrValidation = errors.New("invalid recovery data")

	// ErrIntegrity is returned when the recomputed binding hash does not
	// match the stored one. The artifact must be discarded; a secret
	// from a failed check is never partially trusted.
	ErrIntegrity = errors.New("recovery data integrity check failed")
)

// Artifact is the JSON document written to the recovery file. Secret and
// Hash are standard base64; Hash covers the email concatenated with the
// base64 form of the secret, which ties the secret to exactly one
// account.
type Artifact struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
	Hash   string `json:"hash"`
}

// Build constructs the artifact for (secret, email).
func Build(secret []byte, email string) Artifact {
	secretB64 := base64.StdEncoding.EncodeToString(secret)
	return Artifact{
		Email:  email,
		Secret: secretB64,
		Hash:   bindingHash(email, secretB64),
	}
}

// Serialize renders the artifact as the JSON text the user downloads.
func Serialize(a Artifact) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("serialize recovery data: %w", err)
	}
	return data, nil
}

// Filename derives the deterministic download name for email, so a
// repeated download is recognizable as the same account's file:
// '.' becomes '_' and '@' becomes '_at_'.
func Filename(email string) string {
	name := strings.ReplaceAll(email, ".", "_")
	name = strings.ReplaceAll(name, "@", "_at_")
	return name + "_recovery_data"
}

// Restore parses rawText, verifies the binding hash, and returns the raw
// secret. Any parse failure or missing field yields [ErrValidation]; a
// hash mismatch yields [ErrIntegrity].
func Restore(rawText []byte) ([]byte, error) {
	var a Artifact
	if err := json.Unmarshal(rawText, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if a.Email == "" || a.Secret == "" || a.Hash == "" {
		return nil, fmt.Errorf("%w: missing required field", ErrValidation)
	}

	if bindingHash(a.Email, a.Secret) != a.Hash {
		return nil, ErrIntegrity
	}

	secret, err := base64.StdEncoding.DecodeString(a.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return secret, nil
}

func bindingHash(email, secretB64 string) string {
	h := sha256.New()
	h.Write([]byte(email))
	h.Write([]byte(secretB64))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
