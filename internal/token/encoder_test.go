package token

import (
	"bytes"
	"strings"
	"testing"
)

func validInputs() (serverToken, userID, pubKey, email []byte) {
	serverToken = bytes.Repeat([]byte{0x10}, serverTokenLen)
	userID = []byte("0198d1f2-1234-7abc-8def-0123456789ab")
	pubKey = bytes.Repeat([]byte{0x20}, pubKeyLen)
	email = []byte("user@example.com")
	return
}

func TestEncode_Deterministic(t *testing.T) {
	serverToken, userID, pubKey, email := validInputs()

	first, err := Encode(serverToken, userID, pubKey, email)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	second, err := Encode(serverToken, userID, pubKey, email)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	if first != second {
		t.Fatalf("same inputs must yield the same token")
	}
}

func TestEncode_InputSensitivity(t *testing.T) {
	serverToken, userID, pubKey, email := validInputs()

	base, err := Encode(serverToken, userID, pubKey, email)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	otherToken := bytes.Repeat([]byte{0x11}, serverTokenLen)
	changed, err := Encode(otherToken, userID, pubKey, email)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if base == changed {
		t.Fatalf("different server tokens must yield different strings")
	}

	otherEmail := []byte("other@example.com")
	changed, err = Encode(serverToken, userID, pubKey, otherEmail)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if base == changed {
		t.Fatalf("different emails must yield different strings")
	}
}

func TestEncode_OnlyAlphabetCharacters(t *testing.T) {
	serverToken, userID, pubKey, email := validInputs()

	out, err := Encode(serverToken, userID, pubKey, email)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	for _, c := range out {
		if !strings.ContainsRune(alphabet, c) {
			t.Fatalf("output contains non-alphabet character %q", c)
		}
	}
}

func TestEncode_RejectsWrongSizes(t *testing.T) {
	serverToken, userID, pubKey, email := validInputs()

	if _, err := Encode(serverToken[:16], userID, pubKey, email); err == nil {
		t.Fatalf("expected error for short server token")
	}
	if _, err := Encode(serverToken, userID[:10], pubKey, email); err == nil {
		t.Fatalf("expected error for short user id")
	}
	if _, err := Encode(serverToken, userID, pubKey[:8], email); err == nil {
		t.Fatalf("expected error for short public key")
	}

	notAUUID := []byte(strings.Repeat("x", 36))
	if _, err := Encode(serverToken, notAUUID, pubKey, email); err == nil {
		t.Fatalf("expected error for malformed user id")
	}
}
