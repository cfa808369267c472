// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"strings"
	"testing"
)

// cheap parameters keep the tests fast
func testHasher() PasswordHasher {
	return NewPasswordHasher(8*1024, 1)
}

func TestHash_ProducesPHCString(t *testing.T) {
	h := testHasher()

	encoded, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=4$") {
		t.Fatalf("unexpected hash prefix: %q", encoded)
	}
	if strings.Contains(encoded, "secret1") {
		t.Fatalf("hash must not contain the plaintext password")
	}
	if parts := strings.Split(encoded, "$"); len(parts) != 6 {
		t.Fatalf("hash has %d parts, want 6", len(parts))
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := testHasher()

	h1, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected different hashes for the same password")
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	h := testHasher()

	// 100 characters exceeds bcrypt's 72-byte input limit
	long := strings.Repeat("p", 99) + "X"
	encoded, err := h.Hash(long)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify(long, encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify")
	}

	ok, err = h.Verify(strings.Repeat("p", 99)+"Y", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatalf("expected a different last character to fail verification")
	}
}

func TestVerify_UsesParametersFromHash(t *testing.T) {
	encoded, err := NewPasswordHasher(8*1024, 2).Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := NewPasswordHasher(16*1024, 1).Verify("secret1", encoded)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected verification with parameters taken from the hash")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	h := testHasher()

	tests := []struct {
		name    string
		encoded string
		want    error
	}{
		{name: "empty", encoded: "", want: ErrInvalidHashFormat},
		{name: "plaintext", encoded: "secret1", want: ErrInvalidHashFormat},
		{name: "bcrypt", encoded: "$2a$10$abcdefghijklmnopqrstuv", want: ErrInvalidHashFormat},
		{name: "other variant", encoded: "$argon2i$v=19$m=8,t=1,p=1$c2FsdA$a2V5", want: ErrUnsupportedVariant},
		{name: "other version", encoded: "$argon2id$v=16$m=8,t=1,p=1$c2FsdA$a2V5", want: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$x$c2FsdA$a2V5", want: ErrInvalidHashFormat},
		{name: "bad salt", encoded: "$argon2id$v=19$m=8,t=1,p=1$!!$a2V5", want: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("secret1", tt.encoded)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Verify error = %v, want %v", err, tt.want)
			}
			if ok {
				t.Fatalf("malformed hash must never verify")
			}
		})
	}
}

func TestNewPasswordHasher_Defaults(t *testing.T) {
	h, ok := NewPasswordHasher(0, 0).(*argonHasher)
	if !ok {
		t.Fatalf("unexpected implementation type")
	}
	if h.memory != DefaultMemory || h.time != DefaultIterations {
		t.Fatalf("defaults not applied: memory=%d time=%d", h.memory, h.time)
	}
}
