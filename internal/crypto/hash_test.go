package crypto

import (
	"errors"
	"strings"
	"testing"
)

// testHashParams keeps argon2 cheap in tests.
func testHashParams() HashParams {
	return HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHasherHashFormat(t *testing.T) {
	hash, err := NewHasher(DefaultHashParams()).Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("algorithm = %q, want argon2id", parts[1])
	}
	if parts[2] != "v=19" {
		t.Errorf("version = %q, want v=19", parts[2])
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("params = %q, want m=65536,t=3,p=2", parts[3])
	}
}

func TestHasherVerify(t *testing.T) {
	h := NewHasher(testHashParams())
	hash, err := h.Hash("my-secure-password")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct", "my-secure-password", true},
		{"wrong", "wrong-password", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Verify(tt.password, hash)
			if err != nil {
				t.Fatalf("Verify() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasherVerifyUsesEncodedParams(t *testing.T) {
	hash, err := NewHasher(testHashParams()).Hash("pw")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	ok, err := NewHasher(DefaultHashParams()).Verify("pw", hash)
	if err != nil || !ok {
		t.Errorf("Verify() = %v, %v; want true, nil", ok, err)
	}
}

func TestHasherSaltsDiffer(t *testing.T) {
	h := NewHasher(testHashParams())
	a, _ := h.Hash("same-password")
	b, _ := h.Hash("same-password")
	if a == b {
		t.Error("identical hashes for same password (salt should differ)")
	}
}

func TestHasherVerifyMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"not phc", "invalid-hash-format", ErrInvalidHashFormat},
		{"wrong algorithm", "$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$a2V5", ErrInvalidHashFormat},
		{"wrong version", "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5", ErrIncompatibleVersion},
		{"bad params", "$argon2id$v=19$bogus$c2FsdA$a2V5", ErrInvalidHashFormat},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5", ErrInvalidHashFormat},
	}

	h := NewHasher(testHashParams())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := h.Verify("pw", tt.encoded); !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
