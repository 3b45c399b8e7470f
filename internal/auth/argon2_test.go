package auth

import (
	"strings"
	"testing"
)

func TestHashKey_Format(t *testing.T) {
	t.Parallel()

	key := "iv_live_abc123_secretsecretsecretsecret1234"

	hash, err := HashKey(key)
	if err != nil {
		t.Fatalf("HashKey failed: %v", err)
	}

	// Verify PHC format: $argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("Hash should be in PHC format, got: %s", hash)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Errorf("Hash should have 6 parts, got: %d", len(parts))
	}

	// Verify parameters are correct
	if parts[1] != "argon2id" {
		t.Errorf("Expected argon2id algorithm, got: %s", parts[1])
	}
	if parts[2] != "v=19" {
		t.Errorf("Expected v=19, got: %s", parts[2])
	}
	if parts[3] != "m=65536,t=3,p=4" {
		t.Errorf("Expected m=65536,t=3,p=4, got: %s", parts[3])
	}
}

func TestHashKey_Uniqueness(t *testing.T) {
	t.Parallel()

	key := "the_same_key_12345"

	hash1, err := HashKey(key)
	if err != nil {
		t.Fatalf("HashKey failed: %v", err)
	}

	hash2, err := HashKey(key)
	if err != nil {
		t.Fatalf("HashKey failed: %v", err)
	}

	// Same key should produce different hashes (different salts)
	if hash1 == hash2 {
		t.Error("Same key should produce different hashes due to random salt")
	}

	// But both should be valid and verify correctly
	match1, _ := VerifyKey(key, hash1)
	match2, _ := VerifyKey(key, hash2)

	if !match1 || !match2 {
		t.Error("Both hashes should verify correctly")
	}
}

func TestVerifyKey_Correct(t *testing.T) {
	t.Parallel()

	key := "iv_live_abc123_secretsecretsecretsecret1234"

	hash, err := HashKey(key)
	if err != nil {
		t.Fatalf("HashKey failed: %v", err)
	}

	match, err := VerifyKey(key, hash)
	if err != nil {
		t.Fatalf("VerifyKey failed: %v", err)
	}
	if !match {
		t.Error("Correct key should match")
	}
}

func TestVerifyKey_Incorrect(t *testing.T) {
	t.Parallel()

	key := "iv_live_abc123_secretsecretsecretsecret1234"
	wrongKey := "iv_live_abc123_wrongwrongwrongwrongwrong1234"

	hash, err := HashKey(key)
	if err != nil {
		t.Fatalf("HashKey failed: %v", err)
	}

	// Wrong key should not verify (but no error)
	match, err := VerifyKey(wrongKey, hash)
	if err != nil {
		t.Fatalf("VerifyKey should not return error for wrong key: %v", err)
	}
	if match {
		t.Error("Wrong key should not match")
	}
}

func TestVerifyKey_InvalidHashFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hash    string
		wantErr error
	}{
		{"empty", "", ErrInvalidHash},
		{"wrong format", "not-a-hash", ErrInvalidHash},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=4$salt$hash", ErrInvalidHash},
		{"missing parts", "$argon2id$v=19$m=65536", ErrInvalidHash},
		{"wrong part count", "$argon2id$v=19", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := VerifyKey("key", tt.hash)
			if err != tt.wantErr {
				t.Errorf("VerifyKey with %q error = %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestVerifyKey_WrongVersion(t *testing.T) {
	t.Parallel()

	// Construct a hash with v=18 instead of v=19
	invalidVersionHash := "$argon2id$v=18$m=65536,t=3,p=4$c29tZXNhbHRoZXJl$c29tZWhhc2hoZXJl"

	match, err := VerifyKey("key", invalidVersionHash)
	if err != ErrIncompatibleVersion {
		t.Errorf("Expected ErrIncompatibleVersion, got: %v", err)
	}
	if match {
		t.Error("Should not match with incompatible version")
	}
}

func TestQuickHash_Deterministic(t *testing.T) {
	t.Parallel()

	input := "iv_live_abc123_secretsecretsecretsecret1234"

	hash1 := QuickHash(input)
	hash2 := QuickHash(input)

	if hash1 != hash2 {
		t.Error("Same input should produce same hash")
	}
}

func TestQuickHash_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"api key", "iv_live_abc123_secretsecretsecretsecret1234"},
		{"short string", "abc"},
		{"empty string", ""},
		{"long string", strings.Repeat("x", 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hash := QuickHash(tt.input)
			if len(hash) != 32 {
				t.Errorf("Hash should be 32 chars, got: %d", len(hash))
			}
		})
	}
}

func TestQuickHash_Different(t *testing.T) {
	t.Parallel()

	hash1 := QuickHash("input-one")
	hash2 := QuickHash("input-two")

	if hash1 == hash2 {
		t.Error("Different input should produce different hash")
	}
}
