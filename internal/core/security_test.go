// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces PHC encoded argon2id hash", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}

		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Errorf("unexpected hash prefix: %s", hash)
		}

		parts := strings.Split(hash, "$")
		if len(parts) != 6 {
			t.Errorf("expected 6 hash segments, got %d", len(parts))
		}
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := HashPassword("same-password")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}
		second, err := HashPassword("same-password")
		if err != nil {
			t.Fatalf("HashPassword: %v", err)
		}

		if first == second {
			t.Error("expected distinct salts to produce distinct hashes")
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	t.Run("accepts correct password", func(t *testing.T) {
		valid, err := VerifyPassword("s3cret-passphrase", hash)
		if err != nil {
			t.Fatalf("VerifyPassword: %v", err)
		}
		if !valid {
			t.Error("expected correct password to verify")
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		valid, err := VerifyPassword("wrong-passphrase", hash)
		if err != nil {
			t.Fatalf("VerifyPassword: %v", err)
		}
		if valid {
			t.Error("expected wrong password to fail")
		}
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		if _, err := VerifyPassword("anything", "not-a-hash"); err == nil {
			t.Error("expected error for malformed hash")
		}
	})
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("valid-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	t.Run("verifies against stored hash", func(t *testing.T) {
		valid, err := VerifyPasswordTimingSafe("valid-password", &hash)
		if err != nil {
			t.Fatalf("VerifyPasswordTimingSafe: %v", err)
		}
		if !valid {
			t.Error("expected stored hash to verify")
		}
	})

	t.Run("nil hash always fails without error", func(t *testing.T) {
		valid, err := VerifyPasswordTimingSafe("valid-password", nil)
		if err != nil {
			t.Fatalf("VerifyPasswordTimingSafe: %v", err)
		}
		if valid {
			t.Error("expected nil stored hash to fail verification")
		}
	})

	t.Run("empty hash always fails without error", func(t *testing.T) {
		empty := ""
		valid, err := VerifyPasswordTimingSafe("valid-password", &empty)
		if err != nil {
			t.Fatalf("VerifyPasswordTimingSafe: %v", err)
		}
		if valid {
			t.Error("expected empty stored hash to fail verification")
		}
	})
}
