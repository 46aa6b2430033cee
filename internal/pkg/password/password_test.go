package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	Cost = bcrypt.MinCost
	m.Run()
}

func TestHashAndVerify(t *testing.T) {
	cases := []string{"pw1", "admin123", "", "ünïcødé pässwörd", "with spaces and symbols !@#$%"}
	for _, plain := range cases {
		hash, err := Hash(plain)
		if err != nil {
			t.Fatalf("hash %q: %v", plain, err)
		}
		if hash == plain {
			t.Fatalf("hash must not equal plaintext")
		}
		if !Verify(plain, hash) {
			t.Fatalf("expected %q to verify against its own hash", plain)
		}
		if Verify(plain+"x", hash) {
			t.Fatalf("expected %q to be rejected", plain+"x")
		}
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	first, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	second, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if first == second {
		t.Fatalf("expected two hashes of the same password to differ")
	}
	if !Verify("same-password", first) || !Verify("same-password", second) {
		t.Fatalf("expected both hashes to verify")
	}
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	if Verify("secret", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed hash to be rejected")
	}
}
