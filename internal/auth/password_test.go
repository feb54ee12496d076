package auth

import (
	"strings"
	"testing"
)

func TestEncodeAndVerifyPassword(t *testing.T) {
	encoded, err := EncodePassword("s3cret-pass")
	if err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Fatalf("unexpected encoding %q", encoded)
	}
	if !VerifyPassword("s3cret-pass", encoded) {
		t.Fatal("expected password to verify")
	}
	if VerifyPassword("wrong-pass", encoded) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestEncodePasswordSaltsDiffer(t *testing.T) {
	first, err := EncodePassword("same")
	if err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}
	second, err := EncodePassword("same")
	if err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}
	if first == second {
		t.Fatal("expected different salts to produce different encodings")
	}
}

func TestVerifyPasswordRejectsMalformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plain",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
	} {
		if VerifyPassword("anything", encoded) {
			t.Fatalf("expected %q to be rejected", encoded)
		}
	}
}
