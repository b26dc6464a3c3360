package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	userID, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseJWT("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(7)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ParseJWT(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}
