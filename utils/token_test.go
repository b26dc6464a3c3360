package utils

import "testing"

func TestGenerateResetTokenIsRandom(t *testing.T) {
	a, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}
	b, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}

	if len(a) != 40 {
		t.Errorf("token length = %d, want 40 hex chars", len(a))
	}
	if a == b {
		t.Error("two generated tokens are identical")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("same input hashed differently")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("different inputs hashed identically")
	}
	if len(HashToken("abc")) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(HashToken("abc")))
	}
}
