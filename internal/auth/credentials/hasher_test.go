package credentials

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct-pw" {
		t.Fatal("hash equals the plaintext password")
	}

	if err := VerifyPassword(hash, "correct-pw"); err != nil {
		t.Errorf("VerifyPassword with right password: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-pw-x"); err == nil {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestHashPasswordRejectsShortPasswords(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Error("HashPassword accepted a 5-char password")
	}
}
