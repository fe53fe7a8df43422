package helpers

import (
	"errors"
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash equals plaintext")
	}
	if !CompareHashAndPassword(hash, "hunter2hunter2") {
		t.Error("correct password rejected")
	}
	if CompareHashAndPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestCompareHashAndPasswordGarbageHash(t *testing.T) {
	if CompareHashAndPassword("not-a-bcrypt-hash", "anything") {
		t.Error("garbage hash accepted")
	}
}

func TestHashPasswordOverlongInput(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := HashPassword(string(long)); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("err = %v, want ErrPasswordTooLong", err)
	}
}
