package helpers

import (
	"context"
	"testing"
)

func TestRedisKeys(t *testing.T) {
	if got, want := SessionKey(42), "user:session:42"; got != want {
		t.Errorf("SessionKey = %q, want %q", got, want)
	}
	if got, want := SummaryKey(42), "user:summary:42"; got != want {
		t.Errorf("SummaryKey = %q, want %q", got, want)
	}
	if SessionKey(1) == SummaryKey(1) {
		t.Error("session and summary keys collide")
	}
}

func TestRedisDelNoKeys(t *testing.T) {
	if err := RedisDel(context.Background(), nil); err != nil {
		t.Errorf("RedisDel with no keys = %v, want nil", err)
	}
}
