package helpers

import (
	"testing"
	"time"
)

func TestGenerateAndParseTokens(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	access, aexp, err := m.GenerateAccessToken(7, "sid-1")
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	if !aexp.After(time.Now()) {
		t.Error("access expiry not in the future")
	}

	claims, err := m.ParseAccessToken(access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != 7 || claims.SessionID != "sid-1" {
		t.Errorf("claims = uid %d sid %q, want uid 7 sid sid-1", claims.UserID, claims.SessionID)
	}

	refresh, _, err := m.GenerateRefreshToken(7, "sid-1")
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	if _, err := m.ParseRefreshToken(refresh); err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
}

func TestParseRejectsCrossSecret(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	refresh, _, err := m.GenerateRefreshToken(7, "sid-1")
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}
	// A refresh token must not validate as an access token.
	if _, err := m.ParseAccessToken(refresh); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	access, _, err := m.GenerateAccessToken(7, "sid-1")
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	if _, err := m.ParseAccessToken(access); err == nil {
		t.Fatal("expired token accepted")
	}
}
