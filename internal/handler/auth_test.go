package handler

import (
	"testing"
	"time"

	"autokeep/api/internal/config"
	"autokeep/api/internal/model"
)

func TestGenerateAndParseToken(t *testing.T) {
	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	h := NewAuthHandler(nil, nil, cfg)

	user := &model.User{ID: 42, Username: "alice"}

	token, err := h.generateToken(user)
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := ParseToken(token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID, ok := claims["user_id"].(float64); !ok || uint(userID) != 42 {
		t.Fatalf("user_id mismatch: %#v", claims["user_id"])
	}
	if username, ok := claims["username"].(string); !ok || username != "alice" {
		t.Fatalf("username mismatch: %#v", claims["username"])
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Fatalf("expected exp in future")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	h := NewAuthHandler(nil, nil, cfg)

	user := &model.User{ID: 1, Username: "alice"}

	token, err := h.generateToken(user)
	if err != nil {
		t.Fatalf("generateToken: %v", err)
	}

	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token", "test-secret"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
