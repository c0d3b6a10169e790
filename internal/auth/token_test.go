package auth

import (
	"testing"
	"time"

	"github.com/kamchatour/market-backend/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	raw, err := tokens.Issue(42, model.RoleOperator)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, err := tokens.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID=%d want 42", userID)
	}
}

func TestTokenFailsClosed(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	valid, err := tokens.Issue(7, model.RoleTraveler)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	expired := NewTokens("secret", -time.Minute)
	expiredToken, err := expired.Issue(7, model.RoleTraveler)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}

	tests := []struct {
		name   string
		tokens *Tokens
		raw    string
	}{
		{"garbage", tokens, "not-a-token"},
		{"empty", tokens, ""},
		{"wrong secret", NewTokens("other", time.Hour), valid},
		{"expired", tokens, expiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.tokens.Parse(tt.raw); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22222")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22222" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "hunter22222") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
