package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "test", 42, TokenAccess, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.TokenType != TokenAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenAccess)
	}
	if claims.ID == "" {
		t.Error("token ID (jti) is empty")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "test", 1, TokenAccess, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("ParseToken with wrong secret error = nil, want error")
	}
}

func TestParseToken_Expired(t *testing.T) {
	claims := &Claims{
		UserID:    1,
		TokenType: TokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Error("ParseToken with expired token error = nil, want error")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not-a-token"); err == nil {
		t.Error("ParseToken with garbage error = nil, want error")
	}
}

func TestTokenTypesDiffer(t *testing.T) {
	refresh, err := GenerateToken(testSecret, "test", 1, TokenRefresh, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}

	claims, err := ParseToken(testSecret, refresh)
	if err != nil {
		t.Fatalf("ParseToken error = %v", err)
	}
	if claims.TokenType != TokenRefresh {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenRefresh)
	}
}
