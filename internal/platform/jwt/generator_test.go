package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestGenerator_GenerateToken は生成されたトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)
	gen.now = func() time.Time { return time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC) }

	tokenStr, err := gen.GenerateToken(42, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenStr == "" {
		t.Fatal("expected non-empty token")
	}

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Error("expected token to be valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected MapClaims")
	}

	if sub, ok := claims["sub"].(float64); !ok || uint(sub) != 42 {
		t.Errorf("expected sub 42, got %v", claims["sub"])
	}
	if email, ok := claims["email"].(string); !ok || email != "user@example.com" {
		t.Errorf("expected email, got %v", claims["email"])
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if want := time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC).Unix(); iat != want {
		t.Errorf("iat = %d, want %d", iat, want)
	}
	if exp-iat != int64(time.Hour/time.Second) {
		t.Errorf("exp-iat = %d, want 3600", exp-iat)
	}
}

// TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens は異なるユーザーに対して異なるトークンが生成されることを検証します。
func TestGenerator_GenerateToken_DifferentUsersProduceDifferentTokens(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, _ := gen.GenerateToken(1, "user1@example.com")
	token2, _ := gen.GenerateToken(2, "user2@example.com")

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
