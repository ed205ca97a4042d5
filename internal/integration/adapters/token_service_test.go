package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(ctx, userID, "ana@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateAccessToken(ctx, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("expected email, got %q", claims.Email)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("test-secret").(*tokenService)
	userID := uuid.New()

	valid, _ := svc.GenerateAccessToken(ctx, userID, "")
	otherSecret, _ := NewTokenService("other-secret").GenerateAccessToken(ctx, userID, "")

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, CustomClaims{
		UserID:    userID.String(),
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	refreshToken, _ := refresh.SignedString([]byte("test-secret"))

	expired := &tokenService{
		secret:   svc.secret,
		duration: time.Minute,
		now:      func() time.Time { return time.Now().Add(-time.Hour) },
	}
	expiredToken, _ := expired.GenerateAccessToken(ctx, userID, "")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered", token: valid[:len(valid)-2] + "xx"},
		{name: "wrong secret", token: otherSecret},
		{name: "refresh token", token: refreshToken},
		{name: "expired", token: expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateAccessToken(ctx, tt.token); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}
