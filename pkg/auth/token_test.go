package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/config"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "pawtraits"}
}

func mintToken(t *testing.T, cfg config.JWTConfig, claims AccessTokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseAccessTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	now := time.Now()

	signed := mintToken(t, cfg, AccessTokenClaims{
		UserID:   userID,
		Email:    "partner@example.com",
		UserType: enums.UserTypePartner,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	claims, err := ParseAccessToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("unexpected user id %s", claims.UserID)
	}
	if claims.UserType != enums.UserTypePartner {
		t.Fatalf("unexpected user type %s", claims.UserType)
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	signed := mintToken(t, cfg, AccessTokenClaims{
		UserID:   uuid.New(),
		UserType: enums.UserTypeCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "somebody-else",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected issuer mismatch error")
	}
}

func TestParseAccessTokenRejectsUnknownUserType(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	signed := mintToken(t, cfg, AccessTokenClaims{
		UserID:   uuid.New(),
		UserType: enums.UserType("robot"),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	if _, err := ParseAccessToken(cfg, signed); err == nil {
		t.Fatal("expected user type validation error")
	}
}
