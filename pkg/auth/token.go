package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// ParseAccessToken validates the platform-issued JWT and returns typed claims.
func ParseAccessToken(cfg config.JWTConfig, tokenString string) (*AccessTokenClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &AccessTokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}

	if !claims.UserType.IsValid() {
		return nil, fmt.Errorf("invalid user type %q in token", claims.UserType)
	}

	return claims, nil
}
