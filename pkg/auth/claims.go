package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
)

// AccessTokenClaims is the typed shape of the JWT the platform's auth
// service issues to storefront and partner-portal users. This service only
// verifies and reads tokens; it never mints them.
type AccessTokenClaims struct {
	UserID   uuid.UUID      `json:"user_id"`
	Email    string         `json:"email"`
	UserType enums.UserType `json:"user_type"`
	jwt.RegisteredClaims
}
