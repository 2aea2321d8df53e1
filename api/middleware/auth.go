package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pawtraits-dev/pawtraits-backend/api/responses"
	pkgAuth "github.com/pawtraits-dev/pawtraits-backend/pkg/auth"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/config"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
)

// Auth validates the platform-issued bearer token and seeds the request
// context with the claims and the raw token.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			ctx, err := contextWithClaims(r.Context(), cfg, logg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth seeds claims when a valid token is present and passes
// anonymous requests through untouched. Invalid tokens are still rejected.
func OptionalAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx, err := contextWithClaims(r.Context(), cfg, logg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUserType guards a route to callers whose token carries one of the
// allowed user types. Must run after Auth.
func RequireUserType(logg *logger.Logger, allowed ...enums.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := UserTypeFromContext(r.Context())
			for _, candidate := range allowed {
				if string(candidate) == current {
					next.ServeHTTP(w, r)
					return
				}
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient permissions"))
		})
	}
}

func contextWithClaims(ctx context.Context, cfg config.JWTConfig, logg *logger.Logger, token string) (context.Context, error) {
	claims, err := pkgAuth.ParseAccessToken(cfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}

	ctx = context.WithValue(ctx, ctxUserID, claims.UserID.String())
	ctx = context.WithValue(ctx, ctxUserType, string(claims.UserType))
	ctx = context.WithValue(ctx, ctxEmail, claims.Email)
	ctx = context.WithValue(ctx, ctxAuthToken, token)

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"user_id":   claims.UserID.String(),
			"user_type": string(claims.UserType),
		})
	}

	return ctx, nil
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
