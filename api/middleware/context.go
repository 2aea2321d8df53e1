package middleware

import "context"

type contextKey string

const (
	ctxUserID    contextKey = "user_id"
	ctxUserType  contextKey = "user_type"
	ctxEmail     contextKey = "email"
	ctxAuthToken contextKey = "auth_token"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func UserTypeFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserType).(string); ok {
		return v
	}
	return ""
}

func EmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxEmail).(string); ok {
		return v
	}
	return ""
}

// AuthTokenFromContext returns the raw bearer token so handlers can forward
// it to the platform's cart validator.
func AuthTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAuthToken).(string); ok {
		return v
	}
	return ""
}
