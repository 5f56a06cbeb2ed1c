package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/alumnifc/clubledger/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// OperatorKey is the context key for the authenticated operator name.
const OperatorKey contextKey = "operator"

// GetOperator extracts the operator name from the context.
// Returns empty string if auth is disabled or the call is anonymous.
func GetOperator(ctx context.Context) string {
	name, _ := ctx.Value(OperatorKey).(string)
	return name
}

// WithOperator returns a copy of ctx carrying the operator name.
func WithOperator(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, OperatorKey, name)
}

// RequireAuth returns an interceptor that validates bearer tokens on every
// procedure except the public ones (typically the login procedure).
func RequireAuth(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if open[req.Spec().Procedure] {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithOperator(ctx, claims.Operator), req)
		}
	}
}
