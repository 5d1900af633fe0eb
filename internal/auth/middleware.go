package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

type contextKey struct{}

var userIDKey contextKey

// Middleware returns a huma operation middleware that requires a bearer
// token and stores the resolved user id in the request context.
func Middleware(api huma.API, secret string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Not authorized, no token provided")
			return
		}

		userID, err := ParseToken(secret, token)
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		next(huma.WithValue(ctx, userIDKey, userID))
	}
}

// UserID returns the authenticated user id stored by Middleware.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
