package middleware

import (
	"context"
	"net/http"
	"strings"

	"blog-platform-service/internal/delivery/http/response"
)

type TokenVerifier interface {
	Verify(tokenString string) (int64, error)
}

type ctxKey struct{}

var userIDKey ctxKey

func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// Auth requires a valid bearer token and stores the authenticated user id
// on the request context.
func Auth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.Error(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header || tokenString == "" {
				response.Error(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
		})
	}
}
