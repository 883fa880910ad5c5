package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/dom/book-catalog/internal/api/handlers"
	"github.com/dom/book-catalog/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth guards protected routes. It requires a "Bearer <token>" header,
// verifies the token's signature and expiry, and resolves the embedded id
// to an existing account before the handler runs. Any failure short-circuits
// with 401 and no handler is invoked.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userIDStr, ok := (*claims)["id"].(string)
			if !ok {
				log.Printf("ERROR [middleware.Auth] missing 'id' claim in token")
				handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] failed to parse user ID: %v", err)
				handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			// The token must still name a real account
			if _, err := authService.GetUserByID(r.Context(), userID); err != nil {
				log.Printf("ERROR [middleware.Auth] no user for token id %s: %v", userID, err)
				handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
