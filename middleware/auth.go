package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2/jwt"
)

type contextKey string

const ClerkIDKey contextKey = "clerkID"

// AdminAuthMiddleware guards operator routes with a Clerk session token.
// When adminIDs is non-empty the token subject must be one of them.
func AdminAuthMiddleware(adminIDs []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		allowed[id] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization format. Use 'Bearer <token>'")
				return
			}

			claims, err := jwt.Verify(r.Context(), &jwt.VerifyParams{
				Token: token,
			})
			if err != nil {
				log.Printf("AdminAuthMiddleware: token verification failed: %v", err)
				respondWithError(w, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
				return
			}

			if len(allowed) > 0 && !allowed[claims.Subject] {
				log.Printf("AdminAuthMiddleware: %s is not an admin", claims.Subject)
				respondWithError(w, http.StatusForbidden, "Admin access required")
				return
			}

			ctx := context.WithValue(r.Context(), ClerkIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClerkID extracts the verified Clerk user id from context.
func GetClerkID(ctx context.Context) (string, bool) {
	clerkID, ok := ctx.Value(ClerkIDKey).(string)
	return clerkID, ok
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
