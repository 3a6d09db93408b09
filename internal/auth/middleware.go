package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const claimsContextKey contextKey = "authClaims"

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RequireAuth validates the Bearer access token and rejects requests
// whose account is not in the credential store.
func (s *Service) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := s.authenticate(w, r)
			if !ok {
				return
			}
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin is RequireAuth plus an ADMIN role check.
func (s *Service) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := s.authenticate(w, r)
			if !ok {
				return
			}
			if !hasRole(claims.Roles, RoleAdmin) {
				writeJSONError(w, http.StatusForbidden, "Administrator role required")
				return
			}
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Service) authenticate(w http.ResponseWriter, r *http.Request) (*AccessTokenCustomClaims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		writeJSONError(w, http.StatusUnauthorized, "Authorization header is required")
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		writeJSONError(w, http.StatusUnauthorized, "Invalid token format")
		return nil, false
	}

	claims, err := s.jwtManager.ValidateAccessToken(tokenString)
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		return nil, false
	}

	if _, ok := s.credentials.Lookup(claims.Username); !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unknown account")
		return nil, false
	}
	return claims, true
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// ClaimsFromContext returns the authenticated claims, when present.
func ClaimsFromContext(ctx context.Context) (*AccessTokenCustomClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*AccessTokenCustomClaims)
	return claims, ok
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
