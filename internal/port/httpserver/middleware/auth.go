package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/landsetu/landsetu/internal/platform/logger"
	"github.com/landsetu/landsetu/internal/repository"
)

// Auth validates the bearer token and puts the caller's session into the
// request context. The token must parse, verify against the secret, and
// match the session token cached for the user, so a logged-out token is
// rejected even before its expiry.
func Auth(jwtSecret string, sessions repository.SessionRepository, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				unauthorized(w, "Authorization required")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "Invalid or expired token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, "Invalid token claims")
				return
			}

			session := Session{
				UserID: stringClaim(claims, "sub"),
				Name:   stringClaim(claims, "name"),
				Email:  stringClaim(claims, "email"),
			}
			if session.UserID == "" {
				unauthorized(w, "Invalid token claims")
				return
			}

			cached, err := sessions.Get(r.Context(), session.UserID)
			if err != nil {
				// no cached session means logged out; anything else is a
				// session-store failure, not the caller's fault
				if !errors.Is(err, repository.ErrNotFound) {
					log.Errorf("Failed to look up session for user %s: %v", session.UserID, err)
					writeStatus(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
					return
				}
				unauthorized(w, "Session expired, please log in again")
				return
			}
			if cached != tokenStr {
				unauthorized(w, "Session expired, please log in again")
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
		})
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	writeStatus(w, http.StatusUnauthorized, message)
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
