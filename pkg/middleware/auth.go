package middleware

import (
	"net/http"
	"strings"

	"github.com/Shwetaank/movies-booking-app/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminToken gates the movie catalog maintenance endpoints. The bearer
// token is checked against the bcrypt hash from config, so the token
// itself never lives in the environment.
func AdminToken(tokenHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenHash == "" {
				logger.Error("Admin token hash not configured",
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(parts[1])); err != nil {
				logger.Warn("Admin token rejected",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
