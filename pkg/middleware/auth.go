package middleware

import (
	"net/http"
	"strings"

	"theater-booking/internal/data/repository"
	"theater-booking/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer JWT and checks the user still exists and is
// active on every request. User id, role and loyalty status go into the
// request context.
func Auth(userRepo repository.UserRepository, jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

			userID, err := utils.ParseToken(jwtConfig.Secret, parts[1])
			if err != nil {
				logger.Warn("Invalid token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for auth",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				utils.ResponseUnauthorized(w, "User no longer exists")
				return
			}

			if !user.IsActive {
				utils.ResponseUnauthorized(w, "Your account has been deactivated")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role), user.IsLoyaltyMember)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires an authenticated admin user; must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if role != "admin" {
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
