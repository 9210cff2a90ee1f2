package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/roadside-assistance/application/user"
	"github.com/muhammadheryan/roadside-assistance/constant"
	utilsContext "github.com/muhammadheryan/roadside-assistance/utils/context"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (signup, login, health, docs, metrics) without token.
func AuthMiddleware(userApp user.UserApp, metricsPath string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path, metricsPath) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "Not authorized, no token"))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via UserApp; a blocked account keeps its own message
			session, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), session.Identity)
			ctx = utilsContext.WithTokenID(ctx, session.TokenID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleMiddleware rejects callers whose role is not allowed on a route group.
func RoleMiddleware(allowed ...constant.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := utilsContext.GetIdentity(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			for _, role := range allowed {
				if id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, errors.SetCustomErrorMessage(constant.ErrForbidden, "Not authorized as "+allowedNames(allowed)))
		})
	}
}

func allowedNames(roles []constant.Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return strings.Join(names, " or ")
}

var publicPaths = map[string]bool{
	"/api/health":            true,
	"/api/auth/signup":       true,
	"/api/auth/login":        true,
	"/api/auth/create-admin": true,
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path, metricsPath string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if metricsPath != "" && path == metricsPath {
		return true
	}
	return publicPaths[path]
}
