package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"interview-scheduler/internal/pkg/auth"
	"interview-scheduler/internal/pkg/logger"
)

const identityKey = "identity"

// Authenticate resolves the bearer token, when present, and stores the
// identity on the context. Requests without a valid token continue
// unauthenticated; RequireAuth and RequireRecruiter enforce access.
func Authenticate(resolver *auth.Resolver, log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" {
				return next(c)
			}
			id, err := resolver.Resolve(raw)
			if err != nil {
				log.Debug("Rejected bearer token: " + err.Error())
				return next(c)
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// IdentityFrom returns the caller stored by Authenticate.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	id, ok := c.Get(identityKey).(auth.Identity)
	return id, ok
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := IdentityFrom(c); !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return next(c)
	}
}

// RequireRecruiter rejects unauthenticated requests with 401 and
// non-recruiters with 403.
func RequireRecruiter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		if !id.IsRecruiter() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
		}
		return next(c)
	}
}
