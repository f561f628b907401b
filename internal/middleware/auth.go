package middleware

import (
	"strings"

	"pcof-site-backend/internal/apperr"
	"pcof-site-backend/internal/auth"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AdminAuth guards the admin routes: it requires a valid bearer token signed
// with the admin JWT secret and stores the admin email on the context.
func AdminAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return apperr.New(apperr.ErrUnauthorized, "missing bearer token")
			}

			claims, err := auth.VerifyToken(strings.TrimPrefix(header, bearerPrefix), secret)
			if err != nil {
				return err
			}

			c.Set("admin_email", claims.Email)
			return next(c)
		}
	}
}
