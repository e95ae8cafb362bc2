package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/adnangitonga/diagnoxis/internal/pkg/jwt"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
	"github.com/adnangitonga/diagnoxis/internal/utils"
)

// ContextKeyClaims is the echo context key under which the verified claims
// are stored for downstream handlers.
const ContextKeyClaims = "claims"

// JWTAuthMiddleware creates middleware that requires a bearer access token.
// Tokens are validated against the access secret only, so refresh tokens
// are rejected here even when correctly signed.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.Validate(parts[1], jwtpkg.TokenTypeAccess, config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyClaims, claims)
			c.Set("email", claims.Email)
			c.Set("work_id", claims.WorkID)

			return next(c)
		}
	}
}
