package http

import (
	"net/http"
	"strings"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "authClaims"

// AuthMiddleware extracts the bearer token from the Authorization header and,
// when the token verifies, stores the claims in the request context. Requests
// with a missing or invalid token proceed unauthenticated; role checks happen
// per route group in RequireRole.
func AuthMiddleware(tokens ports.TokenProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return next(ctx)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return next(ctx)
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// RequireRole rejects requests that carry no verified claims with 401 and
// requests whose role differs from the required one with 403.
func RequireRole(role account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := claimsFrom(ctx)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized,
					newErrorResponse(ctx, http.StatusUnauthorized, "authentication required"))
			}

			if claims.Role != role {
				return ctx.JSON(http.StatusForbidden,
					newErrorResponse(ctx, http.StatusForbidden, "insufficient permissions"))
			}

			return next(ctx)
		}
	}
}

func claimsFrom(ctx echo.Context) (ports.AuthClaims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(ports.AuthClaims)
	return claims, ok
}
