package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"tradeport/internal/infrastructure/firebase"
	"tradeport/pkg/errors"
	"tradeport/pkg/response"
)

type AuthMiddleware struct {
	authClient *firebase.FirebaseAuthClient
}

func NewAuthMiddleware(authClient *firebase.FirebaseAuthClient) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

// Authenticate requires a valid Bearer ID token and puts the resolved uid in
// the request context. Every workflow operation behind this middleware can
// rely on an actor being present.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, err := m.resolveUID(c)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("uid", uid)
		return next(c)
	}
}

// OptionalAuthenticate resolves the actor when a token is present but lets
// anonymous requests through. Used for guest-capable endpoints such as
// quotation creation.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if uid, err := m.resolveUID(c); err == nil {
			c.Set("uid", uid)
		}
		return next(c)
	}
}

func (m *AuthMiddleware) resolveUID(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.Unauthorized("Authorization header is required", nil)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.Unauthorized("Invalid authorization format", nil)
	}

	uid, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
	if err != nil {
		return "", errors.Unauthorized("Invalid or expired token", err)
	}

	return uid, nil
}
