package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutil "beatbazaar/authentication/util"
	"beatbazaar/internal/util"
	"beatbazaar/models"
)

// ClaimsKey is the Locals key under which the authenticated user's claims
// are stored for downstream handlers.
const ClaimsKey = "user"

// JwtAuthMiddleware authenticates requests by the session cookie. Invalid,
// expired or missing tokens all get a 401.
func JwtAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(authutil.SessionCookieName)
		if cookie == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		claims, err := util.ParseAccessToken(cookie, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authorized or invalid token",
			})
		}

		c.Locals(ClaimsKey, claims.TokenUser)
		return c.Next()
	}
}

// RequireAdmin allows only admin sessions past. Must run after
// JwtAuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(ClaimsKey).(authutil.TokenUser)
		if !ok || user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Not authorized to access this route",
			})
		}
		return c.Next()
	}
}

// CurrentUser pulls the authenticated claims out of Locals.
func CurrentUser(c *fiber.Ctx) (authutil.TokenUser, bool) {
	user, ok := c.Locals(ClaimsKey).(authutil.TokenUser)
	return user, ok
}
