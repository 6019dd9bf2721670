package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"patientapi/internal/auth"
)

// IdentityLocalKey is the key used to store the verified caller identity in
// Fiber's context locals.
const IdentityLocalKey = "identity"

// RequireAuth verifies the Authorization bearer token and stores the resolved
// identity in context locals. It fails closed: any missing or invalid token
// short-circuits the request with 401 before any handler or data access runs.
func RequireAuth(v auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}

		ident, err := v.Verify(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or missing token")
		}

		c.Locals(IdentityLocalKey, ident)
		return c.Next()
	}
}

// IdentityFromCtx extracts the identity previously stored by RequireAuth.
// The second return is false when the request never passed authentication.
func IdentityFromCtx(c *fiber.Ctx) (*auth.Identity, bool) {
	ident, ok := c.Locals(IdentityLocalKey).(*auth.Identity)
	return ident, ok
}
