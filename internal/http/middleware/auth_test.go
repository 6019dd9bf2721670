package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"patientapi/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, doctorID string) string {
	t.Helper()
	sub, err := json.Marshal(map[string]string{"id": doctorID})
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   string(sub),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestRequireAuth(t *testing.T) {
	verifier, err := auth.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	handlerCalled := false
	app := fiber.New()
	app.Use(RequireAuth(verifier))
	app.Get("/protected", func(c *fiber.Ctx) error {
		handlerCalled = true
		ident, ok := IdentityFromCtx(c)
		require.True(t, ok)
		return c.SendString(ident.DoctorID)
	})

	t.Run("valid token resolves identity", func(t *testing.T) {
		handlerCalled = false
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signTestToken(t, "doctor-1"))

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, handlerCalled)
	})

	t.Run("missing token fails closed", func(t *testing.T) {
		handlerCalled = false
		req := httptest.NewRequest("GET", "/protected", nil)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, handlerCalled)
	})

	t.Run("malformed header fails closed", func(t *testing.T) {
		handlerCalled = false
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Token abc")

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, handlerCalled)
	})

	t.Run("invalid token fails closed", func(t *testing.T) {
		handlerCalled = false
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.False(t, handlerCalled)
	})
}

func TestIdentityFromCtx_Unset(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		_, ok := IdentityFromCtx(c)
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/open", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
