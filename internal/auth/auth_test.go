package auth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, sub any, expiresAt time.Time) string {
	t.Helper()

	var subject string
	switch s := sub.(type) {
	case string:
		subject = s
	default:
		b, err := json.Marshal(s)
		require.NoError(t, err)
		subject = string(b)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNewJWTVerifier(t *testing.T) {
	v, err := NewJWTVerifier("secret")
	assert.NoError(t, err)
	assert.NotNil(t, v)

	v, err = NewJWTVerifier("")
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestJWTVerifier_Verify(t *testing.T) {
	v, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, map[string]string{"id": "doctor-1"}, time.Now().Add(time.Hour))

		ident, err := v.Verify(token)

		assert.NoError(t, err)
		require.NotNil(t, ident)
		assert.Equal(t, "doctor-1", ident.DoctorID)
	})

	t.Run("missing token", func(t *testing.T) {
		ident, err := v.Verify("")

		assert.ErrorIs(t, err, ErrTokenMissing)
		assert.Nil(t, ident)
	})

	t.Run("malformed token", func(t *testing.T) {
		ident, err := v.Verify("not-a-jwt")

		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, ident)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", map[string]string{"id": "doctor-1"}, time.Now().Add(time.Hour))

		ident, err := v.Verify(token)

		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, ident)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, map[string]string{"id": "doctor-1"}, time.Now().Add(-time.Hour))

		ident, err := v.Verify(token)

		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, ident)
	})

	t.Run("subject is not json", func(t *testing.T) {
		token := signToken(t, testSecret, "plain-subject", time.Now().Add(time.Hour))

		ident, err := v.Verify(token)

		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, ident)
	})

	t.Run("subject without id", func(t *testing.T) {
		token := signToken(t, testSecret, map[string]string{"name": "dr"}, time.Now().Add(time.Hour))

		ident, err := v.Verify(token)

		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Nil(t, ident)
	})
}
