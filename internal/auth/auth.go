package auth

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Package auth verifies bearer tokens and resolves the caller identity.
// Token issuance lives with the upstream identity service; this package only
// consumes tokens.

var (
	ErrTokenMissing = errors.New("token is missing")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Identity is the verified caller identity resolved from a token.
// Every owner-scoped query uses DoctorID as the ownership key.
type Identity struct {
	DoctorID string
}

// subjectClaim is the JSON structure encoded in the token's subject claim.
type subjectClaim struct {
	ID string `json:"id"`
}

// Verifier verifies a raw bearer token and yields the caller identity.
type Verifier interface {
	Verify(token string) (*Identity, error)
}

// JWTVerifier verifies HS256-signed tokens whose subject claim carries a
// JSON-encoded object with the doctor id.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for the given shared HS256 secret.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

var _ Verifier = (*JWTVerifier)(nil)

// Verify checks signature and expiry, then decodes the subject claim into a
// typed Identity. Any parse or claim failure maps to ErrTokenInvalid so
// callers never see library internals.
func (v *JWTVerifier) Verify(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrTokenInvalid
	}

	var claim subjectClaim
	if err := json.Unmarshal([]byte(sub), &claim); err != nil {
		return nil, ErrTokenInvalid
	}
	if claim.ID == "" {
		return nil, ErrTokenInvalid
	}

	return &Identity{DoctorID: claim.ID}, nil
}
