package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTValidator_RoundTrip(t *testing.T) {
	v := NewJWTValidator([]byte("s3cr3t"), "pcg")
	p := Principal{UID: "u-1", CompanyID: "ACME", Role: RoleSubcontratista, SubcontractorID: "SUB-1"}

	tok, err := v.Issue(p, time.Hour, time.Now())
	require.NoError(t, err)

	got, err := v.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestJWTValidator_Rejects(t *testing.T) {
	v := NewJWTValidator([]byte("s3cr3t"), "pcg")
	now := time.Now()

	t.Run("expired", func(t *testing.T) {
		tok, err := v.Issue(Principal{UID: "u", CompanyID: "ACME", Role: RoleAdmin}, time.Minute, now.Add(-time.Hour))
		require.NoError(t, err)
		_, err = v.Validate(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTValidator([]byte("other"), "pcg")
		tok, err := other.Issue(Principal{UID: "u", CompanyID: "ACME", Role: RoleAdmin}, time.Hour, now)
		require.NoError(t, err)
		_, err = v.Validate(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTValidator([]byte("s3cr3t"), "someone-else")
		tok, err := other.Issue(Principal{UID: "u", CompanyID: "ACME", Role: RoleAdmin}, time.Hour, now)
		require.NoError(t, err)
		_, err = v.Validate(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "pcg"},
			CompanyID:        "ACME",
			Role:             RoleAdmin,
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = v.Validate(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("subcontratista without subcontractor", func(t *testing.T) {
		tok, err := v.Issue(Principal{UID: "u", CompanyID: "ACME", Role: RoleSubcontratista}, time.Hour, now)
		require.NoError(t, err)
		_, err = v.Validate(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("unknown role", func(t *testing.T) {
		tok, err := v.Issue(Principal{UID: "u", CompanyID: "ACME", Role: Role("owner")}, time.Hour, now)
		require.NoError(t, err)
		_, err = v.Validate(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := NewJWTValidator(nil, "").Validate("x.y.z")
		assert.True(t, errors.Is(err, ErrMissingSecret))
	})
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Revisor ")
	assert.True(t, ok)
	assert.Equal(t, RoleRevisor, r)

	_, ok = ParseRole("root")
	assert.False(t, ok)
}
