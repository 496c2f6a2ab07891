// Package auth issues and validates the HS256 bearer tokens that carry the
// caller's company and role.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleRevisor        Role = "revisor"
	RoleSubcontratista Role = "subcontratista"
)

var (
	ErrMissingSecret = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleRevisor, RoleSubcontratista:
		return r, true
	default:
		return "", false
	}
}

// Claims are the JWT claims issued for platform users. SubcontractorID is
// only set for subcontratista tokens.
type Claims struct {
	jwt.RegisteredClaims
	CompanyID       string `json:"company_id"`
	Role            Role   `json:"role"`
	SubcontractorID string `json:"subcontractor_id,omitempty"`
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UID             string
	CompanyID       string
	Role            Role
	SubcontractorID string
}

func (p Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

type JWTValidator struct {
	secret []byte
	issuer string
}

func NewJWTValidator(secret []byte, issuer string) *JWTValidator {
	return &JWTValidator{secret: secret, issuer: issuer}
}

func (v *JWTValidator) Validate(tokenStr string) (Principal, error) {
	if len(v.secret) == 0 {
		return Principal{}, ErrMissingSecret
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Principal{}, ErrInvalidToken
	}
	if claims.Subject == "" || claims.CompanyID == "" {
		return Principal{}, fmt.Errorf("%w: subject and company_id are required", ErrInvalidToken)
	}
	role, ok := ParseRole(string(claims.Role))
	if !ok {
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	if role == RoleSubcontratista && claims.SubcontractorID == "" {
		return Principal{}, fmt.Errorf("%w: subcontractor_id is required", ErrInvalidToken)
	}

	return Principal{
		UID:             claims.Subject,
		CompanyID:       claims.CompanyID,
		Role:            role,
		SubcontractorID: claims.SubcontractorID,
	}, nil
}

// Issue signs a token for p. Used by the operator CLI and tests.
func (v *JWTValidator) Issue(p Principal, ttl time.Duration, now time.Time) (string, error) {
	if len(v.secret) == 0 {
		return "", ErrMissingSecret
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		CompanyID:       p.CompanyID,
		Role:            p.Role,
		SubcontractorID: p.SubcontractorID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
