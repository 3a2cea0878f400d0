package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hallbooking/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type jwtCodec struct {
	secret []byte
}

// NewJWTCodec returns a token codec that signs and verifies HS256 JWTs with
// the given secret. It implements both domain.TokenIssuer and
// domain.TokenVerifier.
func NewJWTCodec(secret string) *jwtCodec {
	return &jwtCodec{secret: []byte(secret)}
}

func (c *jwtCodec) Issue(userID, email string, roles []string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (c *jwtCodec) Verify(tokenString string) (string, []string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return "", nil, fmt.Errorf("invalid token")
	}
	return claims.Subject, claims.Roles, nil
}

var (
	_ domain.TokenIssuer   = (*jwtCodec)(nil)
	_ domain.TokenVerifier = (*jwtCodec)(nil)
)
