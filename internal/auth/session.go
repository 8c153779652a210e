package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the signed session cookie carrying the user identity claim.
const CookieName = "auth-token"

// Sessions issues and verifies the HS256 session tokens stored in the
// auth cookie.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions creates a session issuer/verifier with the given signing
// secret and token lifetime.
func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime, used for the cookie max age.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a session token for the given user id.
func (s *Sessions) Issue(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": float64(userID),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a session token and returns the user id claim.
func (s *Sessions) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithIssuedAt())
	if err != nil {
		return 0, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims format")
	}

	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return 0, fmt.Errorf("token missing required 'uid' claim")
	}
	return uint(uid), nil
}
