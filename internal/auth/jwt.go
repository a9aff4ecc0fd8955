package auth

import (
	"errors"
	"time"

	"salestrack/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every token failure: bad signature, expiry, wrong
// algorithm, malformed claims. Callers surface all of them identically.
var ErrInvalidToken = errors.New("invalid or expired token")

// Tokens issues and validates signed session tokens. The secret and TTL come
// from the startup configuration, never from the environment at call time.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a token issuer with the given signing secret and lifetime.
func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, ttl: ttl}
}

// Claims is what goes inside the token: subject name, user id, role, expiry.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for a user. With a zero TTL the token is
// already expired; validation will reject it.
func (t *Tokens) Issue(user *models.User) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Name,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate checks signature and expiry and returns the embedded claims.
func (t *Tokens) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
