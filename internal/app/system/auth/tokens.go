package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for tokens that fail signature or claim checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// claims carries the user identity inside the JWT.
type claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and parses bearer tokens (HS256).
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec builds a codec around the shared signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Issue signs a token for the given user, valid for TokenTTL.
func (c *TokenCodec) Issue(u *SessionUser) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	})
	return t.SignedString(c.secret)
}

// Parse validates a token string and returns the embedded user.
func (c *TokenCodec) Parse(raw string) (*SessionUser, error) {
	var cl claims
	t, err := jwt.ParseWithClaims(raw, &cl, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	if cl.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &SessionUser{
		ID:    cl.Subject,
		Name:  cl.Name,
		Email: cl.Email,
		Role:  cl.Role,
	}, nil
}
