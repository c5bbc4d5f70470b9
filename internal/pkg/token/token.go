// Package token issues and verifies the signed credential artifact that
// proves a prior successful login. Tokens are self-contained: the server
// keeps no record of issued tokens, so logout only clears the client
// cookie and an already-issued token stays valid until it expires.
package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Identity is the payload carried inside a token.
type Identity struct {
	Email    string
	Password string
}

type claims struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	jwtlib.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a fixed lifetime. The
// token lifetime is independent of the session cookie's Max-Age; the
// two clocks are deliberately decoupled.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret []byte, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl}
}

// Issue produces a signed token for the identity, expiring ttl from now.
func (s *Service) Issue(identity Identity) (string, error) {
	now := time.Now()
	c := claims{
		Email:    identity.Email,
		Password: identity.Password,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return tok.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the decoded
// identity. Any failure of the underlying library comes back as a plain
// error; callers treat every error uniformly as "invalid". Expiry is
// still distinguishable via errors.Is(err, jwt.ErrTokenExpired).
func (s *Service) Verify(raw string) (*Identity, error) {
	parsed, err := jwtlib.ParseWithClaims(raw, &claims{}, func(tok *jwtlib.Token) (interface{}, error) {
		if tok.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return &Identity{Email: c.Email, Password: c.Password}, nil
}
