// Package token issues and verifies the signed bearer tokens that carry a
// user's identity between requests. Tokens are HS256-signed and self
// contained; the server keeps no session state and there is no revocation
// list, so rotating the secret invalidates everything issued before.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 8 * time.Hour

var ErrMissing = errors.New("authentication token missing")
var ErrInvalid = errors.New("authentication token invalid")
var ErrExpired = errors.New("authentication token expired")

// Claims is the identity payload embedded in a token. It must never carry
// password material, raw or hashed.
type Claims struct {
	Email string
	Role  string
}

type jwtClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a process-wide symmetric secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs claims with the configured secret and an expiry of now+ttl.
func (i *Issuer) Issue(c Claims) (string, error) {
	now := i.now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		Email: c.Email,
		Role:  c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return t.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Failure modes are distinguished: ErrMissing for an empty token, ErrExpired
// when the token is past its expiry, ErrInvalid for everything else
// (malformed token, wrong signature, wrong algorithm).
func (i *Issuer) Verify(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrMissing
	}

	var jc jwtClaims
	parsed, err := jwt.ParseWithClaims(raw, &jc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalid
	}

	return Claims{Email: jc.Email, Role: jc.Role}, nil
}
