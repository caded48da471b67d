package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token fails verification for any reason.
var ErrInvalidToken = errors.New("invalid token")

var signingMethod = jwt.SigningMethodHS256

// TokenCodec issues and decodes HS256-signed bearer tokens.
type TokenCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

// NewTokenCodec creates a codec signing with secret. When issuer is
// non-empty it is stamped on issued tokens and required on decode.
func NewTokenCodec(secret []byte, issuer string, ttl time.Duration) *TokenCodec {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &TokenCodec{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(opts...),
	}
}

// Issue signs a token for subject and role using the codec's configured lifetime.
func (c *TokenCodec) Issue(subject, role string) (string, error) {
	return c.IssueWithTTL(subject, role, c.ttl)
}

// IssueWithTTL signs a token expiring ttl from now. ttl must be positive.
func (c *TokenCodec) IssueWithTTL(subject, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Decode verifies token and returns its claims. It performs no store lookup.
func (c *TokenCodec) Decode(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := c.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
