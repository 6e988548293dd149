// Package tokens provides the session token adapter backed by HS256 JWTs.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for expired, malformed, or tampered tokens,
// and for tokens from a different issuer.
var ErrInvalidToken = errors.New("invalid token")

// sessionClaims is the wire format of the token payload. The subject carries
// the login; the account identifier and role travel as private claims.
type sessionClaims struct {
	AccountID string `json:"accountId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// JWTProvider implements ports.TokenProvider with HS256-signed JWTs.
type JWTProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTProvider creates a token provider.
// The secret must be non-empty; the ttl bounds token lifetime.
func NewJWTProvider(secret []byte, issuer string, ttl time.Duration) (*JWTProvider, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &JWTProvider{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token embedding the given claims.
func (p *JWTProvider) Issue(claims ports.AuthClaims) (string, error) {
	now := time.Now()

	c := sessionClaims{
		AccountID: claims.AccountID.String(),
		Role:      claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Login,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(p.secret)
}

// Verify parses and validates a token, returning the embedded claims.
func (p *JWTProvider) Verify(token string) (ports.AuthClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return ports.AuthClaims{}, ErrInvalidToken
	}

	accountID, err := kernel.UUIDFromString(claims.AccountID)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return ports.AuthClaims{
		AccountID: accountID,
		Login:     claims.Subject,
		Role:      role,
	}, nil
}
