package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barkwise/pet-api/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = time.Hour * 4
	RoleUser        = "user"
)

var (
	ErrMissingToken = apperr.Unauthenticated("Missing token")
	ErrInvalidToken = apperr.InvalidToken("Invalid token")
)

// Claims is the payload of a session token. UserID is typed loosely because
// it is a uuid.UUID when issued and a string once decoded, see CurrentUserID.
type Claims struct {
	UserID any    `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies HS256 session tokens. Tokens are stateless
// and stay valid until they expire.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret can't be empty")
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source, used by tests
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	t.now = now
	return t
}

// Issue signs c after stamping the issuance and expiry times on it
func (t *TokenIssuer) Issue(c *Claims) (string, error) {
	now := t.now()

	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))

	if c.Role == "" {
		c.Role = RoleUser
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify decodes raw and checks its signature and expiry
func (t *TokenIssuer) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tok.Method.Alg())
		}

		return t.secret, nil
	},
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// BearerToken extracts the token from an Authorization header value. An
// empty string means no token was supplied.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
