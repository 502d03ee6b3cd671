package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers malformed, mis-signed and expired gateway
	// tokens alike; handlers translate it to a 401.
	ErrInvalidToken = errors.New("invalid session token")
)

// claims is the gateway token payload: just the session id plus the
// registered claims. The provider tokens never leave the store.
type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Codec signs and validates the compact gateway tokens handed to clients.
// The token references a stored session by id; it carries no credentials of
// its own.
type Codec struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

// NewCodec builds a codec with HS256 signing.
func NewCodec(signingKey, issuer string, ttl time.Duration) *Codec {
	return &Codec{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
	}
}

// Issue signs a gateway token for the session id.
func (c *Codec) Issue(sessionID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return token.SignedString(c.signingKey)
}

// Validate parses a gateway token and returns the session id it references.
func (c *Codec) Validate(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return c.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	cl, ok := parsed.Claims.(*claims)
	if !ok || cl.SessionID == "" {
		return "", ErrInvalidToken
	}
	return cl.SessionID, nil
}
