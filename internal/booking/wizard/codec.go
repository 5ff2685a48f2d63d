package wizard

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const DefaultSessionTTL = 2 * time.Hour

type sessionClaims struct {
	Session Session `json:"session"`
	jwt.RegisteredClaims
}

// Codec turns sessions into signed tokens so the wizard state can travel with
// the client instead of living on the server.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Codec{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *Codec) Encode(s Session) (string, error) {
	issuedAt := c.now()

	claims := sessionClaims{
		Session: s,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *Codec) Decode(tokenString string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Session{}, ErrInvalidSession
	}

	return claims.Session, nil
}
