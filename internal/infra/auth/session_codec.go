package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"echofinds/config"
	"echofinds/internal/domain/entity"
	"echofinds/internal/domain/service"
	"echofinds/internal/errors"
)

// sessionClaims carries the whole session state as JWT claims. The cookie
// is signed, not encrypted: clients can read their own cart but cannot
// forge a login or someone else's order history.
type sessionClaims struct {
	Session entity.Session `json:"sess"`
	jwt.RegisteredClaims
}

// jwtSessionCodec implements service.SessionCodec with HMAC-signed JWTs.
type jwtSessionCodec struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
}

// NewSessionCodec is the constructor for jwtSessionCodec.
func NewSessionCodec(cfg *config.Config) (service.SessionCodec, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionCodec{
		secret:     []byte(cfg.Session.Secret),
		cookieName: cfg.Session.CookieName,
		ttl:        cfg.Session.TTL,
	}, nil
}

// Encode signs the session state into a compact JWT string.
func (c *jwtSessionCodec) Encode(session *entity.Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Session: *session,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session cookie")
	}

	return signed, nil
}

// Decode verifies the signature and expiry and returns the embedded state.
func (c *jwtSessionCodec) Decode(value string) (*entity.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session cookie")
	}
	if !token.Valid {
		return nil, errors.New("invalid session cookie")
	}

	session := claims.Session

	return &session, nil
}

// CookieName returns the configured session cookie name.
func (c *jwtSessionCodec) CookieName() string {
	return c.cookieName
}
