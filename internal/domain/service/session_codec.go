package service

import "echofinds/internal/domain/entity"

// SessionCodec serializes session state into a tamper-evident cookie value
// and back. The state lives entirely client-side; the server keeps nothing.
type SessionCodec interface {
	// Encode signs the session state into a cookie value.
	Encode(session *entity.Session) (string, error)

	// Decode verifies and parses a cookie value. Invalid, tampered, or
	// expired values return an error; callers start a fresh session then.
	Decode(value string) (*entity.Session, error)

	// CookieName is the name of the session cookie.
	CookieName() string
}
