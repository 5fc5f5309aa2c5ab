package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is a server-side login session. The raw token only travels to
// the client wrapped in a signed cookie.
type Session struct {
	Token     string
	MemberID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Member    *Member
}

// SessionClaims is the signed payload of the session cookie.
type SessionClaims struct {
	Token string `json:"token"`
	jwt.RegisteredClaims
}
