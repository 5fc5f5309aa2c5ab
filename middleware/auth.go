package middleware

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"attendify_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionTTL is how long a session stays valid after login.
const sessionTTL = 30 * 24 * time.Hour

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// SessionService issues and validates login sessions. The raw session token
// lives in the sessions table; clients only ever hold it wrapped in a
// signed JWT cookie.
type SessionService struct {
	DB     *sql.DB
	Secret []byte
}

// NewSessionService creates a new session service
func NewSessionService(db *sql.DB, secret []byte) *SessionService {
	return &SessionService{DB: db, Secret: secret}
}

// Create opens a session for a member and returns the raw token.
func (s *SessionService) Create(memberID uuid.UUID) (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(bytes)

	if _, err := s.DB.Exec(
		`INSERT INTO sessions (token, member_id) VALUES ($1, $2)`,
		token, memberID,
	); err != nil {
		return "", err
	}

	return token, nil
}

// Sign wraps a raw session token into the JWT carried by the cookie.
func (s *SessionService) Sign(token string) (string, error) {
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.SessionClaims{
		Token: token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return jwtToken.SignedString(s.Secret)
}

// Parse verifies a signed cookie value and extracts the raw session token.
func (s *SessionService) Parse(signed string) (string, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.Token, nil
}

// Lookup resolves a raw token into its session and member. Sessions older
// than the TTL no longer resolve.
func (s *SessionService) Lookup(token string) (*models.Session, error) {
	sess := &models.Session{Member: &models.Member{}}
	err := s.DB.QueryRow(`
        SELECT s.token, s.member_id, s.created_at, s.updated_at,
            m.id, m.part, m.generation, m.name, m.name_kana, m.email, m.role, m.is_competition_member
        FROM sessions s
        JOIN members m ON m.id = s.member_id
        WHERE s.token = $1 AND s.created_at > NOW() - INTERVAL '30 days'
    `, token).Scan(
		&sess.Token, &sess.MemberID, &sess.CreatedAt, &sess.UpdatedAt,
		&sess.Member.ID, &sess.Member.Part, &sess.Member.Generation, &sess.Member.Name,
		&sess.Member.NameKana, &sess.Member.Email, &sess.Member.Role, &sess.Member.IsCompetitionMember,
	)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Delete removes a session so its token no longer authenticates.
func (s *SessionService) Delete(token string) error {
	_, err := s.DB.Exec(`DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// SessionAuth authenticates requests by the session cookie and stores the
// resolved session on the context.
func SessionAuth(sessions *SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		abort := func() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIError{
				Error:     "Invalid authentication credentials",
				ErrorCode: models.ErrCodeInvalidAuthCredentials,
			})
		}

		signed, err := c.Cookie(SessionCookie)
		if err != nil {
			abort()
			return
		}

		token, err := sessions.Parse(signed)
		if err != nil {
			abort()
			return
		}

		sess, err := sessions.Lookup(token)
		if err != nil {
			if err != sql.ErrNoRows {
				slog.Error("session lookup failed", "error", err)
			}
			abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

// SessionFromContext returns the session stored by SessionAuth.
func SessionFromContext(c *gin.Context) *models.Session {
	if v, ok := c.Get("session"); ok {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	return nil
}
