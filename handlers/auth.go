package handlers

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"attendify_backend/config"
	"attendify_backend/middleware"
	"attendify_backend/models"
)

// userinfoURL is where the logged-in account's email is fetched from.
const userinfoURL = "https://www.googleapis.com/userinfo/v2/me"

// cookieMaxAge is the session cookie lifetime in seconds.
const cookieMaxAge = 60 * 60 * 24 * 30

type AuthHandler struct {
	db       *sql.DB
	sessions *middleware.SessionService
	oauth    *oauth2.Config
}

func NewAuthHandler(db *sql.DB, sessions *middleware.SessionService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:       db,
		sessions: sessions,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthorizationURL returns the Google consent URL the frontend redirects to.
func (h *AuthHandler) AuthorizationURL(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to build authorization URL", models.ErrCodeUnknown)
		return
	}
	c.JSON(http.StatusOK, h.oauth.AuthCodeURL(state))
}

// Login exchanges a Google OAuth code for a session. The member is matched
// by the Google account's email address.
func (h *AuthHandler) Login(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		jsonError(c, http.StatusUnauthorized, "Invalid Google API code", models.ErrCodeInvalidGoogleAPICode)
		return
	}

	token, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		slog.Warn("google code exchange failed", "error", err)
		jsonError(c, http.StatusUnauthorized, "Invalid Google API code", models.ErrCodeInvalidGoogleAPICode)
		return
	}

	email, err := h.fetchEmail(c.Request.Context(), token)
	if err != nil {
		slog.Warn("google userinfo fetch failed", "error", err)
		jsonError(c, http.StatusUnauthorized, "Invalid Google API code", models.ErrCodeInvalidGoogleAPICode)
		return
	}

	var member models.Member
	err = h.db.QueryRow(`
        SELECT id, part, generation, name, name_kana, email, role, is_competition_member
        FROM members
        WHERE email = $1
    `, email).Scan(
		&member.ID, &member.Part, &member.Generation, &member.Name,
		&member.NameKana, &member.Email, &member.Role, &member.IsCompetitionMember,
	)
	if err == sql.ErrNoRows {
		jsonError(c, http.StatusForbidden, "Permission denied", models.ErrCodePermissionDenied)
		return
	}
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch member", models.ErrCodeUnknown)
		return
	}

	rawToken, err := h.sessions.Create(member.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to create session", models.ErrCodeUnknown)
		return
	}

	signed, err := h.sessions.Sign(rawToken)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to create session", models.ErrCodeUnknown)
		return
	}

	c.SetCookie(middleware.SessionCookie, signed, cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, member)
}

// Logout deletes the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.SessionFromContext(c); sess != nil {
		if err := h.sessions.Delete(sess.Token); err != nil {
			jsonError(c, http.StatusInternalServerError, "Failed to delete session", models.ErrCodeUnknown)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.OperationalResult{Result: true})
}

func (h *AuthHandler) fetchEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	resp, err := h.oauth.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo returned %s", resp.Status)
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	return info.Email, nil
}

func randomState() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
