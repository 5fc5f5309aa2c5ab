package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendify_backend/models"
)

func TestSignParseRoundTrip(t *testing.T) {
	svc := NewSessionService(nil, []byte("test-secret"))

	signed, err := svc.Sign("raw-session-token")
	require.NoError(t, err)

	token, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "raw-session-token", token)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	signed, err := NewSessionService(nil, []byte("their-secret")).Sign("raw")
	require.NoError(t, err)

	_, err = NewSessionService(nil, []byte("our-secret")).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.SessionClaims{
		Token: "raw",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	signed, err := expired.SignedString(secret)
	require.NoError(t, err)

	_, err = NewSessionService(nil, secret).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &models.SessionClaims{Token: "raw"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewSessionService(nil, []byte("test-secret")).Parse(signed)
	assert.Error(t, err)
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected",
		SessionAuth(NewSessionService(nil, []byte("test-secret"))),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestSessionAuthWithoutCookie(t *testing.T) {
	router := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.ErrCodeInvalidAuthCredentials, body.ErrorCode)
	assert.Equal(t, "Invalid authentication credentials", body.Error)
}

func TestSessionAuthWithGarbageCookie(t *testing.T) {
	router := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-jwt"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.ErrCodeInvalidAuthCredentials, body.ErrorCode)
}
