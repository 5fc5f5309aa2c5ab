package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SESSION_SECRET", "session-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
}

func clearOptionalEnv(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_NAME",
		"GOOGLE_REDIRECT_URL", "CORS_ALLOW_ORIGINS", "SETTINGS_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	clearOptionalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "attendify", cfg.DBName)
	assert.Equal(t, "http://localhost:3030/login", cfg.GoogleRedirectURL)
	assert.Equal(t, []string{"http://localhost:3039"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "settings.yml", cfg.SettingsPath)
}

func TestLoadMissingRequired(t *testing.T) {
	for _, key := range []string{
		"DB_PASSWORD", "SESSION_SECRET", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
	} {
		t.Setenv(key, "")
	}

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_ID")
	assert.Contains(t, err.Error(), "GOOGLE_CLIENT_SECRET")
}

func TestLoadInvalidDBPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoadCORSOriginList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3039, https://attendify.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"http://localhost:3039", "https://attendify.example.com"},
		cfg.CORSAllowOrigins)
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	data := `grade:
  senior2:
    generation: 73
    display_name: 高2
  senior1:
    generation: 74
    display_name: 高1
  junior3:
    generation: 75
    display_name: 中3
  junior2:
    generation: 76
    display_name: 中2
  junior1:
    generation: 77
    display_name: 中1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 73, s.Grade.Senior2.Generation)
	assert.Equal(t, "高2", s.Grade.Senior2.DisplayName)
	assert.Equal(t, 75, s.Grade.Junior3.Generation)
	assert.Equal(t, "中1", s.Grade.Junior1.DisplayName)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
