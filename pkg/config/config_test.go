package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 1440, cfg.JWT.Expiration)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.NotEmpty(t, cfg.CORS.Origins)
}

func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("SMTP_USER", "noreply@consultoria.com")
	t.Setenv("CORS_ORIGINS", "https://app.consultoria.com, https://admin.consultoria.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "super-secreto", cfg.JWT.Secret)
	assert.Equal(t, []string{"https://app.consultoria.com", "https://admin.consultoria.com"}, cfg.CORS.Origins)
	assert.Equal(t, "https://app.consultoria.com,https://admin.consultoria.com", cfg.CORS.OriginsHeader())

	// From y AdminEmail caen al SMTP_USER si no se definen
	assert.Equal(t, "noreply@consultoria.com", cfg.SMTP.From)
	assert.Equal(t, "noreply@consultoria.com", cfg.SMTP.AdminEmail)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := DBConfig{
		Host: "db.internal", Port: 5432,
		User: "svc", Password: "p@ss:word",
		DBName: "consultoria", SSLMode: "require",
	}
	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss:word", "el password va URL-encoded")

	db.DatabaseURL = "postgresql://otro"
	assert.Equal(t, "postgresql://otro", db.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:5000", HTTPConfig{Host: "0.0.0.0", Port: 5000}.Addr())
}
