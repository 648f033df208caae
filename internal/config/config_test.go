package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/pledges")
	t.Setenv("STORAGE_BACKEND", "fs")
	t.Setenv("FS_ROOT", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "employees.csv", cfg.EmployeesFile)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, RenderVector, cfg.RenderMode)
	assert.Equal(t, "fraud_awareness_pledges", cfg.PledgesTable)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_CacheTTLOverride(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
}

func TestLoad_InvalidStorageBackend(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/pledges")
	t.Setenv("STORAGE_BACKEND", "tape")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidStorage)
}

func TestLoad_FSRequiresRoot(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/pledges")
	t.Setenv("STORAGE_BACKEND", "fs")
	t.Setenv("FS_ROOT", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingFSRoot)
}

func TestLoad_CompositeRequiresAssets(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CERT_RENDER_MODE", "composite")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingTemplateKey)

	t.Setenv("CERT_TEMPLATE_KEY", "templates/certificate.jpeg")
	_, err = Load()
	assert.ErrorIs(t, err, ErrMissingFontPath)

	t.Setenv("CERT_FONT_PATH", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, RenderComposite, cfg.RenderMode)
}

func TestLoad_InvalidRenderMode(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CERT_RENDER_MODE", "hologram")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidRenderMode)
}

func TestLoad_NamePositionOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CERT_NAME_X", "0.58")
	t.Setenv("CERT_NAME_Y", "0.58")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.58, cfg.CertNameX)
	assert.Equal(t, 0.58, cfg.CertNameY)
}
