package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqsense/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "8081", cfg.Admin.Port)
	assert.True(t, cfg.Admin.Enabled)
	assert.Equal(t, 50, cfg.History.Size)
	assert.False(t, cfg.Profiling.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("HISTORY_SIZE", "5")
	t.Setenv("ADMIN_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, 5, cfg.History.Size)
	assert.False(t, cfg.Admin.Enabled)
	assert.True(t, cfg.Profiling.Enabled)
}

func TestLoad_RejectsNonPositiveHistory(t *testing.T) {
	t.Setenv("HISTORY_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoad_RejectsPortCollision(t *testing.T) {
	t.Setenv("PORT", "8081")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("HISTORY_SIZE", "lots")
	t.Setenv("ADMIN_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.History.Size)
	assert.True(t, cfg.Admin.Enabled)
}
