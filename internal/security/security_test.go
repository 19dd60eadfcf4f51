package security

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wipefile_enterprise/internal/config"
)

func protectedConfig(paths ...string) *config.Config {
	cfg := config.Default()
	cfg.Security.ProtectedPaths = paths
	return cfg
}

func TestShouldSkipTargetInsideProtected(t *testing.T) {
	base := t.TempDir()
	cfg := protectedConfig(base)

	assert.True(t, ShouldSkipTarget(cfg, filepath.Join(base, "подкаталог", "файл.txt")))
	assert.True(t, ShouldSkipTarget(cfg, base))
}

func TestShouldSkipTargetOutsideProtected(t *testing.T) {
	cfg := protectedConfig(filepath.Join(t.TempDir(), "protected"))

	assert.False(t, ShouldSkipTarget(cfg, filepath.Join(t.TempDir(), "elsewhere", "файл.txt")))
}

func TestShouldSkipTargetAllowProtected(t *testing.T) {
	base := t.TempDir()
	cfg := protectedConfig(base)
	cfg.Security.AllowProtected = true

	assert.False(t, ShouldSkipTarget(cfg, filepath.Join(base, "файл.txt")))
}

func TestFilterTargets(t *testing.T) {
	base := t.TempDir()
	cfg := protectedConfig(filepath.Join(base, "protected"))

	allowed, skipped := FilterTargets(cfg, []string{
		filepath.Join(base, "protected", "a.txt"),
		filepath.Join(base, "free", "b.txt"),
	})

	require.Len(t, allowed, 1)
	require.Len(t, skipped, 1)
	assert.Contains(t, allowed[0], "free")
	assert.Contains(t, skipped[0], "protected")
}

func TestValidatePasses(t *testing.T) {
	assert.NoError(t, ValidatePasses(1))
	assert.NoError(t, ValidatePasses(35))
	assert.Error(t, ValidatePasses(0))
	assert.Error(t, ValidatePasses(36))
}
