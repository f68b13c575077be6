package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envWith(secret string) func(string) string {
	return func(key string) string {
		if key == EnvJWTSecret {
			return secret
		}
		return ""
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, envWith("super-secret"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 3600*time.Second, cfg.TokenTTL)
	assert.False(t, cfg.Debug)
}

func TestLoad_Flags(t *testing.T) {
	args := []string{"-addr", ":9090", "-db", "/tmp/test.db", "-token-ttl", "60", "-debug"}

	cfg, err := Load(args, envWith("super-secret"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := Load(nil, envWith(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvJWTSecret)
}

func TestLoad_InvalidTTL(t *testing.T) {
	_, err := Load([]string{"-token-ttl", "0"}, envWith("super-secret"))
	assert.Error(t, err)
}

func TestLoad_UnknownFlag(t *testing.T) {
	_, err := Load([]string{"-bogus"}, envWith("super-secret"))
	assert.Error(t, err)
}
