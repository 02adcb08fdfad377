package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "your-secret-key-here", c.SecretKey)
	assert.Equal(t, "http://localhost:8000", c.ResourceAPIURL)
	assert.Equal(t, 3600*time.Second, c.SessionTTL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, ResolverModeRemote, c.ResolverMode)
	assert.Empty(t, c.SessionStoreDSN)
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	t.Run("missing secret", func(t *testing.T) {
		cfg := c
		cfg.SecretKey = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("missing resource API URL", func(t *testing.T) {
		cfg := c
		cfg.ResourceAPIURL = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("bad resolver mode", func(t *testing.T) {
		cfg := c
		cfg.ResolverMode = "hybrid"
		require.Error(t, cfg.Validate())
	})

	t.Run("session mode is valid", func(t *testing.T) {
		cfg := c
		cfg.ResolverMode = ResolverModeSession
		require.NoError(t, cfg.Validate())
	})
}
