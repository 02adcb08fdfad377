package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-s", "flag-secret",
		"-u", "http://flag:9000",
		"-l", "120",
		"-t", "3",
		"-m", "session",
		"-d", "postgres://flag/db",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, "http://flag:9000", cfg.ResourceAPIURL)
	assert.Equal(t, 120*time.Second, cfg.SessionTTL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ResolverModeSession, cfg.ResolverMode)
	assert.Equal(t, "postgres://flag/db", cfg.SessionStoreDSN)
}

func Test_parseFlags_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-x", "whatever", "-s", "flag-secret"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, "http://localhost:8000", cfg.ResourceAPIURL)
}
