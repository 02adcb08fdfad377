package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/guardiantix/authkit/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Durations are expressed in whole seconds. After unmarshalling, its
// fields are copied into the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	SecretKey             string `json:"secret_key"`
	ResourceAPIURL        string `json:"resource_api_url"`
	SessionTTLSeconds     int    `json:"session_ttl_seconds"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	ResolverMode          string `json:"resolver_mode"`
	SessionStoreDSN       string `json:"session_store_dsn"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics: a broken config file
// is a fatal startup condition.
//
// Only fields present in the file override the existing values.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.ResourceAPIURL != "" {
		config.ResourceAPIURL = c.ResourceAPIURL
	}
	if c.SessionTTLSeconds > 0 {
		config.SessionTTL = time.Duration(c.SessionTTLSeconds) * time.Second
	}
	if c.RequestTimeoutSeconds > 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
	if c.ResolverMode != "" {
		config.ResolverMode = c.ResolverMode
	}
	if c.SessionStoreDSN != "" {
		config.SessionStoreDSN = c.SessionStoreDSN
	}
}
