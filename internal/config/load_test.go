package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the required secret is provided.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"COORD_AUTH_JWT_SECRET":             testSecret,
		"COORD_STORAGE_DATA_DIR":            "",
		"COORD_LOG_LEVEL":                   "",
		"COORD_LOG_FORMAT":                  "",
		"COORD_AUTH_TOKEN_LIFETIME_MINUTES": "",
		"COORD_AUTH_BCRYPT_COST":            "",
	})
	defer cleanup()

	cfg, err := Load("")

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, ".", cfg.Storage.DataDir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 720, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10, cfg.Auth.BCryptCost)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"COORD_STORAGE_DATA_DIR":            "/var/lib/coordinator",
		"COORD_LOG_LEVEL":                   "debug",
		"COORD_LOG_FORMAT":                  "text",
		"COORD_AUTH_JWT_SECRET":             testSecret,
		"COORD_AUTH_TOKEN_LIFETIME_MINUTES": "30",
		"COORD_AUTH_BCRYPT_COST":            "4",
	})
	defer cleanup()

	cfg, err := Load("")

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, "/var/lib/coordinator", cfg.Storage.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 4, cfg.Auth.BCryptCost)
}

// TestLoadFromFile verifies that an explicit config file is read and that
// environment variables take precedence over it.
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coordinator.yaml")
	content := []byte(`storage:
  data_dir: /srv/data
log:
  level: info
auth:
  jwt_secret: ` + testSecret + `
  bcrypt_cost: 12
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cleanup := setupEnv(t, map[string]string{
		"COORD_LOG_LEVEL":        "error",
		"COORD_STORAGE_DATA_DIR": "",
		"COORD_AUTH_JWT_SECRET":  "",
		"COORD_AUTH_BCRYPT_COST": "",
	})
	defer cleanup()

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.Storage.DataDir)
	assert.Equal(t, "error", cfg.Log.Level, "environment overrides the file")
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 12, cfg.Auth.BCryptCost)
	assert.Equal(t, "json", cfg.Log.Format, "defaults fill keys the file leaves out")
}

// TestLoadWithoutSecret verifies that the JWT secret is optional at load time.
func TestLoadWithoutSecret(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{"COORD_AUTH_JWT_SECRET": ""})
	defer cleanup()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

// TestLoadMissingExplicitFile verifies that naming a config file that does not exist is an error.
func TestLoadMissingExplicitFile(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{"COORD_AUTH_JWT_SECRET": testSecret})
	defer cleanup()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Short JWT secret",
			envVars: map[string]string{
				"COORD_AUTH_JWT_SECRET": "tooshort",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"COORD_AUTH_JWT_SECRET": testSecret,
				"COORD_LOG_LEVEL":       "invalid-level",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log format",
			envVars: map[string]string{
				"COORD_AUTH_JWT_SECRET": testSecret,
				"COORD_LOG_FORMAT":      "xml",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Zero token lifetime",
			envVars: map[string]string{
				"COORD_AUTH_JWT_SECRET":             testSecret,
				"COORD_AUTH_TOKEN_LIFETIME_MINUTES": "0",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Bcrypt cost out of range",
			envVars: map[string]string{
				"COORD_AUTH_JWT_SECRET":  testSecret,
				"COORD_AUTH_BCRYPT_COST": "3",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load("")

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
