package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/whop-relay/pkg/whop"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		KeyAPIKey, KeyAppID, KeyAppIDAlias, KeyCompanyID, KeyAPIBaseURL,
		KeyProductURLBase, KeyPort, KeyCORSOrigins, KeyJWTSecret, KeyLogLevel, KeyRelayURL,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{KeyAPIKey, KeyAppID}, cfgErr.Missing)
	assert.Contains(t, err.Error(), KeyAPIKey)
}

func TestLoadMissingOnlyAppID(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyAPIKey, "secret")

	_, err := Load()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{KeyAppID}, cfgErr.Missing)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyAPIKey, "secret")
	t.Setenv(KeyAppID, "app_123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "app_123", cfg.AppID)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultProductURLBase, cfg.ProductURLBase)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.SessionAuthEnabled())
}

func TestLoadAppIDAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyAPIKey, "secret")
	t.Setenv(KeyAppIDAlias, "app_alias")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "app_alias", cfg.AppID)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyAPIKey, "secret")
	t.Setenv(KeyAppID, "app_123")
	t.Setenv(KeyAPIBaseURL, "http://upstream.local/")
	t.Setenv(KeyCORSOrigins, "http://a.test, http://b.test,,")
	t.Setenv(KeyJWTSecret, "jwt")
	t.Setenv(KeyPort, "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://upstream.local", cfg.APIBaseURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.SessionAuthEnabled())
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadCatalogRequiresCompany(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyAPIKey, "secret")

	_, err := LoadCatalog()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{KeyCompanyID}, cfgErr.Missing)
}

func TestLoadClientNeedsNothing(t *testing.T) {
	clearEnv(t)

	cfg := LoadClient()
	assert.Equal(t, DefaultRelayURL, cfg.RelayURL)
}

func TestWhopCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyAPIKey, "secret")
	t.Setenv(KeyCompanyID, "biz_1")
	t.Setenv(KeyAPIBaseURL, "http://upstream.local")

	cfg, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, whop.Credentials{
		APIKey:         "secret",
		CompanyID:      "biz_1",
		BaseURL:        "http://upstream.local",
		ProductURLBase: DefaultProductURLBase,
	}, cfg.WhopCredentials())
}
