package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PHONEBOOK_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.AuditEnabled)
	assert.Equal(t, "default", cfg.Source("port"))
	assert.Equal(t, "default", cfg.Source("audit_enabled"))
}

func TestLoadFromFile(t *testing.T) {
	dir := writeConfigFile(t, `
bind_address: 127.0.0.1
port: 9090
api_keys_file: /etc/phonebook/api-keys
audit_enabled: false
`)
	t.Setenv("PHONEBOOK_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.BindAddress)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/etc/phonebook/api-keys", cfg.APIKeysFile)
	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, "file", cfg.Source("port"))
	assert.Equal(t, "file", cfg.Source("audit_enabled"))
}

func TestLoadFileAuditEnabledFalseIsNotDefault(t *testing.T) {
	// audit_enabled defaults to true; an explicit false in the file must
	// win even though false is the zero value.
	dir := writeConfigFile(t, "audit_enabled: false\n")
	t.Setenv("PHONEBOOK_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, "file", cfg.Source("audit_enabled"))
	assert.Equal(t, "default", cfg.Source("port"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := writeConfigFile(t, "port: 9090\n")
	t.Setenv("PHONEBOOK_CONFIG_PATH", dir)
	t.Setenv("PHONEBOOK_PORT", "7070")
	t.Setenv("PHONEBOOK_AUDIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "environment", cfg.Source("port"))
	assert.False(t, cfg.AuditEnabled)
	assert.Equal(t, "environment", cfg.Source("audit_enabled"))
}

func TestLoadMalformedFile(t *testing.T) {
	dir := writeConfigFile(t, "port: [not a number\n")
	t.Setenv("PHONEBOOK_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	assert.NoError(t, cfg.Validate())

	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	cfg.BindAddress = "not-an-ip"
	assert.Error(t, cfg.Validate())
}

func TestAddr(t *testing.T) {
	cfg := newDefault()
	cfg.BindAddress = "127.0.0.1"
	cfg.Port = 9090
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestFormatTextListsAllAttributes(t *testing.T) {
	t.Setenv("PHONEBOOK_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	text := cfg.FormatText()
	for _, attr := range cfg.Attributes() {
		assert.Contains(t, text, attr.Name)
	}
}
