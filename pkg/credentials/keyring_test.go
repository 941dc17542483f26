package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeysFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api-keys.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewKeyringFromFile(t *testing.T) {
	path := writeKeysFile(t, "api_keys:\n  read-key: read\n  admin-key: read-write\n")

	keyring, err := NewKeyring(path)
	require.NoError(t, err)
	assert.Equal(t, 2, keyring.Len())

	role, ok := keyring.Lookup("read-key")
	require.True(t, ok)
	assert.Equal(t, RoleRead, role)
	assert.False(t, role.CanWrite())

	role, ok = keyring.Lookup("admin-key")
	require.True(t, ok)
	assert.Equal(t, RoleReadWrite, role)
	assert.True(t, role.CanWrite())

	_, ok = keyring.Lookup("unknown-key")
	assert.False(t, ok)
}

func TestNewKeyringRejectsUnknownRole(t *testing.T) {
	path := writeKeysFile(t, "api_keys:\n  some-key: admin\n")

	_, err := NewKeyring(path)
	assert.Error(t, err)
}

func TestNewKeyringRejectsEmptyBinding(t *testing.T) {
	path := writeKeysFile(t, "api_keys: {}\n")

	_, err := NewKeyring(path)
	assert.Error(t, err)
}

func TestKeyringReload(t *testing.T) {
	path := writeKeysFile(t, "api_keys:\n  old-key: read\n")

	keyring, err := NewKeyring(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("api_keys:\n  new-key: read-write\n"), 0o600))
	require.NoError(t, keyring.Reload())

	_, ok := keyring.Lookup("old-key")
	assert.False(t, ok)
	role, ok := keyring.Lookup("new-key")
	require.True(t, ok)
	assert.Equal(t, RoleReadWrite, role)
}

func TestKeyringReloadKeepsPreviousKeysOnError(t *testing.T) {
	path := writeKeysFile(t, "api_keys:\n  good-key: read\n")

	keyring, err := NewKeyring(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("api_keys: {}\n"), 0o600))
	assert.Error(t, keyring.Reload())

	_, ok := keyring.Lookup("good-key")
	assert.True(t, ok)
}

func TestNewKeyringFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKeys, "read-key:read, admin-key:read-write")

	keyring, err := NewKeyring("")
	require.NoError(t, err)

	role, ok := keyring.Lookup("admin-key")
	require.True(t, ok)
	assert.Equal(t, RoleReadWrite, role)
}

func TestNewKeyringFromEnvMalformed(t *testing.T) {
	t.Setenv(EnvAPIKeys, "just-a-key")

	_, err := NewKeyring("")
	assert.Error(t, err)
}
