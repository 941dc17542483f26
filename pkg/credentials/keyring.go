package credentials

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// EnvAPIKeys is an environment-variable alternative to the keys file, a
// comma-separated list of key:role pairs, e.g.
//
//	PHONEBOOK_API_KEYS="read-key:read,admin-key:read-write"
const EnvAPIKeys = "PHONEBOOK_API_KEYS"

// Keyring holds the current API-key-to-role binding. It is safe for
// concurrent use; Reload swaps the whole map atomically under the lock.
type Keyring struct {
	mu   sync.RWMutex
	path string
	keys map[string]Role
}

// keysFile is the on-disk layout of the API keys file:
//
//	api_keys:
//	  read-key: read
//	  admin-key: read-write
type keysFile struct {
	APIKeys map[string]Role `yaml:"api_keys"`
}

// NewKeyring loads the binding from path. If path is empty, the binding is
// read from the PHONEBOOK_API_KEYS environment variable instead.
func NewKeyring(path string) (*Keyring, error) {
	k := &Keyring{path: path}
	if err := k.Reload(); err != nil {
		return nil, err
	}
	return k, nil
}

// Lookup returns the role bound to apiKey.
func (k *Keyring) Lookup(apiKey string) (Role, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	role, ok := k.keys[apiKey]
	return role, ok
}

// Len returns the number of configured keys.
func (k *Keyring) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.keys)
}

// Path returns the keys file path, empty when the binding came from the
// environment.
func (k *Keyring) Path() string {
	return k.path
}

// Reload re-reads the binding from its source. On error the previous
// binding stays in effect.
func (k *Keyring) Reload() error {
	keys, err := k.load()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("no API keys configured")
	}

	k.mu.Lock()
	k.keys = keys
	k.mu.Unlock()
	return nil
}

func (k *Keyring) load() (map[string]Role, error) {
	if k.path == "" {
		return parseEnvKeys(os.Getenv(EnvAPIKeys))
	}

	data, err := os.ReadFile(k.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read API keys file %s: %w", k.path, err)
	}

	var file keysFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse API keys file %s: %w", k.path, err)
	}
	return file.APIKeys, nil
}

func parseEnvKeys(value string) (map[string]Role, error) {
	keys := make(map[string]Role)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, roleName, found := strings.Cut(pair, ":")
		if !found || key == "" {
			return nil, fmt.Errorf("malformed %s entry %q, want key:role", EnvAPIKeys, pair)
		}
		role, err := RoleString(strings.TrimSpace(roleName))
		if err != nil {
			return nil, fmt.Errorf("malformed %s entry %q: %w", EnvAPIKeys, pair, err)
		}
		keys[strings.TrimSpace(key)] = role
	}
	return keys, nil
}
