// Package credentials consumes the external API-key-to-role binding.
//
// The binding is data owned by the deployment, not by this service: a YAML
// file (or an environment variable) maps each API key to a role, and the
// keyring answers "which role does this key carry". Keys can be rotated
// without a restart; a file watcher reloads the binding when the file
// changes.
package credentials
