// Package store defines the storage interfaces the server depends on.
// Implementations live in subpackages; handlers and services only see
// these interfaces and the sentinel errors they return.
package store
