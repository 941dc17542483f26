// Package directory orchestrates the phonebook operations: input
// validation, phone-number normalization, and the duplicate-safe insert
// against the directory store.
package directory
