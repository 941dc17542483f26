// Package gorm implements the store interfaces on top of GORM and
// PostgreSQL.
package gorm
