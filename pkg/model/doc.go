// Package model contains the database models for the phonebook schema.
package model
