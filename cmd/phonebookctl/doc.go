// Package main provides phonebookctl, the CLI for the PhoneBook API server.
//
// The PhoneBook API is a small HTTP service that stores name and phone
// number entries with strict input validation, phone number
// normalization, API key authorization and a per-request audit trail.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Directory store interface and GORM implementation
//   - pkg/directory: Validation, normalization and store orchestration
//   - pkg/validation: Name and phone number grammars
//   - pkg/credentials: API key to role binding
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Run database migrations
//	phonebookctl db migrate
//
//	# Start the server
//	export PHONEBOOK_API_KEYS="read-key:read,admin-key:read-write"
//	phonebookctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - PHONEBOOK_API_KEYS: Comma-separated key:role pairs (alternative to the keys file)
//   - PHONEBOOK_CONFIG_PATH: Config file directory (default: /etc/phonebook/config)
//   - PHONEBOOK_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PHONEBOOK_PORT: Server port (default: 8080)
package main
