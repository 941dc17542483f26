// Package server provides the HTTP server for the PhoneBook API.
//
// This package implements the core HTTP server that handles all PhoneBook
// REST API requests. It uses gorilla/mux for routing and provides
// middleware for API key authentication and audit logging.
//
// # Server Setup
//
//	srv := server.NewServer(db, keyring, auditStore, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Keyring: API key to role binding
//   - Directory: validation, normalization and store orchestration
//   - AuditStore: audit trail persistence
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the PhoneBook API endpoints:
//
//   - GET  /                       - Welcome page
//   - GET  /PhoneBook/list         - List all entries
//   - POST /PhoneBook/add          - Add an entry
//   - PUT  /PhoneBook/deleteByName - Delete entries by full name
//   - PUT  /PhoneBook/deleteByNumber - Delete an entry by phone number
package server
