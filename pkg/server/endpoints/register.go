package endpoints

import (
	"phonebook-api/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterPhoneBookEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
