package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"phonebook-api/pkg/directory"
	"phonebook-api/pkg/server"
	"phonebook-api/pkg/server/middleware"
	"phonebook-api/pkg/server/store"
)

// PersonRequest is the request body for POST /PhoneBook/add
type PersonRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// RegisterPhoneBookEndpoints registers the /PhoneBook routes. All of them
// require a valid API key; mutations additionally require the read-write
// role.
func RegisterPhoneBookEndpoints(s *server.Server) {
	svc := s.Directory

	sub := s.Router.PathPrefix("/PhoneBook").Subrouter()
	sub.Use(middleware.NewAPIKeyAuthenticator(s.Keyring).Middleware)

	sub.HandleFunc("/list", handleList(svc)).Methods("GET")
	sub.HandleFunc("/add", handleAdd(svc)).Methods("POST")
	sub.HandleFunc("/deleteByName", handleDeleteByName(svc)).Methods("PUT")
	sub.HandleFunc("/deleteByNumber", handleDeleteByNumber(svc)).Methods("PUT")
}

// requireWrite rejects callers whose role doesn't allow mutations. The
// authenticator middleware has already run, so a missing role means the
// route was wired without it; treat that as forbidden too.
func requireWrite(w http.ResponseWriter, r *http.Request) bool {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok || !role.CanWrite() {
		respondWithError(w, http.StatusForbidden, "Insufficient permissions")
		return false
	}
	return true
}

// requestParam reads a named parameter from the query string, falling
// back to a JSON object body.
func requestParam(r *http.Request, name string) string {
	if value := r.URL.Query().Get(name); value != "" {
		return value
	}

	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return ""
	}
	return body[name]
}

func handleList(svc *directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.List()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list entries")
			return
		}
		respondWithJSON(w, http.StatusOK, entries)
	}
}

func handleAdd(svc *directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireWrite(w, r) {
			return
		}

		var person PersonRequest
		if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, "Malformed request body")
			return
		}

		_, err := svc.Add(person.FullName, person.PhoneNumber)
		switch {
		case err == nil:
			respondWithJSON(w, http.StatusOK, map[string]string{"message": "Person added successfully"})
		case errors.Is(err, directory.ErrInvalidName):
			respondWithError(w, http.StatusUnprocessableEntity, "Invalid name format")
		case errors.Is(err, directory.ErrInvalidPhone):
			respondWithError(w, http.StatusUnprocessableEntity, "Invalid phone format")
		case errors.Is(err, store.ErrDuplicateEntry):
			respondWithError(w, http.StatusBadRequest, "Person already exists in the database")
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to add entry")
		}
	}
}

func handleDeleteByName(svc *directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireWrite(w, r) {
			return
		}

		fullName := requestParam(r, "full_name")
		if fullName == "" {
			respondWithError(w, http.StatusBadRequest, "full_name is required")
			return
		}

		deleted, err := svc.DeleteByName(fullName)
		switch {
		case err == nil:
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"message": "Person deleted successfully by name",
				"deleted": deleted,
			})
		case errors.Is(err, store.ErrEntryNotFound):
			respondWithError(w, http.StatusNotFound, "Person not found in the database with that name")
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to delete entry")
		}
	}
}

func handleDeleteByNumber(svc *directory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireWrite(w, r) {
			return
		}

		phoneNumber := requestParam(r, "phone_number")
		if phoneNumber == "" {
			respondWithError(w, http.StatusBadRequest, "phone_number is required")
			return
		}

		deleted, err := svc.DeleteByNumber(phoneNumber)
		switch {
		case err == nil:
			respondWithJSON(w, http.StatusOK, map[string]interface{}{
				"message": "Person deleted successfully by phone number",
				"deleted": deleted,
			})
		case errors.Is(err, store.ErrEntryNotFound):
			respondWithError(w, http.StatusNotFound, "Person not found in the database with that phone number")
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to delete entry")
		}
	}
}
