package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"phonebook-api/pkg/audit"
	"phonebook-api/pkg/credentials"
	"phonebook-api/pkg/directory"
	"phonebook-api/pkg/server/middleware"
	storegorm "phonebook-api/pkg/server/store/gorm"
)

type Server struct {
	Router     *mux.Router
	DB         *gorm.DB
	Keyring    *credentials.Keyring
	Directory  *directory.Service
	AuditStore *audit.Store
	srv        *http.Server
}

// NewServer wires the directory service over db and builds the handler
// chain. The audit middleware wraps the router itself, not individual
// routes, so requests to unmatched paths are recorded too. Pass a nil
// auditStore to disable the audit trail.
func NewServer(
	db *gorm.DB,
	keyring *credentials.Keyring,
	auditStore *audit.Store,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()

	var handler http.Handler = router
	if auditStore != nil {
		handler = middleware.NewAuditor(auditStore).Middleware(handler)
	}

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, handler),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:     router,
		DB:         db,
		Keyring:    keyring,
		Directory:  directory.NewService(storegorm.NewDirectoryStore(db)),
		AuditStore: auditStore,
		srv:        srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
