package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"phonebook-api/pkg/audit"
)

// AuditSaver appends one record to the audit trail.
type AuditSaver interface {
	Save(record audit.Record) error
}

// Auditor is middleware that writes exactly one audit record per request,
// after the wrapped handler finishes. It wraps the router rather than
// individual routes so unmatched paths are recorded too.
type Auditor struct {
	Store AuditSaver
}

// NewAuditor creates a new audit middleware
func NewAuditor(store AuditSaver) *Auditor {
	return &Auditor{Store: store}
}

// statusRecorder captures the status code written by the wrapped handler.
// Handlers that never call WriteHeader implicitly respond 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware returns an HTTP middleware that records every request. A
// failed audit write is logged and swallowed; the client response already
// reflects the outcome of the request itself.
func (a *Auditor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		record := audit.Record{
			Timestamp: start,
			Action:    r.Method + " " + r.URL.Path,
			Details:   fmt.Sprintf("Status %d", recorder.status),
		}
		if err := a.Store.Save(record); err != nil {
			log.Printf("failed to save audit record for %s: %v", record.Action, err)
		}
	})
}
