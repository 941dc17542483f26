package endpoints

import (
	"bytes"
	_ "embed"
	"log"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"phonebook-api/pkg/server"
)

//go:embed welcome.md
var welcomeMarkdown []byte

// WelcomeMessage is the JSON welcome returned from GET /.
const WelcomeMessage = "Welcome to the PhoneBook API!"

// RegisterStatusEndpoints registers the welcome endpoint. It requires no
// API key so it can double as a liveness probe.
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleWelcome()).Methods("GET")
}

func handleWelcome() http.HandlerFunc {
	html := renderWelcomeHTML()

	return func(w http.ResponseWriter, r *http.Request) {
		// Check if JSON is requested via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			respondWithJSON(w, http.StatusOK, map[string]string{"message": WelcomeMessage})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(html)
	}
}

// renderWelcomeHTML converts the embedded welcome page to HTML once at
// registration time.
func renderWelcomeHTML() []byte {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	buf.WriteString(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>PhoneBook API</title>
  </head>
  <body>
`)
	if err := md.Convert(welcomeMarkdown, &buf); err != nil {
		// The source is embedded at build time; a conversion failure is a
		// programming error, not a runtime condition.
		log.Printf("failed to render welcome page: %v", err)
		buf.WriteString("<h1>PhoneBook API</h1>")
	}
	buf.WriteString(`  </body>
</html>
`)
	return buf.Bytes()
}
