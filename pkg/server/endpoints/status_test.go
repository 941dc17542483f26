package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleWelcome(t *testing.T) {
	t.Run("returns HTML welcome page", func(t *testing.T) {
		handler := handleWelcome()

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Your PhoneBook server is running!")
		assert.Contains(t, w.Body.String(), "/PhoneBook/list")
	})

	t.Run("returns JSON when Accept header is application/json", func(t *testing.T) {
		handler := handleWelcome()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		assert.JSONEq(t, `{"message": "Welcome to the PhoneBook API!"}`, w.Body.String())
	})

	t.Run("returns JSON when format=json", func(t *testing.T) {
		handler := handleWelcome()

		req := httptest.NewRequest("GET", "/?format=json", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("does not require an API key", func(t *testing.T) {
		handler := handleWelcome()

		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
