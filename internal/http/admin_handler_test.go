package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ListModels(t *testing.T) {
	handler := NewAdminHandler()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/admin/models", nil)
	handler.ListModels(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			Model string `json:"model"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	names := make([]string, 0, len(resp.Data))
	for _, m := range resp.Data {
		names = append(names, m.Model)
	}
	assert.ElementsMatch(t, []string{"author", "book", "book_instance", "genre", "language"}, names)
}

func TestAdminHandler_GetModel(t *testing.T) {
	handler := NewAdminHandler()

	t.Run("book_instance descriptor", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin/models/book_instance", nil)
		handler.GetModel(w, withParams(r, httprouter.Params{{Key: "model", Value: "book_instance"}}))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Availability")
		assert.Contains(t, body, "due_back")
	})

	t.Run("unknown model", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin/models/nope", nil)
		handler.GetModel(w, withParams(r, httprouter.Params{{Key: "model", Value: "nope"}}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
