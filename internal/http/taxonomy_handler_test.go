package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"locallibrary/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyHandler_Genres(t *testing.T) {
	genres := &mockGenreRepo{
		ListFunc: func(ctx context.Context) ([]entity.Genre, error) {
			return []entity.Genre{{ID: "g1", Name: "Fantasy"}, {ID: "g2", Name: "Science Fiction"}}, nil
		},
		CreateFunc: func(ctx context.Context, genre *entity.Genre) error {
			genre.ID = "g3"
			return nil
		},
	}
	handler := NewTaxonomyHandler(genres, &mockLanguageRepo{})

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/genres", nil)
		handler.ListGenres(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []entity.Genre `json:"data"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "Fantasy", resp.Data[0].Name)
	})

	t.Run("create", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/genres", newBody(`{"name":"Poetry"}`))
		handler.CreateGenre(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "g3")
	})

	t.Run("create without name", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/genres", newBody(`{}`))
		handler.CreateGenre(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaxonomyHandler_Languages(t *testing.T) {
	code := "fr"
	languages := &mockLanguageRepo{
		ListFunc: func(ctx context.Context) ([]entity.Language, error) {
			return []entity.Language{{ID: "l1", Name: "French", Code: &code}}, nil
		},
		CreateFunc: func(ctx context.Context, language *entity.Language) error {
			language.ID = "l2"
			return nil
		},
	}
	handler := NewTaxonomyHandler(&mockGenreRepo{}, languages)

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/languages", nil)
		handler.ListLanguages(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "French")
	})

	t.Run("create with bad code", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/languages", newBody(`{"name":"German","code":"deu"}`))
		handler.CreateLanguage(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/languages", newBody(`{"name":"German","code":"de"}`))
		handler.CreateLanguage(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
