package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"locallibrary/internal/httpx"
	"locallibrary/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler_Index(t *testing.T) {
	summaryRepo := &mockSummaryRepo{
		CatalogCountsFunc: func(ctx context.Context) (usecase.CatalogCounts, error) {
			return usecase.CatalogCounts{
				NumBooks:              5,
				NumInstances:          10,
				NumInstancesAvailable: 3,
				NumAuthors:            2,
				NumGenre:              4,
				TheBooks:              2,
			}, nil
		},
	}
	sessions := newMockSessionRepo()
	handler := NewHomeHandler(usecase.NewHomeService(summaryRepo, sessions))

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/", nil)
		r = r.WithContext(httpx.ContextWithSessionID(r.Context(), "sess-1"))
		handler.Index(w, r)
		return w
	}

	w := get()
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			NumBooks              int `json:"num_books"`
			NumInstances          int `json:"num_instances"`
			NumInstancesAvailable int `json:"num_instances_available"`
			NumAuthors            int `json:"num_authors"`
			NumGenre              int `json:"num_genre"`
			TheBooks              int `json:"the_books"`
			NumVisits             int `json:"num_visits"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 5, resp.Data.NumBooks)
	assert.Equal(t, 10, resp.Data.NumInstances)
	assert.Equal(t, 3, resp.Data.NumInstancesAvailable)
	assert.Equal(t, 2, resp.Data.NumAuthors)
	assert.Equal(t, 4, resp.Data.NumGenre)
	assert.Equal(t, 2, resp.Data.TheBooks)
	assert.Equal(t, 0, resp.Data.NumVisits)

	// Second visit from the same session bumps the counter.
	w = get()
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Data.NumVisits)
}
