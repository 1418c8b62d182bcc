package http

import (
	"encoding/json"
	"net/http"

	"locallibrary/internal/entity"
	"locallibrary/internal/httpx"
	"locallibrary/internal/usecase"
)

// TaxonomyHandler serves genres and languages, the two small lookup
// vocabularies books reference.
type TaxonomyHandler struct {
	genres    usecase.GenreRepository
	languages usecase.LanguageRepository
}

func NewTaxonomyHandler(genres usecase.GenreRepository, languages usecase.LanguageRepository) *TaxonomyHandler {
	return &TaxonomyHandler{genres: genres, languages: languages}
}

// @Summary List genres
// @Tags catalog
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/genres [get]
func (h *TaxonomyHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, genres, nil)
}

type genreRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// @Summary Create genre
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} httpx.SuccessResponse
// @Router /catalog/genres [post]
func (h *TaxonomyHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	genre := &entity.Genre{Name: req.Name}
	if err := h.genres.Create(r.Context(), genre); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccessCreated(w, genre)
}

// @Summary List languages
// @Tags catalog
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/languages [get]
func (h *TaxonomyHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.languages.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, languages, nil)
}

type languageRequest struct {
	Name string  `json:"name" validate:"required,max=50"`
	Code *string `json:"code" validate:"omitempty,len=2"`
}

// @Summary Create language
// @Tags catalog
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} httpx.SuccessResponse
// @Router /catalog/languages [post]
func (h *TaxonomyHandler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	language := &entity.Language{Name: req.Name, Code: req.Code}
	if err := h.languages.Create(r.Context(), language); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccessCreated(w, language)
}
