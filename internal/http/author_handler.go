package http

import (
	"encoding/json"
	"net/http"

	"locallibrary/internal/entity"
	"locallibrary/internal/httpx"
	"locallibrary/internal/usecase"
)

type AuthorHandler struct {
	authors usecase.AuthorRepository
	books   usecase.BookRepository
}

func NewAuthorHandler(authors usecase.AuthorRepository, books usecase.BookRepository) *AuthorHandler {
	return &AuthorHandler{authors: authors, books: books}
}

type authorView struct {
	entity.Author
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
}

func viewOfAuthor(a entity.Author) authorView {
	return authorView{Author: a, DisplayName: a.DisplayName(), URL: a.AbsoluteURL()}
}

// @Summary List authors
// @Description All authors ordered by last name then first name
// @Tags authors
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/authors [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize, offset := pagination(r, usecase.AuthorsPageSize)

	authors, total, err := h.authors.List(r.Context(), pageSize, offset)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	views := make([]authorView, 0, len(authors))
	for _, a := range authors {
		views = append(views, viewOfAuthor(a))
	}
	httpx.JSONSuccess(w, views, listMeta(page, pageSize, total))
}

// authorDetail adds the author's books to the detail view.
type authorDetail struct {
	authorView
	Books []bookView `json:"books"`
}

// @Summary Author detail
// @Description The author and their books ordered by title
// @Tags authors
// @Produce json
// @Security Bearer
// @Param id path string true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/authors/{id} [get]
func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	author, err := h.authors.Get(r.Context(), paramID(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	books, err := h.books.ListByAuthor(r.Context(), author.ID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	detail := authorDetail{authorView: viewOfAuthor(author), Books: make([]bookView, 0, len(books))}
	for _, b := range books {
		detail.Books = append(detail.Books, viewOfBook(b))
	}
	httpx.JSONSuccess(w, detail, nil)
}

// Birth/death ordering is deliberately not validated here; the dates
// only need to be well formed.
type authorRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=100"`
	LastName    string  `json:"last_name" validate:"required,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datestr"`
	DateOfDeath *string `json:"date_of_death" validate:"omitempty,datestr"`
}

func (req authorRequest) toEntity() (entity.Author, []httpx.ErrorDetail) {
	birth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return entity.Author{}, []httpx.ErrorDetail{{Field: "date_of_birth", Message: "invalid date"}}
	}
	death, err := parseOptionalDate(req.DateOfDeath)
	if err != nil {
		return entity.Author{}, []httpx.ErrorDetail{{Field: "date_of_death", Message: "invalid date"}}
	}
	return entity.Author{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: birth,
		DateOfDeath: death,
	}, nil
}

// @Summary Create author
// @Tags authors
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /catalog/authors [post]
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author, details := req.toEntity()
	if len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	if err := h.authors.Create(r.Context(), &author); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccessCreated(w, viewOfAuthor(author))
}

// Update edits every author field unfiltered. Adding fields to the
// model silently widens what callers may write; revisit authorization
// when that happens.
//
// @Summary Update author
// @Tags authors
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/authors/{id} [put]
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author, details := req.toEntity()
	if len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	author.ID = paramID(r)
	if err := h.authors.Update(r.Context(), &author); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, viewOfAuthor(author), nil)
}

// Delete removes an author; books keep their rows with the author
// reference cleared. Success destination is the author listing.
//
// @Summary Delete author
// @Tags authors
// @Produce json
// @Security Bearer
// @Param id path string true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/authors/{id} [delete]
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.authors.Delete(r.Context(), paramID(r)); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, nil, map[string]string{"redirect": "/catalog/authors"})
}
