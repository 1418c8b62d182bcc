package http

import (
	"encoding/json"
	"net/http"

	"locallibrary/internal/entity"
	"locallibrary/internal/httpx"
	"locallibrary/internal/usecase"
)

type BookHandler struct {
	books     usecase.BookRepository
	instances usecase.BookInstanceRepository
}

func NewBookHandler(books usecase.BookRepository, instances usecase.BookInstanceRepository) *BookHandler {
	return &BookHandler{books: books, instances: instances}
}

// bookView decorates a book with its display fields for listings.
type bookView struct {
	entity.Book
	DisplayGenre string `json:"display_genre"`
	URL          string `json:"url"`
}

func viewOfBook(b entity.Book) bookView {
	return bookView{Book: b, DisplayGenre: b.DisplayGenre(), URL: b.AbsoluteURL()}
}

// @Summary List books
// @Description All books ordered by title, three per page by default
// @Tags books
// @Produce json
// @Security Bearer
// @Param q query string false "Title filter"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize, offset := pagination(r, usecase.BooksPageSize)

	params := usecase.ListParams{
		Q:      r.URL.Query().Get("q"),
		Limit:  pageSize,
		Offset: offset,
	}
	books, total, err := h.books.List(r.Context(), params)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	views := make([]bookView, 0, len(books))
	for _, b := range books {
		views = append(views, viewOfBook(b))
	}
	httpx.JSONSuccess(w, views, listMeta(page, pageSize, total))
}

// bookDetail adds the book's copies to the detail view.
type bookDetail struct {
	bookView
	Copies []copyView `json:"copies"`
}

type copyView struct {
	entity.BookInstance
	StatusLabel string `json:"status_label"`
}

// @Summary Book detail
// @Description The book and each of its copies with availability
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.books.Get(r.Context(), paramID(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	copies, err := h.instances.ListByBook(r.Context(), book.ID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	detail := bookDetail{bookView: viewOfBook(book), Copies: make([]copyView, 0, len(copies))}
	for _, c := range copies {
		detail.Copies = append(detail.Copies, copyView{BookInstance: c, StatusLabel: c.Status.Label()})
	}
	httpx.JSONSuccess(w, detail, nil)
}

type bookRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Summary    string   `json:"summary" validate:"max=1000"`
	ISBN       string   `json:"isbn" validate:"required,isbn13"`
	AuthorID   *string  `json:"author_id"`
	LanguageID *string  `json:"language_id"`
	GenreIDs   []string `json:"genre_ids"`
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /catalog/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book := &entity.Book{
		Title:      req.Title,
		Summary:    req.Summary,
		ISBN:       req.ISBN,
		AuthorID:   req.AuthorID,
		LanguageID: req.LanguageID,
	}
	if err := h.books.Create(r.Context(), book, req.GenreIDs); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccessCreated(w, viewOfBook(*book))
}

// Update edits the full field set. Every field is editable, so any
// field added to the model becomes writable here too; revisit the
// authorization story before widening the set.
//
// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book := &entity.Book{
		ID:         paramID(r),
		Title:      req.Title,
		Summary:    req.Summary,
		ISBN:       req.ISBN,
		AuthorID:   req.AuthorID,
		LanguageID: req.LanguageID,
	}
	if err := h.books.Update(r.Context(), book, req.GenreIDs); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, viewOfBook(*book), nil)
}

// Delete removes a book. While copies still reference it the delete is
// refused with 409; the success destination is the book listing.
//
// @Summary Delete book
// @Tags books
// @Produce json
// @Security Bearer
// @Param id path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /catalog/books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.books.Delete(r.Context(), paramID(r)); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, nil, map[string]string{"redirect": "/catalog/books"})
}
