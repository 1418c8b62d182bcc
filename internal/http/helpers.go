package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"locallibrary/internal/httpx"
	"locallibrary/internal/usecase"

	"github.com/julienschmidt/httprouter"
)

const dateLayout = "2006-01-02"

// paramID pulls the :id segment captured by the router.
func paramID(r *http.Request) string {
	return httprouterParam(r, "id")
}

func httprouterParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// pagination reads page/page_size query parameters, falling back to
// the listing's own default page size.
func pagination(r *http.Request, defaultSize int) (page, pageSize, offset int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultSize
	}
	return page, pageSize, (page - 1) * pageSize
}

func listMeta(page, pageSize, total int) map[string]interface{} {
	return map[string]interface{}{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// writeRepoError maps repository errors onto the response envelope.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "The requested record could not be found", nil)
	case errors.Is(err, usecase.ErrBookInUse):
		httpx.JSONError(w, http.StatusConflict, "BOOK_IN_USE", "The book still has copies and cannot be deleted", nil)
	case errors.Is(err, usecase.ErrDuplicate):
		httpx.JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "A record with those details already exists", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
