package http

import (
	"net/http"

	"locallibrary/internal/httpx"
	"locallibrary/internal/usecase"
)

type HomeHandler struct {
	home *usecase.HomeService
}

func NewHomeHandler(home *usecase.HomeService) *HomeHandler {
	return &HomeHandler{home: home}
}

// @Summary Catalog home summary
// @Description Counts of books, copies, authors and genres, plus the session's visit counter
// @Tags catalog
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	summary, err := h.home.Summarize(r.Context(), httpx.SessionIDFrom(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, summary, nil)
}
