package http

import (
	"net/http"

	"locallibrary/internal/admin"
	"locallibrary/internal/httpx"
)

// AdminHandler exposes the management console descriptors read-only.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// @Summary Console model descriptors
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /admin/models [get]
func (h *AdminHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, admin.Registry, nil)
}

// @Summary Console descriptor for one model
// @Tags admin
// @Produce json
// @Security Bearer
// @Param model path string true "Model name"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /admin/models/{model} [get]
func (h *AdminHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	name := httprouterParam(r, "model")
	m, ok := admin.Find(name)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Unknown model", nil)
		return
	}
	httpx.JSONSuccess(w, m, nil)
}
