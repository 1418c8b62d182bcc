package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"locallibrary/internal/entity"
	"locallibrary/internal/httpx"
	"locallibrary/internal/usecase"
)

type InstanceHandler struct {
	instances usecase.BookInstanceRepository
	renewals  *usecase.RenewalService
	clock     usecase.Clocker
}

func NewInstanceHandler(instances usecase.BookInstanceRepository, renewals *usecase.RenewalService, clock usecase.Clocker) *InstanceHandler {
	return &InstanceHandler{instances: instances, renewals: renewals, clock: clock}
}

type instanceView struct {
	entity.BookInstance
	StatusLabel string `json:"status_label"`
	IsOverdue   bool   `json:"is_overdue"`
}

func (h *InstanceHandler) viewOf(bi entity.BookInstance) instanceView {
	return instanceView{
		BookInstance: bi,
		StatusLabel:  bi.Status.Label(),
		IsOverdue:    bi.IsOverdue(usecase.Today(h.clock)),
	}
}

func (h *InstanceHandler) viewsOf(instances []entity.BookInstance) []instanceView {
	views := make([]instanceView, 0, len(instances))
	for _, bi := range instances {
		views = append(views, h.viewOf(bi))
	}
	return views
}

// @Summary Copies on loan to the caller
// @Description The caller's borrowed copies, soonest due first
// @Tags loans
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/mybooks [get]
func (h *InstanceHandler) MyBooks(w http.ResponseWriter, r *http.Request) {
	page, pageSize, offset := pagination(r, usecase.LoansPageSize)

	instances, total, err := h.instances.ListLoanedToUser(r.Context(), httpx.UserIDFrom(r), pageSize, offset)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, h.viewsOf(instances), listMeta(page, pageSize, total))
}

// @Summary All borrowed copies
// @Description Every copy with a borrower, grouped by borrower. Librarians only.
// @Tags loans
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /catalog/borrowed [get]
func (h *InstanceHandler) AllBorrowed(w http.ResponseWriter, r *http.Request) {
	page, pageSize, offset := pagination(r, usecase.LoansPageSize)

	instances, total, err := h.instances.ListBorrowed(r.Context(), pageSize, offset)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, h.viewsOf(instances), listMeta(page, pageSize, total))
}

// RenewForm is the first step of the renewal workflow: the copy plus
// a suggested date three weeks out. Nothing is written.
//
// @Summary Renewal form data
// @Tags loans
// @Produce json
// @Security Bearer
// @Param id path string true "Copy ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/instances/{id}/renew [get]
func (h *InstanceHandler) RenewForm(w http.ResponseWriter, r *http.Request) {
	instance, proposed, err := h.renewals.Prepare(r.Context(), paramID(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccess(w, map[string]interface{}{
		"book_instance": h.viewOf(instance),
		"renewal_date":  proposed.Format(dateLayout),
	}, nil)
}

type renewRequest struct {
	RenewalDate string `json:"renewal_date" validate:"required,datestr"`
}

// Renew validates the submitted date and persists it. Validation
// failures come back attached to the renewal_date field with no
// mutation; success redirects to the all-borrowed listing.
//
// @Summary Renew a copy
// @Tags loans
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Copy ID"
// @Success 303 {string} string "redirect to /catalog/borrowed"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/instances/{id}/renew [post]
func (h *InstanceHandler) Renew(w http.ResponseWriter, r *http.Request) {
	var req renewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	date, err := parseDate(req.RenewalDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]httpx.ErrorDetail{{Field: "renewal_date", Message: "invalid date"}})
		return
	}

	_, err = h.renewals.Renew(r.Context(), paramID(r), date)
	switch {
	case err == nil:
		http.Redirect(w, r, "/catalog/borrowed", http.StatusSeeOther)
	case errors.Is(err, usecase.ErrRenewalInPast):
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]httpx.ErrorDetail{{Field: "renewal_date", Message: "Invalid date: renewal in past"}})
	case errors.Is(err, usecase.ErrRenewalTooFarAhead):
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
			[]httpx.ErrorDetail{{Field: "renewal_date", Message: "Invalid date: renewal more than 4 weeks ahead"}})
	default:
		writeRepoError(w, err)
	}
}

type instanceRequest struct {
	BookID  string `json:"book_id" validate:"required"`
	Imprint string `json:"imprint" validate:"required,max=200"`
}

// Create registers a new physical copy. It starts in Maintenance.
//
// @Summary Create copy
// @Tags loans
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /catalog/instances [post]
func (h *InstanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req instanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	instance := &entity.BookInstance{
		BookID:  req.BookID,
		Imprint: req.Imprint,
	}
	if err := h.instances.Create(r.Context(), instance); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSONSuccessCreated(w, h.viewOf(*instance))
}
