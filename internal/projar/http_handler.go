package projar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"projarapi/internal/httpx"
	"projarapi/internal/logger"
)

type HTTPHandler struct {
	svc *Service
	log *zap.Logger
}

func NewHTTPHandler(svc *Service, log *zap.Logger) *HTTPHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPHandler{svc: svc, log: log}
}

// Routes registers the catalog endpoints on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Get("/", h.Summary)
	r.Get("/records", h.List)
	r.Post("/records", h.List)
	r.Get("/records/{id}", h.Get)
	r.Get("/api/authors", h.Authors)
	r.Get("/api/contents", h.Contents)
}

// Summary handles GET /
// @Summary Catalog summary
// @Tags catalog
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router / [get]
func (h *HTTPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, map[string]int{"total_records": h.svc.Total(r.Context())}, nil)
}

// List handles GET|POST /records
// @Summary Filter catalog records
// @Description Every parameter is optional; malformed numbers are ignored.
// @Tags catalog
// @Produce json
// @Param id query int false "Record id"
// @Param call_number query string false "Call number substring"
// @Param author_id query int false "Author id"
// @Param author_role query string false "all, primary, secondary-corporate or secondary-event"
// @Param location_id query int false "Location id"
// @Param month query int false "Month of the record date"
// @Param year query int false "Year of the record date, used with month"
// @Param content query string false "Content substring"
// @Param executor_id query int false "Executor id"
// @Param subject query string false "Subject words"
// @Param subject_id query int false "Subject id"
// @Param sector_id query int false "Sector id"
// @Param title query string false "Title words"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /records [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			values = r.Form
		}
	}

	page, err := h.svc.Browse(r.Context(), ParamsFromValues(values))
	if err != nil {
		h.internalError(w, r, "browse records", err)
		return
	}

	httpx.JSONSuccess(w, r, page, map[string]any{"total": len(page.Records)})
}

// Get handles GET /records/{id}
// @Summary Get a catalog record
// @Tags catalog
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /records/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "record id must be a number", nil)
		return
	}

	rec, err := h.svc.Get(r.Context(), int(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
			return
		}
		h.internalError(w, r, "get record", err)
		return
	}
	httpx.JSONSuccess(w, r, rec, nil)
}

// Authors handles GET /api/authors
// @Summary Authors for autocomplete
// @Tags autocomplete
// @Produce json
// @Success 200 {array} Author
// @Router /api/authors [get]
func (h *HTTPHandler) Authors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.Authors(r.Context())
	if err != nil {
		h.internalError(w, r, "list authors", err)
		return
	}
	if authors == nil {
		authors = []Author{}
	}
	httpx.JSON(w, http.StatusOK, authors)
}

// Contents handles GET /api/contents
// @Summary Distinct content values for autocomplete
// @Tags autocomplete
// @Produce json
// @Success 200 {array} string
// @Router /api/contents [get]
func (h *HTTPHandler) Contents(w http.ResponseWriter, r *http.Request) {
	contents, err := h.svc.Contents(r.Context())
	if err != nil {
		h.internalError(w, r, "list contents", err)
		return
	}
	if contents == nil {
		contents = []string{}
	}
	httpx.JSON(w, http.StatusOK, contents)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger.FromContext(r.Context(), h.log).Error(op, zap.Error(err))
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
