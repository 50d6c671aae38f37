// Package httptransport is the thin HTTP layer. It delegates to the
// property service without embedding business logic so transport concerns
// remain isolated.
package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"propertytag/internal/platform/middleware"
	"propertytag/internal/property/models"
	"propertytag/internal/property/service"
	"propertytag/pkg/domainerrors"
)

// Service defines the operations the transport layer needs.
type Service interface {
	Issue(ctx context.Context, in service.IssueInput) (*service.IssueResult, error)
	List(ctx context.Context, filter string, page int) (*service.Listing, error)
	Get(ctx context.Context, propertyID string) (*models.Record, error)
	Save(ctx context.Context, propertyID string, in service.EditInput) (*models.Record, error)
}

// Handler handles property endpoints.
type Handler struct {
	logger     *slog.Logger
	properties Service
}

// New creates a property Handler.
func New(properties Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, properties: properties}
}

// Register registers the property routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	pr := chi.NewRouter()
	pr.Use(middleware.Recovery(h.logger))
	pr.Use(middleware.RequestID)
	pr.Use(middleware.Logger(h.logger))
	pr.Post("/properties", h.handleIssue)
	pr.Get("/properties", h.handleList)
	pr.Get("/properties/{propertyID}", h.handleGet)
	pr.Put("/properties/{propertyID}", h.handleSave)
	pr.Get("/properties/{propertyID}/qr", h.handleServeQR)

	r.Mount("/", pr)
}

func (h *Handler) handleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(ctx, w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.properties.Issue(ctx, service.IssueInput{
		PropertyID:   req.PropertyID,
		PurchaseDate: req.PurchaseDate,
		PropertyName: req.PropertyName,
		Description:  req.Description,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, issueResponse{
		Record:       toRecordResponse(result.Record),
		QRPath:       result.Path,
		PathRecorded: result.PathRecorded,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeError(ctx, w, domainerrors.New(domainerrors.CodeBadRequest, "page must be a positive integer"))
			return
		}
		page = n
	}

	listing, err := h.properties.List(ctx, r.URL.Query().Get("q"), page)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	records := make([]recordResponse, 0, len(listing.Records))
	for _, rec := range listing.Records {
		records = append(records, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, listResponse{
		Records:    records,
		Page:       listing.Page,
		TotalPages: listing.TotalPages,
		Total:      listing.Total,
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rec, err := h.properties.Get(ctx, chi.URLParam(r, "propertyID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(ctx, w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}

	rec, err := h.properties.Save(ctx, chi.URLParam(r, "propertyID"), service.EditInput{
		PurchaseDate: req.PurchaseDate,
		PropertyName: req.PropertyName,
		Description:  req.Description,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// handleServeQR serves the generated tag image for printing or display.
func (h *Handler) handleServeQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rec, err := h.properties.Get(ctx, chi.URLParam(r, "propertyID"))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if rec.QRCodePath == "" {
		h.writeError(ctx, w, domainerrors.New(domainerrors.CodeNotFound,
			"no tag image has been generated for this property"))
		return
	}
	http.ServeFile(w, r, rec.QRCodePath)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	h.logger.WarnContext(ctx, "request failed",
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
	writeError(w, err)
}
