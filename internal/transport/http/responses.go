package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"propertytag/internal/property/models"
	"propertytag/pkg/domainerrors"
)

type issueRequest struct {
	PropertyID   string `json:"property_id"`
	PurchaseDate string `json:"purchase_date"`
	PropertyName string `json:"property_name"`
	Description  string `json:"description"`
}

type editRequest struct {
	PurchaseDate string `json:"purchase_date"`
	PropertyName string `json:"property_name"`
	Description  string `json:"description"`
}

type recordResponse struct {
	ID           int64  `json:"id"`
	PropertyID   string `json:"property_id"`
	PurchaseDate string `json:"purchase_date"`
	PropertyName string `json:"property_name"`
	Description  string `json:"description"`
	QRPath       string `json:"qr_path,omitempty"`
}

type issueResponse struct {
	Record       recordResponse `json:"record"`
	QRPath       string         `json:"qr_path"`
	PathRecorded bool           `json:"path_recorded"`
}

type listResponse struct {
	Records    []recordResponse `json:"records"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Total      int              `json:"total"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toRecordResponse(r *models.Record) recordResponse {
	return recordResponse{
		ID:           r.ID,
		PropertyID:   r.PropertyID,
		PurchaseDate: r.PurchaseDate,
		PropertyName: r.PropertyName,
		Description:  r.Description,
		QRPath:       r.QRCodePath,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes domain error translation to HTTP responses so every
// failure surfaces with its distinct code and message.
func writeError(w http.ResponseWriter, err error) {
	var derr *domainerrors.Error
	if !errors.As(err, &derr) {
		derr = domainerrors.New(domainerrors.CodeInternal, "internal error")
	}
	writeJSON(w, domainerrors.ToHTTPStatus(derr.Code), errorResponse{
		Error:   string(derr.Code),
		Message: derr.Message,
	})
}
