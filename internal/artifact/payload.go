// Package artifact turns a persisted property record into the printable tag
// image: a QR code embedding the record, composited onto the branded
// template with a purchase-date caption.
package artifact

import (
	"fmt"

	"propertytag/internal/property/models"
)

// BuildPayload renders the text embedded in the QR code. The line order is
// part of the external contract; scanners in the field parse it, so it never
// changes. The payload is a snapshot: later edits to the record do not
// update tags that were already printed.
func BuildPayload(r *models.Record) string {
	return fmt.Sprintf("ID: %d\nProperty ID: %s\nPurchase Date: %s\nProperty Name: %s\nDescription: %s",
		r.ID, r.PropertyID, r.PurchaseDate, r.PropertyName, r.Description)
}

// FileName derives the stable artifact file name for a property id. The
// service rejects ids containing path separators or ".." before they reach
// here, so the result always stays inside the artifact directory.
// Re-issuing the same id would target the same file, but duplicate ids are
// rejected at insert so the path never collides in practice.
func FileName(propertyID string) string {
	return "qr_" + propertyID + ".png"
}
