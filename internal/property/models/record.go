package models

// Record is the canonical property entity. ID is assigned by the store on
// insert, is monotonically increasing and is never reused. PropertyID is the
// human-assigned key shown on the physical tag; the store enforces its
// uniqueness. QRCodePath is empty until a tag image has been written for
// this record.
//
// PurchaseDate is stored verbatim in MM-DD-YYYY form. The system never does
// date arithmetic on it, so it stays a string end to end.
type Record struct {
	ID           int64
	PropertyID   string
	PurchaseDate string
	PropertyName string
	Description  string
	QRCodePath   string
}

// Clone returns a copy so store internals never alias caller-held records.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}
