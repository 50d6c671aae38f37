package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"propertytag/internal/artifact"
	"propertytag/internal/property/models"
	"propertytag/pkg/domainerrors"
	"propertytag/pkg/sentinel"
)

// IssueInput carries the four user-entered fields, untrimmed.
type IssueInput struct {
	PropertyID   string
	PurchaseDate string
	PropertyName string
	Description  string
}

// IssueResult is the explicit value a caller holds after issuance; there is
// no process-global "last generated tag" state.
type IssueResult struct {
	Record *models.Record
	Image  image.Image
	Path   string
	// PathRecorded is false when the tag image was written but the
	// back-write of its path onto the record failed. The record and the
	// file are both valid; only the recorded path is missing.
	PathRecorded bool
}

// Issue runs the full pipeline: validate, insert, encode, composite, save,
// back-write. The record is inserted before any encoding because the
// assigned id is embedded in the payload. Failures after the insert leave
// the record persisted without a tag image; the error code tells the caller
// which side of the insert the failure landed on, so they know whether a
// retry would create a duplicate.
func (s *Service) Issue(ctx context.Context, in IssueInput) (*IssueResult, error) {
	rec := &models.Record{
		PropertyID:   strings.TrimSpace(in.PropertyID),
		PurchaseDate: strings.TrimSpace(in.PurchaseDate),
		PropertyName: strings.TrimSpace(in.PropertyName),
		Description:  strings.TrimSpace(in.Description),
	}
	if rec.PropertyID == "" || rec.PropertyName == "" {
		s.metrics.IncIssuanceFailure("validate")
		return nil, domainerrors.New(domainerrors.CodeValidation, "property ID and name are required")
	}
	// The property id names the artifact file; separators or dot-dot would
	// let the PNG escape the configured directory.
	if strings.ContainsAny(rec.PropertyID, `/\`) || strings.Contains(rec.PropertyID, "..") {
		s.metrics.IncIssuanceFailure("validate")
		return nil, domainerrors.New(domainerrors.CodeValidation,
			`property ID must not contain "/", "\" or ".."`)
	}

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		s.metrics.IncIssuanceFailure("persist")
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, domainerrors.Wrap(domainerrors.CodeDuplicate,
				fmt.Sprintf("property ID %q already exists", rec.PropertyID), err)
		}
		return nil, domainerrors.Wrap(domainerrors.CodeDatabase, "could not store the property record", err)
	}
	rec.ID = id
	s.metrics.IncRecordsCreated()

	qr, err := artifact.EncodeQR(artifact.BuildPayload(rec))
	if err != nil {
		s.metrics.IncIssuanceFailure("encode")
		return nil, domainerrors.Wrap(domainerrors.CodeEncoding,
			fmt.Sprintf("record %d is stored but its QR code could not be rendered", rec.ID), err)
	}

	img, err := s.compositor.Composite(qr, rec.PurchaseDate)
	if err != nil {
		s.metrics.IncIssuanceFailure("composite")
		if errors.Is(err, artifact.ErrTemplateMissing) {
			return nil, domainerrors.Wrap(domainerrors.CodeTemplateMissing,
				fmt.Sprintf("record %d is stored but the template image is missing; check the assets folder", rec.ID), err)
		}
		return nil, domainerrors.Wrap(domainerrors.CodeEncoding,
			fmt.Sprintf("record %d is stored but the tag image could not be composed", rec.ID), err)
	}

	path := filepath.Join(s.qrDir, artifact.FileName(rec.PropertyID))
	if err := artifact.WritePNG(path, img); err != nil {
		s.metrics.IncIssuanceFailure("save")
		return nil, domainerrors.Wrap(domainerrors.CodeIO,
			fmt.Sprintf("record %d is stored but the tag image could not be saved", rec.ID), err)
	}
	s.metrics.IncArtifactsGenerated()

	result := &IssueResult{Record: rec, Image: img, Path: path, PathRecorded: true}
	if err := s.store.SetQRCodePath(ctx, rec.ID, path); err != nil {
		// Best effort: the file exists and the record is valid without a
		// recorded path. Warn, do not roll anything back.
		s.logger.WarnContext(ctx, "tag image saved but path back-write failed",
			"record_id", rec.ID,
			"path", path,
			"error", err.Error(),
		)
		result.PathRecorded = false
	} else {
		rec.QRCodePath = path
	}
	return result, nil
}
