// Package service orchestrates the issuance pipeline and the listing and
// edit flows on top of the record store and the artifact pipeline. It keeps
// orchestration out of handlers and translates store facts into coded
// domain errors.
package service

import (
	"log/slog"

	"propertytag/internal/artifact"
	"propertytag/internal/platform/metrics"
	"propertytag/internal/property/store"
)

// Service coordinates the record store and the artifact pipeline.
type Service struct {
	store      store.Store
	compositor *artifact.Compositor
	qrDir      string
	pageSize   int
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// New wires a Service. qrDir must exist; main creates it at startup.
// metrics may be nil (tests).
func New(st store.Store, compositor *artifact.Compositor, qrDir string, pageSize int, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:      st,
		compositor: compositor,
		qrDir:      qrDir,
		pageSize:   pageSize,
		logger:     logger,
		metrics:    m,
	}
}
