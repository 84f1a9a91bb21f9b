package app

import (
	"context"
	"io"

	"semdiff/internal"
	"semdiff/internal/errors"
	"semdiff/ports"
)

// RenderService re-exports a saved session without prompting
type RenderService struct {
	store      ports.SessionStore
	exporter   *ExportService
	summaryOut io.Writer
	logger     *internal.Logger
}

// NewRenderService creates a render service
func NewRenderService(store ports.SessionStore, exporter *ExportService, summaryOut io.Writer, logger *internal.Logger) *RenderService {
	return &RenderService{store: store, exporter: exporter, summaryOut: summaryOut, logger: logger}
}

// Render loads the session at path and runs every exporter on it
func (s *RenderService) Render(ctx context.Context, path string) (*SessionResult, error) {
	ds, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(errors.WithCode(errors.CodeInvalidInput, err), "failed to load session %s", path)
	}
	s.logger.Info("rendering session %s (%d properties)", ds.SessionID, len(ds.Properties))

	artifacts, err := s.exporter.Export(ctx, ds)
	if err != nil {
		return &SessionResult{Dataset: ds, Artifacts: artifacts}, err
	}
	if err := PrintSummary(s.summaryOut, ds); err != nil {
		s.logger.Warn("summary unavailable: %v", err)
	}
	return &SessionResult{Dataset: ds, Artifacts: artifacts}, nil
}
