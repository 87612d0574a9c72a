package service

import (
	"context"
	"log/slog"

	"roadsketch/internal/domain"
	"roadsketch/internal/export"
	"roadsketch/internal/metrics"

	"github.com/google/uuid"
)

type ExportOptions struct {
	Width  int
	Height int
	Zoom   float64
}

type exportService struct {
	repo    SketchRepository
	runner  ExportRunner
	opts    ExportOptions
	logger  *slog.Logger
	metrics *metrics.Collector
}

func NewExportService(repo SketchRepository, runner ExportRunner, opts ExportOptions, logger *slog.Logger, m *metrics.Collector) ExportService {
	return &exportService{
		repo:    repo,
		runner:  runner,
		opts:    opts,
		logger:  logger,
		metrics: m,
	}
}

// Export renders the stored sketch as it was last saved: the saved map
// centre and zoom, no selection highlight.
func (s *exportService) Export(ctx context.Context, owner, id uuid.UUID) (export.File, error) {
	sk, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		return export.File{}, err
	}
	return s.render(ctx, sk)
}

func (s *exportService) ExportPublic(ctx context.Context, id uuid.UUID) (export.File, error) {
	sk, err := s.repo.GetPublic(ctx, id)
	if err != nil {
		return export.File{}, err
	}
	return s.render(ctx, sk)
}

func (s *exportService) render(ctx context.Context, sk *domain.Sketch) (export.File, error) {
	sc := export.SceneFor(sk, s.opts.Width, s.opts.Height, s.opts.Zoom)
	f, err := s.runner.Submit(ctx, sc)

	result := "ok"
	if err != nil {
		result = "error"
	}
	if s.metrics != nil {
		s.metrics.Exports.WithLabelValues(result).Inc()
	}
	if err != nil {
		s.logger.Error("export failed", slog.Any("error", err))
		return export.File{}, err
	}
	s.logger.Info("sketch exported", slog.String("file", f.Name), slog.Int("bytes", len(f.Data)))
	return f, nil
}
