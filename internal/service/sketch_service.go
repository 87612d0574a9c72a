package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/internal/geometry"
	"roadsketch/internal/metrics"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
)

type sketchService struct {
	repo    SketchRepository
	events  EventQueue
	logger  *slog.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

// NewSketchService wires the sketch use cases. events and m may be nil:
// without a queue no lifecycle events are published.
func NewSketchService(repo SketchRepository, events EventQueue, logger *slog.Logger, m *metrics.Collector) SketchService {
	return &sketchService{
		repo:    repo,
		events:  events,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// normalize enforces the incident invariants the editor keeps, so a client
// that skips them still stores a consistent sketch.
func normalize(req domain.SaveSketchRequest) (*domain.Sketch, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, e.ErrTitleRequired
	}
	if z := req.Metadata.Zoom; z != nil && !(*z >= domain.MinZoom && *z <= domain.MaxZoom) {
		return nil, fmt.Errorf("zoom %v: %w", *z, e.ErrInvalidInput)
	}
	s := req.ToSketch()
	for i := range s.Incidents {
		inc := &s.Incidents[i]
		inc.Rotation = geometry.NormalizeRotation(inc.Rotation)
		inc.Scale = geometry.ClampScale(inc.Scale, domain.MinScale, domain.MaxScale)
	}
	for _, l := range s.DrawnLines {
		if len(l.Positions) < 2 {
			return nil, fmt.Errorf("line %q: %w", l.ID, e.ErrTooFewPoints)
		}
	}
	return s, nil
}

func (s *sketchService) Create(ctx context.Context, owner uuid.UUID, req domain.SaveSketchRequest) (uuid.UUID, error) {
	const op = "service.Sketch.Create"

	sk, err := normalize(req)
	if err != nil {
		s.logger.Warn("sketch rejected", slog.String("op", op), slog.Any("error", err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.Create(ctx, owner, sk)
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("sketch created",
		slog.String("id", id.String()),
		slog.String("owner", owner.String()),
		slog.Int("incidents", len(sk.Incidents)),
		slog.Int("lines", len(sk.DrawnLines)),
	)
	s.publish(ctx, id, owner, domain.SketchCreated)
	return id, nil
}

func (s *sketchService) Update(ctx context.Context, owner, id uuid.UUID, req domain.SaveSketchRequest) error {
	const op = "service.Sketch.Update"

	sk, err := normalize(req)
	if err != nil {
		s.logger.Warn("sketch rejected", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.Update(ctx, owner, id, sk); err != nil {
		return err
	}

	s.logger.Info("sketch updated", slog.String("id", id.String()))
	s.publish(ctx, id, owner, domain.SketchUpdated)
	return nil
}

func (s *sketchService) Get(ctx context.Context, owner, id uuid.UUID) (*domain.Sketch, error) {
	return s.repo.Get(ctx, owner, id)
}

func (s *sketchService) GetPublic(ctx context.Context, id uuid.UUID) (*domain.Sketch, error) {
	return s.repo.GetPublic(ctx, id)
}

func (s *sketchService) List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error) {
	items, total, err := s.repo.List(ctx, owner, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *sketchService) Delete(ctx context.Context, owner, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}
	s.logger.Info("sketch deleted", slog.String("id", id.String()))
	s.publish(ctx, id, owner, domain.SketchDeleted)
	return nil
}

// publish never fails the caller: the sketch is already stored.
func (s *sketchService) publish(ctx context.Context, id, owner uuid.UUID, kind domain.SketchEventKind) {
	if s.metrics != nil {
		s.metrics.SketchEvents.WithLabelValues(string(kind)).Inc()
	}
	if s.events == nil {
		return
	}
	ev := domain.SketchEvent{SketchID: id, OwnerID: owner, Kind: kind, At: s.now()}
	if err := s.events.Enqueue(ctx, ev); err != nil {
		s.logger.Error("enqueue sketch event failed", slog.String("id", id.String()), slog.Any("error", err))
		return
	}
	s.logger.Debug("sketch event enqueued", slog.String("id", id.String()), slog.String("kind", string(kind)))
}
