package service

import (
	"context"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/internal/export"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type SketchService interface {
	Create(ctx context.Context, owner uuid.UUID, req domain.SaveSketchRequest) (uuid.UUID, error)
	Update(ctx context.Context, owner, id uuid.UUID, req domain.SaveSketchRequest) error
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Sketch, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*domain.Sketch, error)
	List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

type SketchRepository interface {
	Create(ctx context.Context, owner uuid.UUID, s *domain.Sketch) (uuid.UUID, error)
	Update(ctx context.Context, owner uuid.UUID, id uuid.UUID, s *domain.Sketch) error
	Get(ctx context.Context, owner uuid.UUID, id uuid.UUID) (*domain.Sketch, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*domain.Sketch, error)
	List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error)
	Delete(ctx context.Context, owner uuid.UUID, id uuid.UUID) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, ev domain.SketchEvent) error
}

type EventSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.SketchEvent, error)
}

// Геокодинг
type GeocodeService interface {
	Lookup(ctx context.Context, query string) ([]domain.GeocodeResult, error)
}

type GeocodeProvider interface {
	Search(ctx context.Context, query string) ([]domain.GeocodeResult, error)
}

type GeocodeCache interface {
	Get(ctx context.Context, query string) ([]domain.GeocodeResult, bool, error)
	Set(ctx context.Context, query string, results []domain.GeocodeResult) error
}

// Экспорт
type ExportService interface {
	Export(ctx context.Context, owner, id uuid.UUID) (export.File, error)
	ExportPublic(ctx context.Context, id uuid.UUID) (export.File, error)
}

type ExportRunner interface {
	Submit(ctx context.Context, sc export.Scene) (export.File, error)
}

type Service struct {
	SketchService  SketchService
	GeocodeService GeocodeService
	ExportService  ExportService
}

func NewService(
	sketchService SketchService,
	geocodeService GeocodeService,
	exportService ExportService,
) *Service {
	return &Service{
		SketchService:  sketchService,
		GeocodeService: geocodeService,
		ExportService:  exportService,
	}
}
