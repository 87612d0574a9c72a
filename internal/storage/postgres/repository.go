package postgres

import (
	"context"

	"roadsketch/internal/domain"

	"github.com/google/uuid"
)

// SketchRepository is owner scoped: a sketch of another owner behaves as if
// it did not exist.
type SketchRepository interface {
	Create(ctx context.Context, owner uuid.UUID, s *domain.Sketch) (uuid.UUID, error)
	Update(ctx context.Context, owner uuid.UUID, id uuid.UUID, s *domain.Sketch) error
	Get(ctx context.Context, owner uuid.UUID, id uuid.UUID) (*domain.Sketch, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*domain.Sketch, error)
	List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error)
	Delete(ctx context.Context, owner uuid.UUID, id uuid.UUID) error
}

func (p *Postgres) Sketches() SketchRepository { return p.Sketch }
