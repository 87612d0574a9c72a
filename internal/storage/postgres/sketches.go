package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"roadsketch/internal/domain"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Sketches stores whole sketches in one row. Incidents, lines and metadata
// are jsonb documents; they are always written and read as a unit.
type Sketches struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSketches(pool *pgxpool.Pool, logger *slog.Logger) *Sketches {
	return &Sketches{pool: pool, logger: logger}
}

type payload struct {
	incidents []byte
	lines     []byte
	metadata  []byte
}

func encode(s *domain.Sketch) (payload, error) {
	incidents := s.Incidents
	if incidents == nil {
		incidents = []domain.Incident{}
	}
	lines := s.DrawnLines
	if lines == nil {
		lines = []domain.DrawnLine{}
	}

	var p payload
	var err error
	if p.incidents, err = json.Marshal(incidents); err != nil {
		return p, err
	}
	if p.lines, err = json.Marshal(lines); err != nil {
		return p, err
	}
	if p.metadata, err = json.Marshal(s.Metadata); err != nil {
		return p, err
	}
	return p, nil
}

func (p *Sketches) Create(ctx context.Context, owner uuid.UUID, s *domain.Sketch) (uuid.UUID, error) {
	const op = "postgres.Sketch.Create"

	body, err := encode(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: encode: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO sketches (id, owner_id, title, description, incidents, drawn_lines, metadata, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	id := uuid.New()
	_, err = p.pool.Exec(ctx, query,
		id,
		owner,
		s.Title,
		s.Description,
		body.incidents,
		body.lines,
		body.metadata,
		s.IsPublic,
	)
	if err != nil {
		p.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
		return uuid.Nil, e.WrapError(ctx, op, err)
	}

	return id, nil
}

// Update overwrites the record in place and advances updated_at.
func (p *Sketches) Update(ctx context.Context, owner uuid.UUID, id uuid.UUID, s *domain.Sketch) error {
	const op = "postgres.Sketch.Update"

	body, err := encode(s)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, e.ErrInvalidInput)
	}

	const query = `
		UPDATE sketches
		SET title       = $3,
			description = $4,
			incidents   = $5,
			drawn_lines = $6,
			metadata    = $7,
			is_public   = $8,
			updated_at  = GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')
		WHERE id = $1 AND owner_id = $2
	`

	tag, err := p.pool.Exec(ctx, query,
		id,
		owner,
		s.Title,
		s.Description,
		body.incidents,
		body.lines,
		body.metadata,
		s.IsPublic,
	)
	if err != nil {
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

const selectSketch = `
	SELECT id, owner_id, title, description, incidents, drawn_lines, metadata, is_public, created_at, updated_at
	FROM sketches
`

func (p *Sketches) Get(ctx context.Context, owner uuid.UUID, id uuid.UUID) (*domain.Sketch, error) {
	return p.get(ctx, "postgres.Sketch.Get", selectSketch+`WHERE id = $1 AND owner_id = $2`, id, owner)
}

// GetPublic reads a sketch regardless of owner, but only if it is shared.
func (p *Sketches) GetPublic(ctx context.Context, id uuid.UUID) (*domain.Sketch, error) {
	return p.get(ctx, "postgres.Sketch.GetPublic", selectSketch+`WHERE id = $1 AND is_public`, id)
}

func (p *Sketches) get(ctx context.Context, op, query string, args ...any) (*domain.Sketch, error) {
	var (
		s                         domain.Sketch
		id                        uuid.UUID
		incidents, lines, metaRaw []byte
	)
	err := p.pool.QueryRow(ctx, query, args...).Scan(
		&id,
		&s.OwnerID,
		&s.Title,
		&s.Description,
		&incidents,
		&lines,
		&metaRaw,
		&s.IsPublic,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	s.ID = &id

	if err := json.Unmarshal(incidents, &s.Incidents); err != nil {
		return nil, fmt.Errorf("%s: decode incidents: %w", op, e.ErrInternal)
	}
	if err := json.Unmarshal(lines, &s.DrawnLines); err != nil {
		return nil, fmt.Errorf("%s: decode lines: %w", op, e.ErrInternal)
	}
	if err := json.Unmarshal(metaRaw, &s.Metadata); err != nil {
		return nil, fmt.Errorf("%s: decode metadata: %w", op, e.ErrInternal)
	}
	return &s, nil
}

// List returns summaries, most recently updated first.
func (p *Sketches) List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error) {
	const op = "postgres.Sketch.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM sketches WHERE owner_id = $1`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, owner).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id, title, description, is_public, created_at, updated_at
		FROM sketches
		WHERE owner_id = $1
		ORDER BY updated_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, listQuery, owner, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.SketchSummary, 0, limit)
	for rows.Next() {
		var sum domain.SketchSummary
		if err := rows.Scan(
			&sum.ID,
			&sum.Title,
			&sum.Description,
			&sum.IsPublic,
			&sum.CreatedAt,
			&sum.UpdatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return out, total, nil
}

// Delete removes the row for good.
func (p *Sketches) Delete(ctx context.Context, owner uuid.UUID, id uuid.UUID) error {
	const op = "postgres.Sketch.Delete"

	tag, err := p.pool.Exec(ctx, `DELETE FROM sketches WHERE id = $1 AND owner_id = $2`, id, owner)
	if err != nil {
		p.logger.Error("db delete failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
