package editor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"roadsketch/internal/domain"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
)

//go:generate mockgen -source=persistence.go -destination=mocks/mock.go

// Store is the sketch storage service, scoped per owner.
type Store interface {
	Create(ctx context.Context, owner uuid.UUID, s *domain.Sketch) (uuid.UUID, error)
	Update(ctx context.Context, owner uuid.UUID, id uuid.UUID, s *domain.Sketch) error
	Get(ctx context.Context, owner uuid.UUID, id uuid.UUID) (*domain.Sketch, error)
	List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error)
	Delete(ctx context.Context, owner uuid.UUID, id uuid.UUID) error
}

// Persistence saves and loads whole sketches through a Store. Saves of the
// same sketch never overlap: a second save waits for the first.
type Persistence struct {
	store Store
	owner uuid.UUID

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
	// creating serializes saves of sketches that have no id yet.
	creating sync.Mutex
}

func NewPersistence(store Store, owner uuid.UUID) *Persistence {
	return &Persistence{
		store: store,
		owner: owner,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (p *Persistence) Owner() uuid.UUID { return p.owner }

func (p *Persistence) lockFor(id uuid.UUID) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[id]
	if !ok {
		l = &sync.Mutex{}
		p.locks[id] = l
	}
	return l
}

// ValidateForSave rejects sketches the store would refuse, before any
// network call.
func ValidateForSave(s *domain.Sketch) error {
	if s == nil {
		return fmt.Errorf("editor.ValidateForSave: nil sketch: %w", e.ErrInvalidInput)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("editor.ValidateForSave: %w", e.ErrTitleRequired)
	}
	return nil
}

// Save creates s when it has no id and updates it in place otherwise. It
// returns the record id. s itself is not modified.
func (p *Persistence) Save(ctx context.Context, s *domain.Sketch) (uuid.UUID, error) {
	const op = "editor.Persistence.Save"

	if err := ValidateForSave(s); err != nil {
		return uuid.Nil, err
	}
	snap := s.Clone()

	if snap.ID == nil {
		p.creating.Lock()
		defer p.creating.Unlock()
		id, err := p.store.Create(ctx, p.owner, snap)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: create: %w", op, err)
		}
		return id, nil
	}

	id := *snap.ID
	l := p.lockFor(id)
	l.Lock()
	defer l.Unlock()
	if err := p.store.Update(ctx, p.owner, id, snap); err != nil {
		return uuid.Nil, fmt.Errorf("%s: update %s: %w", op, id, err)
	}
	return id, nil
}

// Load fetches the full sketch with id.
func (p *Persistence) Load(ctx context.Context, id uuid.UUID) (*domain.Sketch, error) {
	s, err := p.store.Get(ctx, p.owner, id)
	if err != nil {
		return nil, fmt.Errorf("editor.Persistence.Load %s: %w", id, err)
	}
	if s.ID == nil {
		s.ID = &id
	}
	return s, nil
}

// List returns summaries of the owner's sketches for a picker.
func (p *Persistence) List(ctx context.Context, page, limit int) ([]domain.SketchSummary, int64, error) {
	items, total, err := p.store.List(ctx, p.owner, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("editor.Persistence.List: %w", err)
	}
	return items, total, nil
}

// Delete removes the stored record. In-memory state is the caller's concern.
func (p *Persistence) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.store.Delete(ctx, p.owner, id); err != nil {
		return fmt.Errorf("editor.Persistence.Delete %s: %w", id, err)
	}
	p.mu.Lock()
	delete(p.locks, id)
	p.mu.Unlock()
	return nil
}
