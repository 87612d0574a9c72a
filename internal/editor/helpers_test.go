package editor

import (
	"context"
	"sort"
	"sync"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/internal/geometry"
	"roadsketch/pkg/e"

	"github.com/google/uuid"
)

// fakeView maps 1e-5 degrees to one pixel, y growing southwards.
type fakeView struct {
	mu          sync.Mutex
	interactive bool
	toggles     []bool
	state       MapState
}

func newFakeView() *fakeView {
	return &fakeView{state: MapState{Center: domain.LatLng{Lat: 52.09, Lng: 5.12}, Zoom: 17, Layer: "osm", Width: 400, Height: 300}}
}

func (v *fakeView) SetInteractive(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.interactive = enabled
	v.toggles = append(v.toggles, enabled)
}

func (v *fakeView) Interactive() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.interactive
}

func (v *fakeView) ToScreen(p domain.LatLng) geometry.Point {
	return geometry.Point{X: p.Lng * 1e5, Y: -p.Lat * 1e5}
}

func (v *fakeView) ToGeo(pt geometry.Point) domain.LatLng {
	return domain.LatLng{Lat: -pt.Y / 1e5, Lng: pt.X / 1e5}
}

func (v *fakeView) State() MapState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *fakeView) SetState(s MapState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = s
}

// memStore is an in-memory Store. gate, when set, blocks each call until a
// value is received so tests can hold a request in flight.
type memStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*domain.Sketch
	creates int
	updates int
	gate    chan struct{}
	entered chan struct{}
	clock   time.Time
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[uuid.UUID]*domain.Sketch),
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) wait() {
	if m.entered != nil {
		m.entered <- struct{}{}
	}
	if m.gate != nil {
		<-m.gate
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) Create(ctx context.Context, owner uuid.UUID, s *domain.Sketch) (uuid.UUID, error) {
	m.wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	rec := s.Clone()
	rec.ID = &id
	rec.OwnerID = owner
	rec.CreatedAt = m.tick()
	rec.UpdatedAt = rec.CreatedAt
	m.records[id] = rec
	m.creates++
	return id, nil
}

func (m *memStore) Update(ctx context.Context, owner, id uuid.UUID, s *domain.Sketch) error {
	m.wait()
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.records[id]
	if !ok || old.OwnerID != owner {
		return e.ErrNotFound
	}
	rec := s.Clone()
	rec.ID = &id
	rec.OwnerID = owner
	rec.CreatedAt = old.CreatedAt
	rec.UpdatedAt = m.tick()
	m.records[id] = rec
	m.updates++
	return nil
}

func (m *memStore) Get(ctx context.Context, owner, id uuid.UUID) (*domain.Sketch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.OwnerID != owner {
		return nil, e.ErrNotFound
	}
	return rec.Clone(), nil
}

func (m *memStore) List(ctx context.Context, owner uuid.UUID, page, limit int) ([]domain.SketchSummary, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.SketchSummary
	for id, rec := range m.records {
		if rec.OwnerID != owner {
			continue
		}
		out = append(out, domain.SketchSummary{ID: id, Title: rec.Title, Description: rec.Description,
			IsPublic: rec.IsPublic, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, int64(len(out)), nil
}

func (m *memStore) Delete(ctx context.Context, owner, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok || rec.OwnerID != owner {
		return e.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func pt(lat, lng float64) domain.LatLng { return domain.LatLng{Lat: lat, Lng: lng} }

func screen(lat, lng float64) geometry.Point {
	return geometry.Point{X: lng * 1e5, Y: -lat * 1e5}
}

func intPtr(v int) *int { return &v }

func f64Ptr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
