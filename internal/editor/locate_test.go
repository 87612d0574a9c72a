package editor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"roadsketch/internal/domain"
	"roadsketch/internal/geocode"
	"roadsketch/pkg/e"
)

// stepScheduler holds debounced calls until the test runs them.
type stepScheduler struct {
	mu    sync.Mutex
	queue []func()
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

func (s *stepScheduler) after(_ time.Duration, f func()) geocode.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, f)
	return noopTimer{}
}

func (s *stepScheduler) runAll() {
	s.mu.Lock()
	q := s.queue
	s.queue = nil
	s.mu.Unlock()
	for _, f := range q {
		f()
	}
}

type lookupFunc func(ctx context.Context, q string) ([]domain.GeocodeResult, error)

func (f lookupFunc) Search(ctx context.Context, q string) ([]domain.GeocodeResult, error) {
	return f(ctx, q)
}

func TestEditor_SearchLocationDebouncesAndNotifies(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var changes atomic.Int32
	sched := &stepScheduler{}
	lookup := lookupFunc(func(_ context.Context, q string) ([]domain.GeocodeResult, error) {
		calls.Add(1)
		return []domain.GeocodeResult{{Label: q, Lat: 52.0907, Lon: 5.1214}}, nil
	})

	ed := New(newFakeView(), newMemStore(), uuid.New(),
		WithOnChange(func() { changes.Add(1) }),
		WithGeocoder(lookup, geocode.WithScheduler(sched.after)),
	)

	ed.SearchLocation("D")
	ed.SearchLocation("Do")
	seq := ed.SearchLocation("Dom")
	sched.runAll()

	require.Equal(t, int32(1), calls.Load())
	res := ed.LocationResults()
	require.Equal(t, seq, res.Seq)
	require.Equal(t, "Dom", res.Query)
	require.Len(t, res.Items, 1)
	require.Positive(t, changes.Load())
}

func TestEditor_SearchLocationWithoutGeocoder(t *testing.T) {
	t.Parallel()

	ed := New(newFakeView(), newMemStore(), uuid.New())
	require.Zero(t, ed.SearchLocation("Utrecht"))
	require.Empty(t, ed.LocationResults().Items)
}

func TestEditor_GoTo(t *testing.T) {
	t.Parallel()

	view := newFakeView()
	view.SetState(MapState{Center: domain.LatLng{Lat: 0, Lng: 0}, Zoom: 5, Layer: "osm", Width: 400, Height: 300})
	ed := New(view, newMemStore(), uuid.New())

	require.NoError(t, ed.GoTo(domain.GeocodeResult{Label: "Utrecht", Lat: 52.09, Lon: 5.12}))
	st := view.State()
	require.Equal(t, domain.LatLng{Lat: 52.09, Lng: 5.12}, st.Center)
	require.Equal(t, float64(goToZoom), st.Zoom)
	require.Equal(t, "osm", st.Layer)

	view.SetState(MapState{Zoom: 18})
	require.NoError(t, ed.GoTo(domain.GeocodeResult{Lat: 1, Lon: 1}))
	require.Equal(t, 18.0, view.State().Zoom)

	err := ed.GoTo(domain.GeocodeResult{Lat: 95, Lon: 1})
	require.True(t, errors.Is(err, e.ErrInvalidCoordinates))
}

func TestEditor_CloseClearsPendingSearch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	sched := &stepScheduler{}
	lookup := lookupFunc(func(context.Context, string) ([]domain.GeocodeResult, error) {
		calls.Add(1)
		return nil, nil
	})
	ed := New(newFakeView(), newMemStore(), uuid.New(), WithGeocoder(lookup, geocode.WithScheduler(sched.after)))

	ed.SearchLocation("Utrecht")
	ed.Close()
	sched.runAll()

	require.Zero(t, calls.Load())
	require.Equal(t, "", ed.LocationResults().Query)
}
