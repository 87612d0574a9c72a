package editor

import (
	"fmt"
	"log/slog"

	"roadsketch/internal/domain"
	"roadsketch/internal/geocode"
	"roadsketch/pkg/e"
)

// goToZoom is the closest zoom a jump to a search result leaves the map at
// when it was zoomed further out.
const goToZoom = 16

// WithGeocoder enables location search. Results are reported through the
// WithOnChange callback; read them with LocationResults.
func WithGeocoder(lookup geocode.Lookup, opts ...geocode.Option) Option {
	return func(ed *Editor) {
		ed.searcher = geocode.NewSearcher(lookup, func(geocode.Result) {
			if ed.onChange != nil {
				ed.onChange()
			}
		}, opts...)
	}
}

// SearchLocation feeds live search input. It returns the query's sequence
// number, or 0 when no geocoder is configured.
func (ed *Editor) SearchLocation(q string) uint64 {
	if ed.searcher == nil {
		return 0
	}
	return ed.searcher.Query(q)
}

func (ed *Editor) LocationResults() geocode.Result {
	if ed.searcher == nil {
		return geocode.Result{}
	}
	return ed.searcher.Latest()
}

// GoTo recenters the map on a search result.
func (ed *Editor) GoTo(r domain.GeocodeResult) error {
	p := domain.LatLng{Lat: r.Lat, Lng: r.Lon}
	if !p.Valid() {
		return fmt.Errorf("editor.Editor.GoTo: %s: %w", p, e.ErrInvalidCoordinates)
	}
	return ed.update(func() error {
		st := ed.view.State()
		st.Center = p
		if st.Zoom < goToZoom {
			st.Zoom = goToZoom
		}
		ed.view.SetState(st)
		ed.logger.Debug("map recentered", slog.String("label", r.Label), slog.String("center", p.String()))
		return nil
	})
}

// clearSearch supersedes any pending lookup with an empty result.
func (ed *Editor) clearSearch() {
	if ed.searcher != nil {
		ed.searcher.Query("")
	}
}
