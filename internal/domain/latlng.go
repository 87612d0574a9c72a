package domain

import (
	"encoding/json"
	"fmt"
)

// LatLng is a geographic coordinate. It is encoded as a two element JSON
// array, [lat, lon], to match the persisted sketch format.
type LatLng struct {
	Lat float64
	Lng float64
}

func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lng})
}

func (p *LatLng) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("latlng: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("latlng: expected [lat, lon], got %d values", len(pair))
	}
	p.Lat, p.Lng = pair[0], pair[1]
	return nil
}

func (p LatLng) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lng)
}
