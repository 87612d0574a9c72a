package domain

// GeocodeResult is one candidate location for a free-text query.
type GeocodeResult struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}
