package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"roadsketch/internal/domain"
	"roadsketch/internal/metrics"
)

type geocodeService struct {
	provider GeocodeProvider
	cache    GeocodeCache
	minLen   int
	logger   *slog.Logger
	metrics  *metrics.Collector
}

// NewGeocodeService answers from cache first. cache and m may be nil.
func NewGeocodeService(provider GeocodeProvider, cache GeocodeCache, minLen int, logger *slog.Logger, m *metrics.Collector) GeocodeService {
	if minLen < 1 {
		minLen = 3
	}
	return &geocodeService{
		provider: provider,
		cache:    cache,
		minLen:   minLen,
		logger:   logger,
		metrics:  m,
	}
}

func (s *geocodeService) count(source string) {
	if s.metrics != nil {
		s.metrics.GeocodeLookups.WithLabelValues(source).Inc()
	}
}

// Lookup returns candidates for query. Queries shorter than the minimum
// length yield an empty list without touching the provider.
func (s *geocodeService) Lookup(ctx context.Context, query string) ([]domain.GeocodeResult, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < s.minLen {
		s.count("short")
		return []domain.GeocodeResult{}, nil
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, q)
		if err != nil {
			s.logger.Warn("geocode cache read failed", slog.Any("error", err))
		} else if ok {
			s.count("cache")
			return cached, nil
		}
	}

	results, err := s.provider.Search(ctx, q)
	if err != nil {
		s.count("error")
		s.logger.Warn("geocode provider failed", slog.String("query", q), slog.Any("error", err))
		return nil, err
	}
	s.count("provider")
	if results == nil {
		results = []domain.GeocodeResult{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, results); err != nil {
			s.logger.Warn("geocode cache write failed", slog.Any("error", err))
		}
	}
	return results, nil
}
