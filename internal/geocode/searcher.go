// Package geocode turns free-text place queries into coordinates. Searcher
// is the editor side: it debounces keystrokes and keeps only the answer to
// the newest query. Nominatim is the server side provider.
package geocode

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"roadsketch/internal/domain"
)

const (
	DefaultMinLength = 3
	DefaultDelay     = 300 * time.Millisecond
	DefaultTimeout   = 10 * time.Second
)

//go:generate mockgen -source=searcher.go -destination=mocks/mock.go

// Lookup resolves a query to ordered candidates. An empty slice means no
// match.
type Lookup interface {
	Search(ctx context.Context, query string) ([]domain.GeocodeResult, error)
}

// Timer is the part of *time.Timer the searcher needs.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. time.AfterFunc satisfies it through
// RealScheduler.
type Scheduler func(d time.Duration, f func()) Timer

func RealScheduler(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Result is what the searcher delivers for one issued query.
type Result struct {
	Seq   uint64
	Query string
	Items []domain.GeocodeResult
	Err   error
}

type Option func(*Searcher)

func WithDelay(d time.Duration) Option { return func(s *Searcher) { s.delay = d } }

func WithMinLength(n int) Option { return func(s *Searcher) { s.minLen = n } }

func WithTimeout(d time.Duration) Option { return func(s *Searcher) { s.timeout = d } }

func WithScheduler(fn Scheduler) Option { return func(s *Searcher) { s.after = fn } }

func WithLogger(l *slog.Logger) Option { return func(s *Searcher) { s.logger = l } }

// Searcher debounces live input. Only the most recent query is sent after a
// quiet period, and a result is delivered only if no newer query was issued
// in the meantime, whatever order responses complete in.
type Searcher struct {
	lookup   Lookup
	onResult func(Result)
	delay    time.Duration
	minLen   int
	timeout  time.Duration
	after    Scheduler
	logger   *slog.Logger

	mu     sync.Mutex
	seq    uint64
	timer  Timer
	cancel context.CancelFunc
	latest Result
	closed bool
}

// NewSearcher builds a searcher that reports to onResult. onResult runs on
// the scheduler's goroutine, or synchronously for short queries.
func NewSearcher(lookup Lookup, onResult func(Result), opts ...Option) *Searcher {
	s := &Searcher{
		lookup:   lookup,
		onResult: onResult,
		delay:    DefaultDelay,
		minLen:   DefaultMinLength,
		timeout:  DefaultTimeout,
		after:    RealScheduler,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query issues q. It supersedes any pending or in-flight query.
func (s *Searcher) Query(q string) uint64 {
	q = strings.TrimSpace(q)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0
	}
	s.seq++
	seq := s.seq
	s.stopLocked()

	if utf8.RuneCountInString(q) < s.minLen {
		s.mu.Unlock()
		s.deliver(Result{Seq: seq, Query: q, Items: []domain.GeocodeResult{}})
		return seq
	}
	s.timer = s.after(s.delay, func() { s.fire(seq, q) })
	s.mu.Unlock()
	return seq
}

func (s *Searcher) fire(seq uint64, q string) {
	s.mu.Lock()
	if seq != s.seq || s.closed {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	s.cancel = cancel
	s.mu.Unlock()

	items, err := s.lookup.Search(ctx, q)
	cancel()
	if err != nil {
		s.logger.Debug("geocode lookup failed", slog.String("query", q), slog.Any("error", err))
	}
	if items == nil {
		items = []domain.GeocodeResult{}
	}
	s.deliver(Result{Seq: seq, Query: q, Items: items, Err: err})
}

func (s *Searcher) deliver(r Result) {
	s.mu.Lock()
	if r.Seq != s.seq || s.closed {
		s.mu.Unlock()
		s.logger.Debug("stale geocode result dropped", slog.String("query", r.Query))
		return
	}
	s.latest = r
	s.mu.Unlock()
	if s.onResult != nil {
		s.onResult(r)
	}
}

// Latest returns the last delivered result.
func (s *Searcher) Latest() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Close drops any pending or in-flight query. Later calls to Query are
// ignored.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.seq++
	s.stopLocked()
}

func (s *Searcher) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
