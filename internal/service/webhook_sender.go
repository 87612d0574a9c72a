package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"roadsketch/internal/config"
	"roadsketch/internal/domain"
	"roadsketch/internal/metrics"
	"roadsketch/pkg/e"
)

const (
	popTimeout   = 5 * time.Second
	popErrorWait = 500 * time.Millisecond
)

type WebhookSender struct {
	logger  *slog.Logger
	cfg     config.WebhookConfig
	queue   EventSource
	http    *http.Client
	metrics *metrics.Collector
	backoff time.Duration
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q EventSource, m *metrics.Collector) *WebhookSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WebhookSender{
		logger:  logger,
		cfg:     cfg,
		queue:   q,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		backoff: time.Second,
	}
}

func (s *WebhookSender) Run(ctx context.Context) {
	s.logger.Info("webhookSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhookSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := s.queue.BRPop(ctx, popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			sleep(ctx, popErrorWait)
			continue
		}

		s.logger.Info("sending webhook",
			slog.String("sketch_id", ev.SketchID.String()),
			slog.String("kind", string(ev.Kind)),
		)
		s.record(s.sendWithRetry(ctx, ev))
	}
}

func (s *WebhookSender) record(delivered bool) {
	if s.metrics == nil {
		return
	}
	result := "failed"
	if delivered {
		result = "delivered"
	}
	s.metrics.WebhookDeliveries.WithLabelValues(result).Inc()
}

func (s *WebhookSender) sendWithRetry(ctx context.Context, ev domain.SketchEvent) bool {
	maxRetries := s.cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	body, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("marshal webhook payload failed", slog.String("error", err.Error()))
		return false
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return false
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.String("error", err.Error()))
			return false
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return true
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < maxRetries && !sleep(ctx, time.Duration(attempt)*s.backoff) {
			return false
		}
	}
	return false
}

// sleep reports false when ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
