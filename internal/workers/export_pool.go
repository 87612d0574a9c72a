package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"roadsketch/internal/export"
	"roadsketch/pkg/e"
)

type ExportResult struct {
	File export.File
	Err  error
}

type exportJob struct {
	ctx    context.Context
	scene  export.Scene
	result chan<- ExportResult
}

// ExportPool renders exports on a fixed number of workers fed by a bounded
// queue, so a burst of requests cannot start unbounded rasterizations.
type ExportPool struct {
	renderer   export.SceneRenderer
	jobs       chan exportJob
	poolSize   int
	jobTimeout time.Duration
	logger     *slog.Logger
	observe    func(d time.Duration, err error)

	done    chan struct{}
	started sync.Once
}

func NewExportPool(renderer export.SceneRenderer, poolSize, queueSize int, jobTimeout time.Duration, logger *slog.Logger) *ExportPool {
	if poolSize < 1 {
		poolSize = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &ExportPool{
		renderer:   renderer,
		jobs:       make(chan exportJob, queueSize),
		poolSize:   poolSize,
		jobTimeout: jobTimeout,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// OnJobDone registers a hook called after each job, before Run starts.
func (w *ExportPool) OnJobDone(fn func(d time.Duration, err error)) {
	w.observe = fn
}

// Run starts the workers and blocks until ctx is done. Queued jobs that no
// worker picked up fail with e.ErrUnavailable.
func (w *ExportPool) Run(ctx context.Context) {
	var wg sync.WaitGroup

	w.logger.Info("export pool STARTED", slog.Int("workers", w.poolSize))
	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}
	wg.Wait()

	close(w.done)
	for {
		select {
		case job := <-w.jobs:
			job.result <- ExportResult{Err: fmt.Errorf("workers.ExportPool: %w", e.ErrUnavailable)}
		default:
			w.logger.Info("export pool STOPPED")
			return
		}
	}
}

// Submit queues sc and waits for the encoded file.
func (w *ExportPool) Submit(ctx context.Context, sc export.Scene) (export.File, error) {
	const op = "workers.ExportPool.Submit"

	select {
	case <-w.done:
		return export.File{}, fmt.Errorf("%s: %w", op, e.ErrUnavailable)
	default:
	}

	result := make(chan ExportResult, 1)
	job := exportJob{ctx: ctx, scene: sc, result: result}

	select {
	case w.jobs <- job:
	case <-w.done:
		return export.File{}, fmt.Errorf("%s: %w", op, e.ErrUnavailable)
	case <-ctx.Done():
		return export.File{}, e.WrapError(ctx, op, ctx.Err())
	}

	select {
	case r := <-result:
		return r.File, r.Err
	case <-ctx.Done():
		return export.File{}, e.WrapError(ctx, op, ctx.Err())
	}
}

func (w *ExportPool) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.jobs:
			w.processJob(job)
		}
	}
}

func (w *ExportPool) processJob(job exportJob) {
	if err := job.ctx.Err(); err != nil {
		job.result <- ExportResult{Err: e.WrapError(job.ctx, "workers.ExportPool.process", err)}
		return
	}

	ctx := job.ctx
	if w.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(job.ctx, w.jobTimeout)
		defer cancel()
	}

	start := time.Now()
	surface := export.SceneSurface{
		Renderer: w.renderer,
		Scene:    func() export.Scene { return job.scene },
	}
	f, err := export.NewExporter(surface, nil).Export(ctx)
	if err != nil {
		w.logger.Warn("export failed", slog.Any("error", err))
	}
	if w.observe != nil {
		w.observe(time.Since(start), err)
	}
	job.result <- ExportResult{File: f, Err: err}
}
