package workers

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"roadsketch/internal/domain"
	"roadsketch/internal/export"
	"roadsketch/internal/geometry"
	"roadsketch/pkg/e"

	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	calls   atomic.Int32
	block   chan struct{}
	failure error
}

func (f *fakeRenderer) Render(ctx context.Context, sc export.Scene) (*image.RGBA, error) {
	f.calls.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.failure != nil {
		return nil, f.failure
	}
	return image.NewRGBA(image.Rect(0, 0, sc.View.Width, sc.View.Height)), nil
}

func testScene() export.Scene {
	return export.Scene{
		Sketch: &domain.Sketch{Title: "t"},
		View:   geometry.Viewport{CenterLat: 52, CenterLng: 5, Zoom: 15, Width: 32, Height: 16},
	}
}

func startPool(t *testing.T, r export.SceneRenderer, workers, queue int, timeout time.Duration, setup ...func(*ExportPool)) (*ExportPool, context.CancelFunc) {
	t.Helper()
	pool := NewExportPool(r, workers, queue, timeout, slog.New(slog.DiscardHandler))
	for _, fn := range setup {
		fn(pool)
	}
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		pool.Run(ctx)
		close(stopped)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})
	return pool, cancel
}

func TestExportPool_RendersPNG(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{}
	var observed atomic.Int32
	pool, _ := startPool(t, r, 2, 4, time.Second, func(p *ExportPool) {
		p.OnJobDone(func(time.Duration, error) { observed.Add(1) })
	})

	f, err := pool.Submit(context.Background(), testScene())
	require.NoError(t, err)
	require.Equal(t, export.ContentTypePNG, f.ContentType)
	require.Regexp(t, `^sketch-\d{4}-\d{2}-\d{2}\.png$`, f.Name)

	img, err := png.Decode(bytes.NewReader(f.Data))
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, int32(1), r.calls.Load())
	require.Equal(t, int32(1), observed.Load())
}

func TestExportPool_PropagatesRenderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	pool, _ := startPool(t, &fakeRenderer{failure: boom}, 1, 1, time.Second)

	_, err := pool.Submit(context.Background(), testScene())
	require.ErrorIs(t, err, boom)
}

func TestExportPool_JobTimeout(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{block: make(chan struct{})}
	pool, _ := startPool(t, r, 1, 1, 20*time.Millisecond)

	_, err := pool.Submit(context.Background(), testScene())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExportPool_CallerCancel(t *testing.T) {
	t.Parallel()

	r := &fakeRenderer{block: make(chan struct{})}
	pool, _ := startPool(t, r, 1, 1, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := pool.Submit(ctx, testScene())
	require.ErrorIs(t, err, e.ErrDeadline)
}

func TestExportPool_StoppedPoolIsUnavailable(t *testing.T) {
	t.Parallel()

	pool := NewExportPool(&fakeRenderer{}, 1, 1, time.Second, slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pool.Run(ctx)

	_, err := pool.Submit(context.Background(), testScene())
	require.ErrorIs(t, err, e.ErrUnavailable)
}
