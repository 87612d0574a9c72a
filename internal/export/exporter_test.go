package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingChrome struct {
	calls []bool
}

func (c *recordingChrome) SetChromeVisible(v bool) { c.calls = append(c.calls, v) }

type surfaceFunc func(ctx context.Context) (image.Image, error)

func (f surfaceFunc) Capture(ctx context.Context) (image.Image, error) { return f(ctx) }

func TestExport_HidesChromeDuringCapture(t *testing.T) {
	chrome := &recordingChrome{}
	x := NewExporter(surfaceFunc(func(context.Context) (image.Image, error) {
		require.Equal(t, []bool{false}, chrome.calls)
		return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
	}), chrome)
	x.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

	f, err := x.Export(context.Background())
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, chrome.calls)
	require.Equal(t, "sketch-2026-03-14.png", f.Name)
	require.Equal(t, ContentTypePNG, f.ContentType)

	img, err := png.Decode(bytes.NewReader(f.Data))
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
}

func TestExport_RestoresChromeOnError(t *testing.T) {
	chrome := &recordingChrome{}
	x := NewExporter(surfaceFunc(func(context.Context) (image.Image, error) {
		return nil, errors.New("gpu lost")
	}), chrome)

	_, err := x.Export(context.Background())
	require.Error(t, err)
	require.Equal(t, []bool{false, true}, chrome.calls)
}

func TestExport_RestoresChromeOnPanic(t *testing.T) {
	chrome := &recordingChrome{}
	x := NewExporter(surfaceFunc(func(context.Context) (image.Image, error) {
		panic("boom")
	}), chrome)

	_, err := x.Export(context.Background())
	require.ErrorContains(t, err, "panicked")
	require.Equal(t, []bool{false, true}, chrome.calls)
}

func TestExport_NilChrome(t *testing.T) {
	x := NewExporter(surfaceFunc(func(context.Context) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}), nil)
	_, err := x.Export(context.Background())
	require.NoError(t, err)
}
