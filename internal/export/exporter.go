package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"time"
)

const ContentTypePNG = "image/png"

// Surface produces the current picture of the map canvas.
type Surface interface {
	Capture(ctx context.Context) (image.Image, error)
}

// Chrome is the transient UI drawn over the map: toolbar, edit panels and
// context menus.
type Chrome interface {
	SetChromeVisible(visible bool)
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileName stamps prefix with the calendar date of t.
func FileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s.png", prefix, t.Format("2006-01-02"))
}

// SceneRenderer is implemented by *Renderer.
type SceneRenderer interface {
	Render(ctx context.Context, sc Scene) (*image.RGBA, error)
}

// SceneSurface captures by rendering whatever scene the callback returns at
// capture time.
type SceneSurface struct {
	Renderer SceneRenderer
	Scene    func() Scene
}

func (s SceneSurface) Capture(ctx context.Context) (image.Image, error) {
	return s.Renderer.Render(ctx, s.Scene())
}

type Exporter struct {
	surface Surface
	chrome  Chrome
	prefix  string
	now     func() time.Time
}

// NewExporter builds an exporter; chrome may be nil when the surface has no
// UI overlay.
func NewExporter(surface Surface, chrome Chrome) *Exporter {
	return &Exporter{
		surface: surface,
		chrome:  chrome,
		prefix:  "sketch",
		now:     time.Now,
	}
}

// Export hides the chrome, captures the surface and encodes a PNG. The
// chrome is shown again however the capture ends, panics included.
func (x *Exporter) Export(ctx context.Context) (f File, err error) {
	if x.chrome != nil {
		x.chrome.SetChromeVisible(false)
		defer x.chrome.SetChromeVisible(true)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("export.Exporter.Export: capture panicked: %v", r)
		}
	}()

	img, err := x.surface.Capture(ctx)
	if err != nil {
		return File{}, fmt.Errorf("export.Exporter.Export: capture: %w", err)
	}
	data, err := EncodePNG(img)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        FileName(x.prefix, x.now()),
		ContentType: ContentTypePNG,
		Data:        data,
	}, nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export.EncodePNG: %w", err)
	}
	return buf.Bytes(), nil
}
