package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: slog.HandlerOptions{Level: slog.LevelInfo}}
	l := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("component", "export"))

	l.Debug("hidden")
	l.WithGroup("job").Info("rendered", slog.Int("bytes", 42), slog.Any("error", errors.New("none")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written: %q", out)
	}
	for _, want := range []string{"INFO", "rendered", "component=", "export", "job.bytes=", "42", "job.error="} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
	if strings.Contains(out, "job.component") {
		t.Fatalf("attr bound before the group got its prefix: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line, got %q", out)
	}
}
