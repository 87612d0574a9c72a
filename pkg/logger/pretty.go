// Package logger provides the colored console handler used in local runs.
package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

type PrettyHandlerOptions struct {
	SlogOpts slog.HandlerOptions
}

// boundAttr remembers the group path that was open when With was called.
type boundAttr struct {
	prefix string
	attr   slog.Attr
}

type PrettyHandler struct {
	opts   slog.HandlerOptions
	out    *termenv.Output
	w      io.Writer
	mu     *sync.Mutex
	attrs  []boundAttr
	groups []string
}

func SetupPrettySlog() *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func (opts PrettyHandlerOptions) NewPrettyHandler(w io.Writer) *PrettyHandler {
	return &PrettyHandler{
		opts: opts.SlogOpts,
		out:  termenv.NewOutput(w),
		w:    w,
		mu:   &sync.Mutex{},
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

func (h *PrettyHandler) levelStyle(l slog.Level) string {
	s := h.out.String(fmt.Sprintf("%-5s", l.String()))
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(h.out.Color("1")).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(h.out.Color("3"))
	case l >= slog.LevelInfo:
		s = s.Foreground(h.out.Color("4"))
	default:
		s = s.Foreground(h.out.Color("5"))
	}
	return s.String()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(h.out.String(ts.Format("15:04:05.000")).Faint().String())
	buf.WriteByte(' ')
	buf.WriteString(h.levelStyle(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(h.out.String(r.Message).Foreground(h.out.Color("6")).String())

	for _, b := range h.attrs {
		h.writeAttr(&buf, b.prefix, b.attr)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *PrettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, key, ga)
		}
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(h.out.String(key + "=").Faint().String())
	buf.WriteString(fmt.Sprintf("%v", a.Value.Any()))
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	prefix := strings.Join(h.groups, ".")
	nh.attrs = append([]boundAttr{}, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, boundAttr{prefix: prefix, attr: a})
	}
	return &nh
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
