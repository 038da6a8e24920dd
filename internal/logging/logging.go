// Package logging provides an slog handler which writes plain log lines to a
// file per day, and optionally to a second writer such as stderr.
//
// Lines look like
//
//	[2024-05-01 13:45:10][INFO] calculation failed expression=5÷0
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	dayLayout  = "2006-01-02"
	lineLayout = "2006-01-02 15:04:05"
)

// sink is the state shared by a handler and everything derived from it.
type sink struct {
	mu   sync.Mutex
	dir  string
	echo io.Writer
	day  string
	file *os.File
}

// Handler is an slog.Handler writing to dir/YYYY-MM-DD.log.
type Handler struct {
	s      *sink
	level  slog.Leveler
	prefix string
	attrs  string
}

// New creates dir if needed and returns a handler logging records at level or
// above. If echo is not nil, each line is written to it as well.
func New(dir string, level slog.Leveler, echo io.Writer) (*Handler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{s: &sink{dir: dir, echo: echo}, level: level}, nil
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(t.Format(lineLayout))
	b.WriteString("][")
	b.WriteString(r.Level.String())
	b.WriteString("] ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')
	return h.s.write(t, b.String())
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.prefix, a)
	}
	n := *h
	n.attrs = b.String()
	return &n
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	n := *h
	n.prefix = h.prefix + name + "."
	return &n
}

// Close closes the current log file.
func (h *Handler) Close() error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.s.file == nil {
		return nil
	}
	err := h.s.file.Close()
	h.s.file = nil
	h.s.day = ""
	return err
}

// write appends a line to the file for t's day, switching files when the day
// changes.
func (s *sink) write(t time.Time, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	if s.echo != nil {
		if _, err := io.WriteString(s.echo, line); err != nil {
			errs = append(errs, fmt.Errorf("echo log line: %w", err))
		}
	}
	day := t.Format(dayLayout)
	if s.file == nil || s.day != day {
		if s.file != nil {
			if err := s.file.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close log file: %w", err))
			}
			s.file = nil
		}
		f, err := os.OpenFile(filepath.Join(s.dir, day+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			errs = append(errs, fmt.Errorf("open log file: %w", err))
			return errors.Join(errs...)
		}
		s.file = f
		s.day = day
	}
	if _, err := io.WriteString(s.file, line); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			writeAttr(b, p, g)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	v := a.Value.String()
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		v = strconv.Quote(v)
	}
	b.WriteString(v)
}

var _ slog.Handler = (*Handler)(nil)
