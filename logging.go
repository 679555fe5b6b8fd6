package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// LogHandler writes one plain text line per record:
// "2006/01/02 15:04:05 LEVEL message key=value ...".
type LogHandler struct {
	opts   slog.HandlerOptions
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
	out    io.Writer
}

func NewLogHandler(o io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &LogHandler{
		out:  o,
		opts: *opts,
		mu:   &sync.Mutex{},
	}
}

// NewLogger creates a logger writing through LogHandler at the given level.
func NewLogger(o io.Writer, level LogLevel) *slog.Logger {
	return slog.New(NewLogHandler(o, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}
	return level >= threshold
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefixed := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	prefixed = append(prefixed, h.attrs...)
	for _, a := range attrs {
		prefixed = append(prefixed, h._Prefix(a))
	}
	return &LogHandler{opts: h.opts, attrs: prefixed, groups: h.groups, out: h.out, mu: h.mu}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := append(append([]string{}, h.groups...), name)
	return &LogHandler{opts: h.opts, attrs: h.attrs, groups: groups, out: h.out, mu: h.mu}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	//add time and message to values
	strs := []string{formattedTime, r.Level.String(), _QuoteIf(r.Message, "\r\n")}

	for _, a := range h.attrs {
		strs = append(strs, _FormatAttr(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, _FormatAttr(h._Prefix(a)))
		return true
	})

	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.out.Write(b)

	return err
}

func (h *LogHandler) _Prefix(a slog.Attr) slog.Attr {
	if len(h.groups) == 0 {
		return a
	}
	return slog.Attr{Key: strings.Join(h.groups, ".") + "." + a.Key, Value: a.Value}
}

func _FormatAttr(a slog.Attr) string {
	value := _QuoteIf(a.Value.Resolve().String(), " \t\"=\r\n")
	return a.Key + "=" + value
}

// quotes s if it contains any of chars, so every record stays on one line
func _QuoteIf(s string, chars string) string {
	if strings.ContainsAny(s, chars) {
		return fmt.Sprintf("%q", s)
	}
	return s
}
