package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// NewLogger builds the process logger. "json" emits structured logs readable by
// Cloud Logging, anything else emits coloured single-line logs for local development.
func NewLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			ReplaceAttr: CloudLoggingAttributeReplacer,
		}))
	}
	return slog.New(LocalDevHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
		UseColor: true,
	}.NewLocalDevHandler(os.Stderr))
}

func CloudLoggingAttributeReplacer(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		a.Key = "severity"
		level, _ := a.Value.Any().(slog.Level)
		switch {
		case level < slog.LevelInfo:
			a.Value = slog.StringValue("DEBUG")
		case level < slog.LevelWarn:
			a.Value = slog.StringValue("INFO")
		case level < slog.LevelError:
			a.Value = slog.StringValue("WARNING")
		default:
			a.Value = slog.StringValue("ERROR")
		}
	}
	return a
}

// LocalDevHandler prints "<time> <level> <message> " then delegates the attributes
// to a text handler.
type LocalDevHandler struct {
	opts  LocalDevHandlerOptions
	attrs slog.Handler

	mu *sync.Mutex
	w  io.Writer
}

type LocalDevHandlerOptions struct {
	SlogOpts slog.HandlerOptions
	UseColor bool
}

func NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	return LocalDevHandlerOptions{}.NewLocalDevHandler(w)
}

func (opts LocalDevHandlerOptions) NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	attrOpts := opts.SlogOpts
	attrOpts.AddSource = false
	attrOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
			return slog.Attr{}
		}
		if opts.SlogOpts.ReplaceAttr != nil {
			return opts.SlogOpts.ReplaceAttr(groups, a)
		}
		return a
	}
	return &LocalDevHandler{
		opts:  opts,
		attrs: slog.NewTextHandler(w, &attrOpts),
		mu:    &sync.Mutex{},
		w:     w,
	}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.attrs.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String()
	if h.opts.UseColor {
		level = colorOfLevel(r.Level).Add(level)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s %s ", r.Time.Format(time.RFC3339), level, r.Message)

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.attrs.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{opts: h.opts, attrs: h.attrs.WithAttrs(attrs), mu: h.mu, w: h.w}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{opts: h.opts, attrs: h.attrs.WithGroup(name), mu: h.mu, w: h.w}
}

type Color uint8

const (
	Red     Color = 31
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
)

func (c Color) Add(s string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", uint8(c), s)
}

func colorOfLevel(level slog.Level) Color {
	switch {
	case level < slog.LevelInfo:
		return Magenta
	case level < slog.LevelWarn:
		return Blue
	case level < slog.LevelError:
		return Yellow
	default:
		return Red
	}
}
