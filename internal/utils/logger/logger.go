package logger

import (
	"context"
	"encoding/json"
	"io"
	stdlog "log"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"ridejournal/internal/app/server/config"
)

// New создает логгер для окружения env и пишет в stdout
func New(env string) *slog.Logger {
	return NewTo(env, os.Stdout)
}

// NewTo - то же, что New, но с выбором вывода (CLI пишет логи в stderr)
func NewTo(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return newPrettySlog(w)
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func setupPrettySlog() *slog.Logger {
	return newPrettySlog(os.Stdout)
}

func newPrettySlog(w io.Writer) *slog.Logger {
	return slog.New(&PrettyHandler{
		Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		l:       stdlog.New(w, "", 0),
		level:   slog.LevelDebug,
	})
}

// PrettyHandler печатает записи в цвете для локальной разработки
type PrettyHandler struct {
	slog.Handler
	l     *stdlog.Logger
	level slog.Level
	attrs []slog.Attr
	group string
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		v := a.Value.Any()
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		fields[h.group+a.Key] = v
		return true
	})

	var b []byte
	if len(fields) > 0 {
		var err error
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	h.l.Println(
		r.Time.Format("[15:04:05.000]"),
		level,
		color.CyanString(r.Message),
		color.WhiteString(string(b)),
	)
	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next = append(next, h.attrs...)
	for _, a := range attrs {
		next = append(next, slog.Attr{Key: h.group + a.Key, Value: a.Value})
	}
	return &PrettyHandler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		level:   h.level,
		attrs:   next,
		group:   h.group,
	}
}

// WithGroup добавляет префикс "name." к ключам последующих атрибутов
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{
		Handler: h.Handler.WithGroup(name),
		l:       h.l,
		level:   h.level,
		attrs:   h.attrs,
		group:   h.group + name + ".",
	}
}
