// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger is the package-facing structured logger.
type Logger interface {
	With(ctx ...any) Logger

	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

type logger struct {
	inner *slog.Logger
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) write(level slog.Level, msg string, ctx ...any) {
	l.inner.Log(context.Background(), level, msg, ctx...)
}

func (l *logger) Trace(msg string, ctx ...any) { l.write(LevelTrace, msg, ctx...) }
func (l *logger) Debug(msg string, ctx ...any) { l.write(LevelDebug, msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { l.write(LevelInfo, msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { l.write(LevelWarn, msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { l.write(LevelError, msg, ctx...) }

// rootHandler delegates to the currently installed handler, so loggers
// created at package init pick up handlers installed later by the cmd.
type rootHandler struct {
	delegate atomic.Pointer[slog.Handler]
}

func (r *rootHandler) current() slog.Handler {
	return *r.delegate.Load()
}

func (r *rootHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return r.current().Enabled(ctx, lvl)
}

func (r *rootHandler) Handle(ctx context.Context, rec slog.Record) error {
	return r.current().Handle(ctx, rec)
}

func (r *rootHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrsHandler{r, attrs}
}

func (r *rootHandler) WithGroup(string) slog.Handler {
	panic("not implemented")
}

type attrsHandler struct {
	root  *rootHandler
	attrs []slog.Attr
}

func (h *attrsHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.root.current().Enabled(ctx, lvl)
}

func (h *attrsHandler) Handle(ctx context.Context, rec slog.Record) error {
	rec.AddAttrs(h.attrs...)
	return h.root.current().Handle(ctx, rec)
}

func (h *attrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrsHandler{h.root, append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

func (h *attrsHandler) WithGroup(string) slog.Handler {
	panic("not implemented")
}

var (
	root       = &rootHandler{}
	rootLogger Logger
)

func init() {
	var h slog.Handler = NewTerminalHandler(os.Stderr, LevelInfo, false)
	root.delegate.Store(&h)
	rootLogger = &logger{slog.New(root)}
}

// SetRootHandler replaces the handler backing all loggers, including
// those already obtained via WithContext.
func SetRootHandler(h slog.Handler) {
	root.delegate.Store(&h)
}

// Root returns the root logger.
func Root() Logger {
	return rootLogger
}

// WithContext returns a logger carrying the given context pairs.
// Typical use: var logger = log.WithContext("pkg", "program")
func WithContext(ctx ...any) Logger {
	return Root().With(ctx...)
}

// VerbosityToLevel maps a cli verbosity number (0..4) to a slog level.
func VerbosityToLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return LevelError
	case verbosity == 1:
		return LevelWarn
	case verbosity == 2:
		return LevelInfo
	case verbosity == 3:
		return LevelDebug
	default:
		return LevelTrace
	}
}
