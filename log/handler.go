// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

const termTimeFormat = "Jan 02 15:04:05"

// TerminalHandler formats records as
//
//	[LEVL] [time] message key=value key=value ...
//
// optionally color-coding the level tag. Meant for interactive use.
type TerminalHandler struct {
	mu       sync.Mutex
	wr       io.Writer
	level    slog.Leveler
	useColor bool
	attrs    []slog.Attr
}

// NewTerminalHandler returns a handler writing human readable records to wr.
func NewTerminalHandler(wr io.Writer, level slog.Leveler, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:       wr,
		level:    level,
		useColor: useColor,
	}
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *TerminalHandler) Handle(_ context.Context, rec slog.Record) error {
	buf := make([]byte, 0, 128)
	buf = h.appendLevel(buf, rec.Level)
	buf = append(buf, " ["...)
	buf = rec.Time.AppendFormat(buf, termTimeFormat)
	buf = append(buf, "] "...)
	buf = append(buf, rec.Message...)

	appendAttr := func(attr slog.Attr) {
		buf = append(buf, ' ')
		buf = append(buf, attr.Key...)
		buf = append(buf, '=')
		buf = fmt.Append(buf, attr.Value.Resolve().Any())
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		appendAttr(attr)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.wr.Write(buf)
	return err
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:       h.wr,
		level:    h.level,
		useColor: h.useColor,
		attrs:    append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *TerminalHandler) WithGroup(string) slog.Handler {
	panic("not implemented")
}

func (h *TerminalHandler) appendLevel(buf []byte, level slog.Level) []byte {
	tag, color := levelTag(level)
	if h.useColor && color != "" {
		return fmt.Appendf(buf, "\x1b[%sm[%s]\x1b[0m", color, tag)
	}
	return fmt.Appendf(buf, "[%s]", tag)
}

func levelTag(level slog.Level) (tag, color string) {
	switch {
	case level <= LevelTrace:
		return "TRCE", "36"
	case level <= LevelDebug:
		return "DBUG", "36"
	case level <= LevelInfo:
		return "INFO", "32"
	case level <= LevelWarn:
		return "WARN", "33"
	default:
		return "EROR", "31"
	}
}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

type discardHandler struct{}

func (h *discardHandler) Handle(_ context.Context, _ slog.Record) error   { return nil }
func (h *discardHandler) Enabled(_ context.Context, _ slog.Level) bool    { return false }
func (h *discardHandler) WithGroup(_ string) slog.Handler                 { panic("not implemented") }
func (h *discardHandler) WithAttrs(_ []slog.Attr) slog.Handler            { return &discardHandler{} }

var _ slog.Handler = (*TerminalHandler)(nil)
