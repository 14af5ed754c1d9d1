// Package logging sets up the structured logger used by the assertx CLI.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the given level.
// Attributes added with [slog.Logger.With] replace earlier attributes with the same key, so a logger derived once per rule only ever reports the current rule.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewDedupeHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// Discard returns a logger that writes nothing.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

var _ slog.Handler = (*DedupeHandler)(nil)

// DedupeHandler keeps only the latest value for each attribute key, qualified by group.
type DedupeHandler struct {
	group string
	index map[string]int // Position of each qualified key in attrs.
	attrs []slog.Attr
	impl  slog.Handler
}

func NewDedupeHandler(impl slog.Handler) *DedupeHandler {
	if impl == nil {
		panic("nil implementing handler")
	}
	return &DedupeHandler{
		impl: impl,
	}
}

func (h *DedupeHandler) qualify(key string) string {
	if len(h.group) == 0 {
		return key
	}
	return h.group + "." + key
}

func (h *DedupeHandler) clone() *DedupeHandler {
	index := make(map[string]int, len(h.index))
	for k, v := range h.index {
		index[k] = v
	}
	attrs := make([]slog.Attr, len(h.attrs))
	copy(attrs, h.attrs)
	return &DedupeHandler{
		group: h.group,
		index: index,
		attrs: attrs,
		impl:  h.impl,
	}
}

func (h *DedupeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.impl.Enabled(ctx, level)
}

func (h *DedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	merged := h
	if record.NumAttrs() > 0 {
		recordAttrs := make([]slog.Attr, 0, record.NumAttrs())
		record.Attrs(func(attr slog.Attr) bool {
			recordAttrs = append(recordAttrs, attr)
			return true
		})
		record = slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		merged = h.withAttrs(recordAttrs)
	}
	return merged.impl.WithAttrs(merged.attrs).Handle(ctx, record)
}

func (h *DedupeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.withAttrs(attrs)
}

func (h *DedupeHandler) withAttrs(attrs []slog.Attr) *DedupeHandler {
	if len(attrs) == 0 {
		return h
	}
	cp := h.clone()
	for _, attr := range attrs {
		attr.Key = cp.qualify(attr.Key)
		if i, ok := cp.index[attr.Key]; ok {
			cp.attrs[i] = attr
			continue
		}
		cp.index[attr.Key] = len(cp.attrs)
		cp.attrs = append(cp.attrs, attr)
	}
	return cp
}

func (h *DedupeHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return h
	}
	cp := h.clone()
	cp.group = cp.qualify(name)
	return cp
}
