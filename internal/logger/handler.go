package logger

import (
	"context"
	"log/slog"
	"strings"
)

// filteringHandler wraps a base slog.Handler to add tag-based filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // reference to processed config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies tag filtering before passing the record on.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	var tagValue string
	var tagFound bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tagValue = strings.ToLower(a.Value.String())
			tagFound = true
			return false // stop iteration
		}
		return true
	})

	if tagFound {
		if h.cfg.disabledTagsSet != nil {
			if _, found := h.cfg.disabledTagsSet[tagValue]; found {
				return nil // drop the message
			}
		}
		if h.cfg.enabledTagsSet != nil {
			if _, found := h.cfg.enabledTagsSet[tagValue]; !found {
				return nil
			}
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Filtering for specific tags and this message has none.
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
