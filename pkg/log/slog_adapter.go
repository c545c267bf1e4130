package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes codec events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("codec_id", event.CodecID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Descriptor != "" {
		attrs = append(attrs, slog.String("descriptor", event.Descriptor))
	}

	switch {
	case event.Message != nil:
		attrs = append(attrs,
			slog.Int("length", event.Message.Length),
			slog.Int("fields", event.Message.FieldCount),
			slog.Bool("truncated", event.Message.Truncated),
		)
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Field != "" {
			attrs = append(attrs, slog.String("error_field", event.Error.Field))
		}
		attrs = append(attrs, slog.Int("length", event.Error.Length))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "codec", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
