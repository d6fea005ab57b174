package log

import "context"

// NopLogger discards every event. It is what opaquebox logs to until an
// application installs a real backend.
type NopLogger struct{}

var _ Logger = (*NopLogger)(nil)

var discard = &NopLogger{}

// NewNop returns the shared discarding logger.
//
//nolint:ireturn
func NewNop() Logger {
	return discard
}

func (l *NopLogger) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (l *NopLogger) With(...Field) Logger { return l }

//nolint:ireturn
func (l *NopLogger) WithGroup(string) Logger { return l }

// Enabled is always false, so callers skip building fields.
func (l *NopLogger) Enabled(Level) bool { return false }

func (l *NopLogger) Sync(context.Context) error { return nil }
