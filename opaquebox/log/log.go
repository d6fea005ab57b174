package log

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Logger is the structured logging contract consumed by opaquebox.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is the severity of a log entry. Lower values are more severe, so a
// logger at LevelInfo emits error, warn and info entries.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

var levelsByName = map[string]Level{
	"error":   LevelError,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"info":    LevelInfo,
	"debug":   LevelDebug,
}

func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// ParseLevel converts a case-insensitive level name into a Level.
func ParseLevel(lvl string) (Level, error) {
	level, ok := levelsByName[strings.ToLower(strings.TrimSpace(lvl))]
	if !ok {
		return LevelError, fmt.Errorf("not a valid Level: %q", lvl)
	}

	return level, nil
}

// Field is a key/value attribute attached to a log event.
//
// There is deliberately no constructor taking an arbitrary value: boxed
// payloads may be sensitive, so entries describe a Box by type, size and
// address only.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates an unsigned field for sizes and counters.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Address creates a field holding addr as a 0x-prefixed hex string.
func Address(key string, addr uintptr) Field {
	return Field{Key: key, Value: "0x" + strconv.FormatUint(uint64(addr), 16)}
}

// Err creates the conventional `error` field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
